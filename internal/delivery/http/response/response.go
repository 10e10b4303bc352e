// Package response defines the JSON wire formats of the API.
package response

import (
	"net/http"

	"soundem/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Auth is the body returned by register and login.
type Auth struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Artist is an artist together with the ids of its albums.
type Artist struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Bio    string  `json:"bio"`
	Albums []int64 `json:"albums"`
}

// Album is a single album representation.
type Album struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ArtworkURL string `json:"artwork_url"`
	Artist     int64  `json:"artist"`
}

// Song is a single song representation. Favorited is only present on
// authenticated endpoints that know the requesting user.
type Song struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Duration  int64  `json:"duration"`
	Album     int64  `json:"album"`
	Favorited *bool  `json:"favorited,omitempty"`
}

// Meta carries collection totals on list responses.
type Meta struct {
	Total    int64  `json:"total"`
	Duration *int64 `json:"duration,omitempty"`
}

// NewArtist maps an artist entity with its album ids.
func NewArtist(artist *entity.Artist, albumIDs []int64) Artist {
	if albumIDs == nil {
		albumIDs = []int64{}
	}

	return Artist{
		ID:     artist.ID,
		Name:   artist.Name,
		Bio:    artist.Bio,
		Albums: albumIDs,
	}
}

// NewAlbum maps an album entity.
func NewAlbum(album *entity.Album) Album {
	return Album{
		ID:         album.ID,
		Name:       album.Name,
		ArtworkURL: album.ArtworkURL,
		Artist:     album.ArtistID,
	}
}

// NewSong maps a song entity without favorite state.
func NewSong(song *entity.Song) Song {
	return Song{
		ID:       song.ID,
		Name:     song.Name,
		URL:      song.URL,
		Duration: song.Duration,
		Album:    song.AlbumID,
	}
}

// NewFavoritedSong maps a song entity carrying the user's favorite state.
func NewFavoritedSong(song *entity.Song, favorited bool) Song {
	mapped := NewSong(song)
	mapped.Favorited = &favorited

	return mapped
}

// ValidationFailed writes a 400 with every violated field.
func ValidationFailed(c echo.Context, fields map[string]string) error {
	return c.JSON(http.StatusBadRequest, map[string]any{"errors": fields})
}

// Unauthorized writes the single opaque 401 body. Every authentication
// failure uses the same message so the response never reveals which
// check failed.
func Unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": message})
}

// NotFound writes a 404 with a short resource message.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": message})
}

// InternalServerError writes the generic 500 body. Detail stays in logs.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}
