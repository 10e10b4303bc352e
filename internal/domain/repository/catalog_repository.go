package repository

import (
	"context"
	"errors"

	"soundem/internal/domain/entity"
)

// Not-found sentinels for catalog lookups.
var (
	ErrArtistNotFound = errors.New("artist not found")
	ErrAlbumNotFound  = errors.New("album not found")
	ErrSongNotFound   = errors.New("song not found")
)

// CatalogRepository reads the artist/album/song catalog. The catalog is
// fixture-loaded and read-only at runtime, so there are no write methods.
//
// Relationship traversal is explicit: callers ask for the albums of an
// artist or the songs of an album instead of walking lazy associations.
type CatalogRepository interface {
	Artists(ctx context.Context) ([]*entity.Artist, error)
	ArtistByID(ctx context.Context, id int64) (*entity.Artist, error)

	// AlbumIDsForArtist returns the ids of the artist's albums, for the
	// artist representation's "albums" field.
	AlbumIDsForArtist(ctx context.Context, artistID int64) ([]int64, error)

	Albums(ctx context.Context) ([]*entity.Album, error)
	AlbumByID(ctx context.Context, id int64) (*entity.Album, error)
	AlbumCount(ctx context.Context) (int64, error)

	Songs(ctx context.Context) ([]*entity.Song, error)
	SongByID(ctx context.Context, id int64) (*entity.Song, error)
	SongsByIDs(ctx context.Context, ids []int64) ([]*entity.Song, error)
	SongCount(ctx context.Context) (int64, error)

	// TotalDuration sums the duration of every song, in seconds.
	TotalDuration(ctx context.Context) (int64, error)
}
