package handler

import (
	"log/slog"
	"net/http"

	"soundem/internal/delivery/http/middleware"
	"soundem/internal/delivery/http/response"
	domainerrors "soundem/internal/domain/errors"
	"soundem/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SongHandler serves the song listing, detail and favorite endpoints.
type SongHandler struct {
	catalogUC  usecase.CatalogUsecase
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewSongHandler is the constructor for SongHandler, injected by Fx.
func NewSongHandler(catalogUC usecase.CatalogUsecase, favoriteUC usecase.FavoriteUsecase, logger *slog.Logger) *SongHandler {
	return &SongHandler{
		catalogUC:  catalogUC,
		favoriteUC: favoriteUC,
		logger:     logger,
	}
}

// toggleFavoriteInput is the PUT body for the favorite toggle. Favorite
// is a pointer so an absent field is distinguishable from false.
type toggleFavoriteInput struct {
	Song struct {
		Favorite *bool `json:"favorite"`
	} `json:"song"`
}

// GetSongs lists every song with the collection totals.
func (h *SongHandler) GetSongs(c echo.Context) error {
	list, err := h.catalogUC.Songs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	songs := make([]response.Song, 0, len(list.Songs))
	for _, song := range list.Songs {
		songs = append(songs, response.NewSong(song))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"songs": songs,
		"meta":  response.Meta{Total: list.Total, Duration: &list.Duration},
	})
}

// GetFavorites lists the songs the authenticated user favorites.
func (h *SongHandler) GetFavorites(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	favorites, err := h.favoriteUC.Favorites(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	songs := make([]response.Song, 0, len(favorites))
	for _, song := range favorites {
		songs = append(songs, response.NewFavoritedSong(song, true))
	}

	return c.JSON(http.StatusOK, map[string]any{"songs": songs})
}

// GetSong returns a single song with the user's current favorite state.
func (h *SongHandler) GetSong(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, err := parseID(c)
	if err != nil {
		return errors.WithStack(domainerrors.ErrSongNotFound)
	}

	output, err := h.favoriteUC.Song(c.Request().Context(), user.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"song": response.NewFavoritedSong(output.Song, output.Favorited),
	})
}

// ToggleFavorite drives the user's favorite state for a song to the
// wanted value. A body without the favorite field only reports the
// current state, leaving the ledger untouched.
func (h *SongHandler) ToggleFavorite(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, err := parseID(c)
	if err != nil {
		return errors.WithStack(domainerrors.ErrSongNotFound)
	}

	var input toggleFavoriteInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	ctx := c.Request().Context()

	var output *usecase.SongOutput
	if input.Song.Favorite != nil {
		output, err = h.favoriteUC.SetFavorite(ctx, user.ID, id, *input.Song.Favorite)
	} else {
		output, err = h.favoriteUC.Song(ctx, user.ID, id)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"song": response.NewFavoritedSong(output.Song, output.Favorited),
	})
}
