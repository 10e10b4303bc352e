package handler

import (
	"net/http"
	"strconv"

	"soundem/internal/delivery/http/response"
	domainerrors "soundem/internal/domain/errors"
	"soundem/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the read-only artist and album endpoints.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// GetArtists lists every artist with its album ids.
func (h *CatalogHandler) GetArtists(c echo.Context) error {
	details, err := h.uc.Artists(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	artists := make([]response.Artist, 0, len(details))
	for _, detail := range details {
		artists = append(artists, response.NewArtist(detail.Artist, detail.AlbumIDs))
	}

	return c.JSON(http.StatusOK, map[string]any{"artists": artists})
}

// GetArtist returns a single artist by id.
func (h *CatalogHandler) GetArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.WithStack(domainerrors.ErrArtistNotFound)
	}

	detail, err := h.uc.Artist(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"artist": response.NewArtist(detail.Artist, detail.AlbumIDs),
	})
}

// GetAlbums lists every album with the collection total.
func (h *CatalogHandler) GetAlbums(c echo.Context) error {
	list, err := h.uc.Albums(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	albums := make([]response.Album, 0, len(list.Albums))
	for _, album := range list.Albums {
		albums = append(albums, response.NewAlbum(album))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"albums": albums,
		"meta":   response.Meta{Total: list.Total},
	})
}

// GetAlbum returns a single album by id.
func (h *CatalogHandler) GetAlbum(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.WithStack(domainerrors.ErrAlbumNotFound)
	}

	album, err := h.uc.Album(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"album": response.NewAlbum(album)})
}

// parseID reads the numeric :id route parameter. A non-numeric id is
// treated the same as an absent resource.
func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
