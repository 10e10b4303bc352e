package impl

import (
	"context"

	"soundem/internal/domain/entity"
	domainerrors "soundem/internal/domain/errors"
	"soundem/internal/domain/repository"
	"soundem/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{catalogRepo: params.CatalogRepo}
}

func (srv *catalogService) Artists(ctx context.Context) ([]*usecase.ArtistDetail, error) {
	artists, err := srv.catalogRepo.Artists(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]*usecase.ArtistDetail, 0, len(artists))
	for _, artist := range artists {
		detail, err := srv.artistDetail(ctx, artist)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return details, nil
}

func (srv *catalogService) Artist(ctx context.Context, id int64) (*usecase.ArtistDetail, error) {
	artist, err := srv.catalogRepo.ArtistByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return nil, domainerrors.ErrArtistNotFound
		}

		return nil, err
	}

	return srv.artistDetail(ctx, artist)
}

func (srv *catalogService) artistDetail(ctx context.Context, artist *entity.Artist) (*usecase.ArtistDetail, error) {
	albumIDs, err := srv.catalogRepo.AlbumIDsForArtist(ctx, artist.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.ArtistDetail{Artist: artist, AlbumIDs: albumIDs}, nil
}

func (srv *catalogService) Albums(ctx context.Context) (*usecase.AlbumList, error) {
	albums, err := srv.catalogRepo.Albums(ctx)
	if err != nil {
		return nil, err
	}

	total, err := srv.catalogRepo.AlbumCount(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.AlbumList{Albums: albums, Total: total}, nil
}

func (srv *catalogService) Album(ctx context.Context, id int64) (*entity.Album, error) {
	album, err := srv.catalogRepo.AlbumByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAlbumNotFound) {
			return nil, domainerrors.ErrAlbumNotFound
		}

		return nil, err
	}

	return album, nil
}

func (srv *catalogService) Songs(ctx context.Context) (*usecase.SongList, error) {
	songs, err := srv.catalogRepo.Songs(ctx)
	if err != nil {
		return nil, err
	}

	total, err := srv.catalogRepo.SongCount(ctx)
	if err != nil {
		return nil, err
	}

	duration, err := srv.catalogRepo.TotalDuration(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.SongList{Songs: songs, Total: total, Duration: duration}, nil
}
