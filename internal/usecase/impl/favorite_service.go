package impl

import (
	"context"
	"log/slog"

	deliverycontext "soundem/internal/delivery/context"
	"soundem/internal/domain/entity"
	domainerrors "soundem/internal/domain/errors"
	"soundem/internal/domain/repository"
	"soundem/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	catalogRepo  repository.CatalogRepository
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	CatalogRepo  repository.CatalogRepository
	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		catalogRepo:  params.CatalogRepo,
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetFavorite drives the (user, song) pair to the wanted state. The
// returned state always equals want on success, so callers can render the
// new state without a second query.
func (srv *favoriteService) SetFavorite(ctx context.Context, userID, songID int64, want bool) (*usecase.SongOutput, error) {
	song, err := srv.findSong(ctx, songID)
	if err != nil {
		return nil, err
	}

	if err := srv.setFavoriteWithRetry(ctx, userID, songID, want); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Favorite toggled",
		slog.Int64("userID", userID),
		slog.Int64("songID", songID),
		slog.Bool("favorited", want),
	)

	return &usecase.SongOutput{Song: song, Favorited: want}, nil
}

// setFavoriteWithRetry retries the toggle once, and only for transient
// lock contention. The repository operation is a single idempotent
// statement, so a second attempt after contention is always safe.
func (srv *favoriteService) setFavoriteWithRetry(ctx context.Context, userID, songID int64, want bool) error {
	err := srv.favoriteRepo.SetFavorite(ctx, userID, songID, want)
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrSongNotFound) {
		return domainerrors.ErrSongNotFound
	}
	if !errors.Is(err, repository.ErrTransientContention) {
		return errors.Wrap(err, "favorite toggle failed")
	}

	srv.log(ctx).Warn("Favorite toggle hit contention, retrying once", slog.String("error", err.Error()))

	if retryErr := srv.favoriteRepo.SetFavorite(ctx, userID, songID, want); retryErr != nil {
		return errors.Wrap(retryErr, "favorite toggle failed after retry")
	}

	return nil
}

// Song returns the song with the user's current favorite state.
func (srv *favoriteService) Song(ctx context.Context, userID, songID int64) (*usecase.SongOutput, error) {
	song, err := srv.findSong(ctx, songID)
	if err != nil {
		return nil, err
	}

	favorited, err := srv.favoriteRepo.IsFavorited(ctx, userID, songID)
	if err != nil {
		return nil, err
	}

	return &usecase.SongOutput{Song: song, Favorited: favorited}, nil
}

// Favorites returns the songs the user currently favorites.
func (srv *favoriteService) Favorites(ctx context.Context, userID int64) ([]*entity.Song, error) {
	songIDs, err := srv.favoriteRepo.SongIDsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	songs, err := srv.catalogRepo.SongsByIDs(ctx, songIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorite songs")
	}

	return songs, nil
}

func (srv *favoriteService) findSong(ctx context.Context, songID int64) (*entity.Song, error) {
	song, err := srv.catalogRepo.SongByID(ctx, songID)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return nil, domainerrors.ErrSongNotFound
		}

		return nil, errors.Wrap(err, "failed to find song")
	}

	return song, nil
}
