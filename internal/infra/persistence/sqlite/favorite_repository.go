package sqlite

import (
	"context"

	domainerrors "soundem/internal/domain/errors"
	"soundem/internal/domain/repository"
	"soundem/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// SetFavorite drives the (user, song) pair to the wanted state as one
// atomic statement per direction:
//
//   - want=true inserts with ON CONFLICT DO NOTHING, so a concurrent or
//     repeated insert against the (user_id, song_id) unique index is a
//     silent no-op rather than a constraint error;
//   - want=false deletes unconditionally, which is already idempotent.
func (repo *favoriteRepository) SetFavorite(ctx context.Context, userID, songID int64, want bool) error {
	if want {
		favorite := &model.FavoriteModel{UserID: userID, SongID: songID}
		err := repo.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(favorite).Error
		switch {
		case err == nil || isUniqueConstraintViolation(err):
			return nil
		case isForeignKeyConstraintViolation(err):
			// The song (or user) vanished between lookup and insert.
			return repository.ErrSongNotFound
		default:
			return classifyWriteError(err, "failed to create favorite")
		}
	}

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND song_id = ?", userID, songID).
		Delete(&model.FavoriteModel{}).Error
	if err != nil {
		return classifyWriteError(err, "failed to delete favorite")
	}

	return nil
}

// IsFavorited reports whether the pair exists. No side effects.
func (repo *favoriteRepository) IsFavorited(ctx context.Context, userID, songID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND song_id = ?", userID, songID).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check favorite")
	}

	return count > 0, nil
}

// SongIDsForUser returns the ids of every song the user currently favorites.
func (repo *favoriteRepository) SongIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	var songIDs []int64
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Pluck("song_id", &songIDs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list favorites")
	}

	return songIDs, nil
}
