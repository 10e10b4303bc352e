package usecase

import (
	"context"

	"soundem/internal/domain/entity"
)

// SongOutput is a song representation carrying the requesting user's
// favorite state, so a toggle response can render the new state without a
// second query.
type SongOutput struct {
	Song      *entity.Song
	Favorited bool
}

// FavoriteUsecase is the favorite ledger: a two-state machine per
// (user, song) pair. Both transitions are idempotent.
type FavoriteUsecase interface {
	// SetFavorite drives the pair to the wanted state and returns the
	// song with the resulting state (always equal to want on success).
	SetFavorite(ctx context.Context, userID, songID int64, want bool) (*SongOutput, error)

	// Song returns the song with the user's current favorite state. No
	// side effects.
	Song(ctx context.Context, userID, songID int64) (*SongOutput, error)

	// Favorites returns the songs the user currently favorites. Order is
	// not semantically meaningful.
	Favorites(ctx context.Context, userID int64) ([]*entity.Song, error)
}
