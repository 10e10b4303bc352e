package repository

import "context"

// FavoriteRepository owns the user-song favorite relation.
//
// Both mutations are idempotent single-statement operations: repeating a
// call with the same arguments changes nothing and returns no error. The
// composite unique constraint on (user_id, song_id) guarantees that
// concurrent toggles to the same state never produce duplicate rows.
type FavoriteRepository interface {
	// SetFavorite ensures the (user, song) pair exists (want=true) or
	// does not exist (want=false).
	SetFavorite(ctx context.Context, userID, songID int64, want bool) error

	// IsFavorited reports whether the pair currently exists. No side effects.
	IsFavorited(ctx context.Context, userID, songID int64) (bool, error)

	// SongIDsForUser returns the ids of every song the user favorites.
	// Order is not semantically meaningful.
	SongIDsForUser(ctx context.Context, userID int64) ([]int64, error)
}
