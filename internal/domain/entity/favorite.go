// Package entity contains the core business objects of the project.
package entity

import "time"

// Favorite marks a single (user, song) pair. At most one Favorite exists
// per pair at any time; the pair not existing is the "not favorited"
// state, so there is no boolean column.
type Favorite struct {
	UserID    int64
	SongID    int64
	CreatedAt time.Time
}
