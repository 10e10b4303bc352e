package model

import "time"

// UserModel mirrors the 'users' table. The unique index on email is the
// authoritative guard against duplicate registration, including races.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time

	Favorites []*FavoriteModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// FavoriteModel mirrors the 'favorites' table. The composite unique index
// on (user_id, song_id) enforces the at-most-one-row invariant; deleting
// a user or song cascades into its favorites.
type FavoriteModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_favorites_user_song"`
	SongID    int64 `gorm:"not null;uniqueIndex:idx_favorites_user_song"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
