// Package model holds the GORM persistence models. Mapping between these
// and the pure domain entities happens in the repository implementations.
package model

// ArtistModel mirrors the 'artists' table.
type ArtistModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(80);unique;not null"`
	Bio  string `gorm:"type:text"`

	Albums []*AlbumModel `gorm:"foreignKey:ArtistID"`
}

// TableName explicitly sets the table name for GORM.
func (ArtistModel) TableName() string {
	return "artists"
}

// AlbumModel mirrors the 'albums' table.
type AlbumModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(80);not null"`
	ArtworkURL string `gorm:"type:varchar(255)"`
	ArtistID   int64  `gorm:"not null;index"`

	Songs []*SongModel `gorm:"foreignKey:AlbumID"`
}

// TableName explicitly sets the table name for GORM.
func (AlbumModel) TableName() string {
	return "albums"
}

// SongModel mirrors the 'songs' table. Duration is in seconds.
type SongModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(80);not null"`
	URL      string `gorm:"type:varchar(255)"`
	Duration int64
	AlbumID  int64 `gorm:"not null;index"`

	Favorites []*FavoriteModel `gorm:"foreignKey:SongID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SongModel) TableName() string {
	return "songs"
}
