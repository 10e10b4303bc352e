// Package entity contains the core business objects of the project.
package entity

// Artist is a catalog performer with a short biography.
type Artist struct {
	ID   int64
	Name string // Unique display name.
	Bio  string
}

// Album groups songs under an artist.
type Album struct {
	ID         int64
	Name       string
	ArtworkURL string
	ArtistID   int64
}

// Song is a single playable track. Duration is in seconds.
type Song struct {
	ID       int64
	Name     string
	URL      string
	Duration int64
	AlbumID  int64
}
