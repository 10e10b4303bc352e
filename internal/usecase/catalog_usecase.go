package usecase

import (
	"context"

	"soundem/internal/domain/entity"
)

// ArtistDetail is an artist together with the ids of its albums.
type ArtistDetail struct {
	Artist   *entity.Artist
	AlbumIDs []int64
}

// AlbumList carries the albums plus the collection total.
type AlbumList struct {
	Albums []*entity.Album
	Total  int64
}

// SongList carries the songs plus collection totals. Duration is the sum
// of every song's length in seconds.
type SongList struct {
	Songs    []*entity.Song
	Total    int64
	Duration int64
}

// CatalogUsecase exposes the read-only artist/album/song catalog.
type CatalogUsecase interface {
	Artists(ctx context.Context) ([]*ArtistDetail, error)
	Artist(ctx context.Context, id int64) (*ArtistDetail, error)
	Albums(ctx context.Context) (*AlbumList, error)
	Album(ctx context.Context, id int64) (*entity.Album, error)
	Songs(ctx context.Context) (*SongList, error)
}
