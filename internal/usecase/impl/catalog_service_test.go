package impl

import (
	"context"
	"testing"

	"soundem/internal/domain/entity"
	domainerrors "soundem/internal/domain/errors"
	"soundem/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServiceFixture() (*mockCatalogRepository, *catalogService) {
	catalogRepo := new(mockCatalogRepository)
	service := NewCatalogService(CatalogServiceParams{CatalogRepo: catalogRepo})

	return catalogRepo, service.(*catalogService)
}

func TestCatalogService_Artists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("attaches album ids to each artist", func(t *testing.T) {
		t.Parallel()

		catalogRepo, service := newCatalogServiceFixture()
		catalogRepo.On("Artists", ctx).Return([]*entity.Artist{
			{ID: 1, Name: "Pink Floyd"},
			{ID: 2, Name: "Kraftwerk"},
		}, nil)
		catalogRepo.On("AlbumIDsForArtist", ctx, int64(1)).Return([]int64{1, 2}, nil)
		catalogRepo.On("AlbumIDsForArtist", ctx, int64(2)).Return([]int64{}, nil)

		details, err := service.Artists(ctx)

		require.NoError(t, err)
		require.Len(t, details, 2)
		assert.Equal(t, []int64{1, 2}, details[0].AlbumIDs)
		assert.Empty(t, details[1].AlbumIDs)
	})

	t.Run("unknown artist yields not found", func(t *testing.T) {
		t.Parallel()

		catalogRepo, service := newCatalogServiceFixture()
		catalogRepo.On("ArtistByID", ctx, int64(99)).
			Return(nil, repository.ErrArtistNotFound)

		_, err := service.Artist(ctx, 99)

		require.ErrorIs(t, err, domainerrors.ErrArtistNotFound)
	})
}

func TestCatalogService_Albums(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("carries the collection total", func(t *testing.T) {
		t.Parallel()

		catalogRepo, service := newCatalogServiceFixture()
		catalogRepo.On("Albums", ctx).Return([]*entity.Album{
			{ID: 1, Name: "The Dark Side of the Moon", ArtistID: 1},
		}, nil)
		catalogRepo.On("AlbumCount", ctx).Return(int64(1), nil)

		list, err := service.Albums(ctx)

		require.NoError(t, err)
		assert.Len(t, list.Albums, 1)
		assert.Equal(t, int64(1), list.Total)
	})

	t.Run("unknown album yields not found", func(t *testing.T) {
		t.Parallel()

		catalogRepo, service := newCatalogServiceFixture()
		catalogRepo.On("AlbumByID", ctx, int64(99)).
			Return(nil, repository.ErrAlbumNotFound)

		_, err := service.Album(ctx, 99)

		require.ErrorIs(t, err, domainerrors.ErrAlbumNotFound)
	})
}

func TestCatalogService_Songs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	catalogRepo, service := newCatalogServiceFixture()
	catalogRepo.On("Songs", ctx).Return([]*entity.Song{
		{ID: 3, Name: "Breathe", AlbumID: 1, Duration: 163},
		{ID: 5, Name: "Time", AlbumID: 1, Duration: 413},
	}, nil)
	catalogRepo.On("SongCount", ctx).Return(int64(2), nil)
	catalogRepo.On("TotalDuration", ctx).Return(int64(576), nil)

	list, err := service.Songs(ctx)

	require.NoError(t, err)
	assert.Len(t, list.Songs, 2)
	assert.Equal(t, int64(2), list.Total)
	assert.Equal(t, int64(576), list.Duration)
}
