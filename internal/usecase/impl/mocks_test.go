package impl

import (
	"context"

	"soundem/internal/domain/entity"
	"soundem/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// Hand-rolled testify doubles for the domain interfaces used by the
// service tests in this package.

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type mockFavoriteRepository struct {
	mock.Mock
}

func (m *mockFavoriteRepository) SetFavorite(ctx context.Context, userID, songID int64, want bool) error {
	args := m.Called(ctx, userID, songID, want)

	return args.Error(0)
}

func (m *mockFavoriteRepository) IsFavorited(ctx context.Context, userID, songID int64) (bool, error) {
	args := m.Called(ctx, userID, songID)

	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteRepository) SongIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if ids := args.Get(0); ids != nil {
		return ids.([]int64), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockCatalogRepository struct {
	mock.Mock
}

func (m *mockCatalogRepository) Artists(ctx context.Context) ([]*entity.Artist, error) {
	args := m.Called(ctx)
	if artists := args.Get(0); artists != nil {
		return artists.([]*entity.Artist), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogRepository) ArtistByID(ctx context.Context, id int64) (*entity.Artist, error) {
	args := m.Called(ctx, id)
	if artist := args.Get(0); artist != nil {
		return artist.(*entity.Artist), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogRepository) AlbumIDsForArtist(ctx context.Context, artistID int64) ([]int64, error) {
	args := m.Called(ctx, artistID)
	if ids := args.Get(0); ids != nil {
		return ids.([]int64), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogRepository) Albums(ctx context.Context) ([]*entity.Album, error) {
	args := m.Called(ctx)
	if albums := args.Get(0); albums != nil {
		return albums.([]*entity.Album), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogRepository) AlbumByID(ctx context.Context, id int64) (*entity.Album, error) {
	args := m.Called(ctx, id)
	if album := args.Get(0); album != nil {
		return album.(*entity.Album), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogRepository) AlbumCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCatalogRepository) Songs(ctx context.Context) ([]*entity.Song, error) {
	args := m.Called(ctx)
	if songs := args.Get(0); songs != nil {
		return songs.([]*entity.Song), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogRepository) SongByID(ctx context.Context, id int64) (*entity.Song, error) {
	args := m.Called(ctx, id)
	if song := args.Get(0); song != nil {
		return song.(*entity.Song), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogRepository) SongsByIDs(ctx context.Context, ids []int64) ([]*entity.Song, error) {
	args := m.Called(ctx, ids)
	if songs := args.Get(0); songs != nil {
		return songs.([]*entity.Song), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogRepository) SongCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCatalogRepository) TotalDuration(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

// mockTransactionManager runs the callback against a factory returning
// the test's repositories, without any real transaction.
type mockTransactionManager struct {
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
}

func (m *mockTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *mockTransactionManager) NewUserRepository() repository.UserRepository {
	return m.userRepo
}

func (m *mockTransactionManager) NewFavoriteRepository() repository.FavoriteRepository {
	return m.favoriteRepo
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID int64) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (int64, bool) {
	args := m.Called(tokenString)

	return args.Get(0).(int64), args.Bool(1)
}
