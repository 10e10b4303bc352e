package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"soundem/config"
	"soundem/internal/domain/entity"
	"soundem/internal/domain/repository"
	"soundem/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB opens a migrated database in a temporary directory. A real
// file rather than :memory: so that the concurrency tests run against the
// same locking behavior as production.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(t.TempDir(), "soundem_test.db")

	db, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, PasswordHash: "$pbkdf2-sha256$1000$c2FsdA$ZGlnZXN0"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedSong(t *testing.T, db *gorm.DB, name string) *entity.Song {
	t.Helper()

	artist := &model.ArtistModel{Name: "artist for " + name, Bio: "bio"}
	require.NoError(t, db.Create(artist).Error)
	album := &model.AlbumModel{Name: "album for " + name, ArtistID: artist.ID}
	require.NoError(t, db.Create(album).Error)
	song := &model.SongModel{Name: name, URL: "http://example.com/" + name, Duration: 180, AlbumID: album.ID}
	require.NoError(t, db.Create(song).Error)

	return &entity.Song{ID: song.ID, Name: song.Name, URL: song.URL, Duration: song.Duration, AlbumID: song.AlbumID}
}

func countFavorites(t *testing.T, db *gorm.DB, userID, songID int64) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.FavoriteModel{}).
		Where("user_id = ? AND song_id = ?", userID, songID).
		Count(&count).Error)

	return count
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByID(ctx, user.ID+100)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "a@x.com", PasswordHash: "hash"}))

	err := repo.Create(ctx, &entity.User{Email: "a@x.com", PasswordHash: "other"})
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestUserRepository_EmailIsCaseSensitive(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "a@x.com")

	_, err := repo.FindByEmail(ctx, "A@X.COM")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestFavoriteRepository_SetFavoriteIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "a@x.com")
	song := seedSong(t, db, "song-one")

	// Favoriting twice leaves exactly one row.
	require.NoError(t, repo.SetFavorite(ctx, user.ID, song.ID, true))
	require.NoError(t, repo.SetFavorite(ctx, user.ID, song.ID, true))
	assert.EqualValues(t, 1, countFavorites(t, db, user.ID, song.ID))

	favorited, err := repo.IsFavorited(ctx, user.ID, song.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	// Unfavoriting twice leaves zero rows and no error.
	require.NoError(t, repo.SetFavorite(ctx, user.ID, song.ID, false))
	require.NoError(t, repo.SetFavorite(ctx, user.ID, song.ID, false))
	assert.EqualValues(t, 0, countFavorites(t, db, user.ID, song.ID))

	favorited, err = repo.IsFavorited(ctx, user.ID, song.ID)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteRepository_VanishedSongMapsToNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "a@x.com")

	// No song with this id exists, so the insert trips the foreign key.
	err := repo.SetFavorite(ctx, user.ID, 9999, true)

	require.ErrorIs(t, err, repository.ErrSongNotFound)
	assert.EqualValues(t, 0, countFavorites(t, db, user.ID, 9999))
}

func TestFavoriteRepository_DeleteSongCascades(t *testing.T) {
	db := openTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "a@x.com")
	song := seedSong(t, db, "song-one")
	require.NoError(t, repo.SetFavorite(ctx, user.ID, song.ID, true))

	// Foreign keys are on for every pooled connection, so dropping the
	// song takes its favorites with it.
	require.NoError(t, db.Delete(&model.SongModel{}, song.ID).Error)

	assert.EqualValues(t, 0, countFavorites(t, db, user.ID, song.ID))
}

func TestFavoriteRepository_ConcurrentFavorites(t *testing.T) {
	db := openTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "a@x.com")
	song := seedSong(t, db, "contested-song")

	const workers = 10

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.SetFavorite(ctx, user.ID, song.ID, true)
		}(i)
	}
	wg.Wait()

	// No caller sees a duplicate-key error and exactly one row exists.
	for i, err := range errs {
		assert.NoError(t, err, "worker %d", i)
	}
	assert.EqualValues(t, 1, countFavorites(t, db, user.ID, song.ID))
}

func TestFavoriteRepository_SongIDsForUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "a@x.com")
	other := seedUser(t, db, "b@x.com")
	first := seedSong(t, db, "first")
	second := seedSong(t, db, "second")
	third := seedSong(t, db, "third")

	require.NoError(t, repo.SetFavorite(ctx, user.ID, first.ID, true))
	require.NoError(t, repo.SetFavorite(ctx, user.ID, second.ID, true))
	require.NoError(t, repo.SetFavorite(ctx, other.ID, third.ID, true))

	ids, err := repo.SongIDsForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{first.ID, second.ID}, ids)

	ids, err = repo.SongIDsForUser(ctx, user.ID+other.ID+100)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestCatalogRepository_Listings(t *testing.T) {
	db := openTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	artist := &model.ArtistModel{Name: "Nick Cave", Bio: "and the Bad Seeds"}
	require.NoError(t, db.Create(artist).Error)
	albumOne := &model.AlbumModel{Name: "Push the Sky Away", ArtistID: artist.ID}
	albumTwo := &model.AlbumModel{Name: "Skeleton Tree", ArtistID: artist.ID}
	require.NoError(t, db.Create(albumOne).Error)
	require.NoError(t, db.Create(albumTwo).Error)
	require.NoError(t, db.Create(&model.SongModel{Name: "Jubilee Street", Duration: 398, AlbumID: albumOne.ID}).Error)
	require.NoError(t, db.Create(&model.SongModel{Name: "Distant Sky", Duration: 285, AlbumID: albumTwo.ID}).Error)

	artists, err := repo.Artists(ctx)
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "Nick Cave", artists[0].Name)

	albumIDs, err := repo.AlbumIDsForArtist(ctx, artist.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{albumOne.ID, albumTwo.ID}, albumIDs)

	albumCount, err := repo.AlbumCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, albumCount)

	songCount, err := repo.SongCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, songCount)

	duration, err := repo.TotalDuration(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 683, duration)

	_, err = repo.ArtistByID(ctx, artist.ID+100)
	assert.ErrorIs(t, err, repository.ErrArtistNotFound)
	_, err = repo.AlbumByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrAlbumNotFound)
	_, err = repo.SongByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrSongNotFound)
}

func TestCatalogRepository_SongsByIDs(t *testing.T) {
	db := openTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	first := seedSong(t, db, "first")
	second := seedSong(t, db, "second")
	seedSong(t, db, "third")

	songs, err := repo.SongsByIDs(ctx, []int64{first.ID, second.ID})
	require.NoError(t, err)
	assert.Len(t, songs, 2)

	songs, err = repo.SongsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, songs)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	sentinel := assert.AnError
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()
		if err := userRepo.Create(ctx, &entity.User{Email: "tx@x.com", PasswordHash: "hash"}); err != nil {
			return err
		}

		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	_, err = NewUserRepository(db).FindByEmail(ctx, "tx@x.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := openTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewUserRepository().Create(ctx, &entity.User{Email: "tx@x.com", PasswordHash: "hash"})
	})
	require.NoError(t, err)

	user, err := NewUserRepository(db).FindByEmail(ctx, "tx@x.com")
	require.NoError(t, err)
	assert.Equal(t, "tx@x.com", user.Email)
}
