package sqlite

import (
	"context"

	"soundem/internal/domain/entity"
	"soundem/internal/domain/repository"
	"soundem/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the domain.CatalogRepository interface using GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) Artists(ctx context.Context) ([]*entity.Artist, error) {
	var artistMs []*model.ArtistModel
	if err := repo.db.WithContext(ctx).Find(&artistMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list artists")
	}

	artists := make([]*entity.Artist, 0, len(artistMs))
	for _, m := range artistMs {
		artists = append(artists, toArtistDomain(m))
	}

	return artists, nil
}

func (repo *catalogRepository) ArtistByID(ctx context.Context, id int64) (*entity.Artist, error) {
	var artistM model.ArtistModel
	if err := repo.db.WithContext(ctx).First(&artistM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArtistNotFound
		}

		return nil, errors.Wrap(err, "failed to find artist by id")
	}

	return toArtistDomain(&artistM), nil
}

// AlbumIDsForArtist replaces the original's lazy artist.albums traversal
// with an explicit query.
func (repo *catalogRepository) AlbumIDsForArtist(ctx context.Context, artistID int64) ([]int64, error) {
	var albumIDs []int64
	err := repo.db.WithContext(ctx).
		Model(&model.AlbumModel{}).
		Where("artist_id = ?", artistID).
		Pluck("id", &albumIDs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list album ids for artist")
	}

	return albumIDs, nil
}

func (repo *catalogRepository) Albums(ctx context.Context) ([]*entity.Album, error) {
	var albumMs []*model.AlbumModel
	if err := repo.db.WithContext(ctx).Find(&albumMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list albums")
	}

	albums := make([]*entity.Album, 0, len(albumMs))
	for _, m := range albumMs {
		albums = append(albums, toAlbumDomain(m))
	}

	return albums, nil
}

func (repo *catalogRepository) AlbumByID(ctx context.Context, id int64) (*entity.Album, error) {
	var albumM model.AlbumModel
	if err := repo.db.WithContext(ctx).First(&albumM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlbumNotFound
		}

		return nil, errors.Wrap(err, "failed to find album by id")
	}

	return toAlbumDomain(&albumM), nil
}

func (repo *catalogRepository) AlbumCount(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AlbumModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count albums")
	}

	return count, nil
}

func (repo *catalogRepository) Songs(ctx context.Context) ([]*entity.Song, error) {
	var songMs []*model.SongModel
	if err := repo.db.WithContext(ctx).Find(&songMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list songs")
	}

	songs := make([]*entity.Song, 0, len(songMs))
	for _, m := range songMs {
		songs = append(songs, toSongDomain(m))
	}

	return songs, nil
}

func (repo *catalogRepository) SongByID(ctx context.Context, id int64) (*entity.Song, error) {
	var songM model.SongModel
	if err := repo.db.WithContext(ctx).First(&songM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSongNotFound
		}

		return nil, errors.Wrap(err, "failed to find song by id")
	}

	return toSongDomain(&songM), nil
}

func (repo *catalogRepository) SongsByIDs(ctx context.Context, ids []int64) ([]*entity.Song, error) {
	if len(ids) == 0 {
		return []*entity.Song{}, nil
	}

	var songMs []*model.SongModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&songMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list songs by ids")
	}

	songs := make([]*entity.Song, 0, len(songMs))
	for _, m := range songMs {
		songs = append(songs, toSongDomain(m))
	}

	return songs, nil
}

func (repo *catalogRepository) SongCount(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.SongModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count songs")
	}

	return count, nil
}

func (repo *catalogRepository) TotalDuration(ctx context.Context) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.SongModel{}).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum song durations")
	}

	return total, nil
}

// --- Mapper Functions ---

func toArtistDomain(data *model.ArtistModel) *entity.Artist {
	if data == nil {
		return nil
	}

	return &entity.Artist{
		ID:   data.ID,
		Name: data.Name,
		Bio:  data.Bio,
	}
}

func toAlbumDomain(data *model.AlbumModel) *entity.Album {
	if data == nil {
		return nil
	}

	return &entity.Album{
		ID:         data.ID,
		Name:       data.Name,
		ArtworkURL: data.ArtworkURL,
		ArtistID:   data.ArtistID,
	}
}

func toSongDomain(data *model.SongModel) *entity.Song {
	if data == nil {
		return nil
	}

	return &entity.Song{
		ID:       data.ID,
		Name:     data.Name,
		URL:      data.URL,
		Duration: data.Duration,
		AlbumID:  data.AlbumID,
	}
}
