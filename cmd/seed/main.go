// Command seed rebuilds the catalog tables from a JSON fixture file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"soundem/config"
	logs "soundem/internal/infra/log"
	"soundem/internal/infra/persistence/model"
	"soundem/internal/infra/persistence/sqlite"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type fixtureSong struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Duration int64  `json:"duration"`
}

type fixtureAlbum struct {
	Name       string        `json:"name"`
	ArtworkURL string        `json:"artwork_url"`
	Songs      []fixtureSong `json:"songs"`
}

type fixtureArtist struct {
	Name   string         `json:"name"`
	Bio    string         `json:"bio"`
	Albums []fixtureAlbum `json:"albums"`
}

func main() {
	fixturePath := flag.String("fixtures", "fixtures/sample.json", "path to the catalog fixture file")
	flag.Parse()

	if err := run(*fixturePath); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(fixturePath string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "init logger")
	}

	db, err := sqlite.Open(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "open database")
	}

	data, err := os.ReadFile(fixturePath)
	if err != nil {
		return errors.Wrap(err, "read fixture file")
	}

	var artists []fixtureArtist
	if err := json.Unmarshal(data, &artists); err != nil {
		return errors.Wrap(err, "parse fixture file")
	}

	logger.Info("Resetting catalog tables")
	if err := resetCatalog(db); err != nil {
		return err
	}

	for _, artist := range artists {
		logger.Info("Creating artist", slog.String("name", artist.Name))
		if err := createArtist(db, artist); err != nil {
			return err
		}
	}

	logger.Info("Seed complete", slog.Int("artists", len(artists)))

	return nil
}

// resetCatalog empties the catalog tables. Users and favorites survive a
// reseed; favorites pointing at dropped songs go with their songs through
// the cascade.
func resetCatalog(db *gorm.DB) error {
	for _, m := range []any{&model.SongModel{}, &model.AlbumModel{}, &model.ArtistModel{}} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return errors.Wrap(err, "reset catalog tables")
		}
	}

	return nil
}

func createArtist(db *gorm.DB, artist fixtureArtist) error {
	return db.Transaction(func(tx *gorm.DB) error {
		artistRow := &model.ArtistModel{Name: artist.Name, Bio: artist.Bio}
		if err := tx.Create(artistRow).Error; err != nil {
			return errors.Wrapf(err, "create artist %q", artist.Name)
		}

		for _, album := range artist.Albums {
			albumRow := &model.AlbumModel{
				Name:       album.Name,
				ArtworkURL: album.ArtworkURL,
				ArtistID:   artistRow.ID,
			}
			if err := tx.Create(albumRow).Error; err != nil {
				return errors.Wrapf(err, "create album %q", album.Name)
			}

			for _, song := range album.Songs {
				songRow := &model.SongModel{
					Name:     song.Name,
					URL:      song.URL,
					Duration: song.Duration,
					AlbumID:  albumRow.ID,
				}
				if err := tx.Create(songRow).Error; err != nil {
					return errors.Wrapf(err, "create song %q", song.Name)
				}
			}
		}

		return nil
	})
}
