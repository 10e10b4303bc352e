// Package sqlite contains the concrete implementation of the persistence layer using GORM and SQLite.
package sqlite

import (
	"context"
	"log/slog"

	"soundem/config"
	"soundem/internal/domain/lifecycle"
	"soundem/internal/errors"
	"soundem/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the SQLite-backed GORM client.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the configured SQLite file and applies migrations.
// It is split out of New so tests can open an in-memory database without
// an fx lifecycle.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	// _busy_timeout makes concurrent writers queue instead of failing
	// immediately with SQLITE_BUSY. _foreign_keys rides in the DSN because
	// the pragma is per-connection: a PRAGMA after open would only cover
	// whichever pooled connection ran it.
	const dsnParams = "?_busy_timeout=5000&_foreign_keys=on"
	dsn := cfg.Database.Path + dsnParams
	inMemory := cfg.Database.Path == ":memory:"
	if inMemory {
		dsn = "file::memory:" + dsnParams
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
		TranslateError:         true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	if inMemory {
		// Every pooled connection would otherwise get its own empty
		// in-memory database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(
		&model.ArtistModel{},
		&model.AlbumModel{},
		&model.SongModel{},
		&model.UserModel{},
		&model.FavoriteModel{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate schema")
	}

	return db, nil
}
