package sqlite

import (
	"strings"

	domainerrors "soundem/internal/domain/errors"
	"soundem/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for SQLite error checking.
func isUniqueConstraintViolation(err error) bool {
	// TranslateError maps SQLITE_CONSTRAINT_UNIQUE to GORM's sentinel.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Older driver versions surface the raw SQLite message.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint failed")
}

// isTransientContention reports busy/locked errors worth one retry.
// SQLite throws these when a concurrent writer holds the file lock past
// the busy timeout.
func isTransientContention(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "database is locked") ||
		strings.Contains(errMsg, "database table is locked")
}

// classifyWriteError maps a write failure onto the domain error
// vocabulary: lock contention becomes the retryable sentinel, everything
// else an opaque database error.
func classifyWriteError(err error, details string) error {
	if isTransientContention(err) {
		return errors.Wrap(repository.ErrTransientContention, err.Error())
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
