package repository

import (
	"context"
	"errors"
)

// ErrTransientContention marks a storage failure caused by short-lived
// lock contention. Callers may retry the operation once; anything else is
// not worth repeating.
var ErrTransientContention = errors.New("transient storage contention")

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside Execute shares one connection.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository

	// NewFavoriteRepository returns a FavoriteRepository bound to the current transaction.
	NewFavoriteRepository() FavoriteRepository
}
