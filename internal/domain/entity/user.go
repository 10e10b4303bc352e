// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered account, identified by its email address.
// Email is the natural key and is treated case-sensitively; uniqueness is
// enforced by the persistence layer at creation time.
type User struct {
	ID           int64     // Autoincrement identifier, referenced by bearer tokens and favorites.
	Email        string    // Login identifier. Unique across all users.
	PasswordHash string    // Salted one-way digest of the password. Never empty once created, never the raw password.
	CreatedAt    time.Time // Timestamp of registration.
}
