// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"soundem/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
//
// Email format is checked by the delivery validator when present;
// required-ness stays with the usecase so missing email and password are
// reported together.
type RegisterInput struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// AuthOutput returns the user together with a freshly issued bearer token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// UserUsecase is the user directory: it owns identity records and issues
// and resolves sessions. This is the contract the delivery layer depends on.
type UserUsecase interface {
	// Register creates a new user. Input violations (missing email,
	// missing password, taken email) are collected into a single
	// *domainerrors.ValidationError carrying every failed field.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token. Unknown email and
	// wrong password produce the same error.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// AuthenticateToken resolves a bearer token to the user it was
	// issued for. Any failure, including a user that no longer exists,
	// yields ErrUnauthenticated.
	AuthenticateToken(ctx context.Context, tokenString string) (*entity.User, error)
}
