// Package middleware contains the HTTP middleware of the delivery layer.
package middleware

import (
	"strings"

	"soundem/internal/delivery/http/response"
	"soundem/internal/domain/entity"
	domainerrors "soundem/internal/domain/errors"
	"soundem/internal/usecase"

	"github.com/labstack/echo/v4"
)

// userContextKey is the echo context key holding the authenticated user.
const userContextKey = "user"

// AuthMiddleware authenticates requests carrying a bearer token.
type AuthMiddleware struct {
	userUsecase usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUsecase usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{userUsecase: userUsecase}
}

// Authenticate resolves the Authorization header to a user and stores it
// on the echo context. A missing header, a malformed scheme, a bad token
// and a vanished user all produce the same 401 body.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.Message())
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.Message())
		}

		user, err := m.userUsecase.AuthenticateToken(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.Message())
		}

		c.Set(userContextKey, user)

		return next(c)
	}
}

// CurrentUser returns the authenticated user set by Authenticate, or nil
// when the request did not pass through it.
func CurrentUser(c echo.Context) *entity.User {
	user, ok := c.Get(userContextKey).(*entity.User)
	if !ok {
		return nil
	}

	return user
}
