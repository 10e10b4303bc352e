// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"soundem/internal/delivery/http/response"
	domainerrors "soundem/internal/domain/errors"
	"soundem/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the registration and login handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request. Input violations come
// back as a 400 listing every failed field; success is a 201 carrying the
// first bearer token.
//
// The bind target is a value struct: an empty body leaves it zero-valued,
// so a bodyless request flows into the usecase as the missing-fields case
// instead of a nil input.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return fieldViolations(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.Auth{
		ID:    output.User.ID,
		Email: output.User.Email,
		Token: output.Token,
	})
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return fieldViolations(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Auth{
		ID:    output.User.ID,
		Email: output.User.Email,
		Token: output.Token,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// fieldViolations converts struct-tag validation failures into the
// per-field 400 body, matching the shape the usecase layer produces for
// its own checks.
func fieldViolations(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	violations := domainerrors.NewValidationError()
	for _, fieldErr := range fieldErrs {
		field := strings.ToLower(fieldErr.Field())
		if fieldErr.Tag() == "email" {
			violations.Add(field, domainerrors.MsgEmailInvalid)

			continue
		}
		violations.Add(field, "Invalid value.")
	}

	return violations
}
