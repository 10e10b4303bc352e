package middleware

import (
	"log/slog"

	"soundem/internal/delivery/http/response"
	domainerrors "soundem/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps errors escaping the handlers onto the wire formats.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Validation failures report every violated field together.
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.ValidationFailed(c, validationErr.Fields)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeAppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = "Request failed"
		}
		_ = c.JSON(httpErr.Code, map[string]string{"error": message})

		return
	}

	// Anything unexpected becomes a generic 500. Detail goes to the log
	// only, never to the caller.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c)
}

func (m *ErrorMiddleware) writeAppError(c echo.Context, appErr domainerrors.AppError) {
	if appErr.HTTPCode() >= 500 {
		m.logger.Error("Internal error",
			slog.String("errorCode", appErr.ErrorCode()),
			slog.String("error", appErr.Error()),
			slog.String("path", c.Request().URL.Path),
		)
		_ = response.InternalServerError(c)

		return
	}

	_ = c.JSON(appErr.HTTPCode(), map[string]string{"error": appErr.Message()})
}
