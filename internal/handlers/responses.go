package handlers

import (
	"log/slog"
	"net/http"

	"networth-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// All handlers respond through the helpers below so every payload carries the
// same envelope: {success, data|error, meta:{timestamp, request_id}}.
//
// SendError is for client and business errors (4xx); SendSystemError hides
// internal detail behind a generic 500 envelope. Handlers never call c.JSON
// with a bare error and never use echo.NewHTTPError.

const (
	// RequestIDContextKey is the context key the request-ID middleware sets
	RequestIDContextKey = "request_id"
)

// getRequestID extracts the request ID from the Echo context
func getRequestID(c echo.Context) string {
	requestID, ok := c.Get(RequestIDContextKey).(string)
	if !ok {
		return ""
	}
	return requestID
}

// SendSuccess sends an envelope-wrapped success response
func SendSuccess(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, errors.NewSuccessEnvelope(data, getRequestID(c)))
}

// SendError sends a standardized error envelope
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	envelope := errors.NewErrorEnvelope(code, getRequestID(c), opts...)
	return c.JSON(envelope.HTTPStatus(), envelope)
}

// SendSystemError wraps an internal error with a generic message and logs it
func SendSystemError(c echo.Context, err error) error {
	envelope, logErr := errors.WrapInternalError(err, getRequestID(c))
	slog.Error("internal error",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"request_id", getRequestID(c),
		"error", logErr,
	)
	return c.JSON(http.StatusInternalServerError, envelope)
}
