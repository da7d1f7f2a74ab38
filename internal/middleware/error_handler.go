package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"networth-tracker/internal/errors"
	"networth-tracker/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomHTTPErrorHandler converts every error that escapes a handler into
// the standard envelope. Echo's own errors (unknown routes, bad method,
// oversized bodies) and validator failures are mapped to stable error codes;
// anything else becomes a generic 500 with the original error logged.
func CustomHTTPErrorHandler(metrics services.MetricsRecorderInterface) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		requestID := GetRequestID(c)

		var envelope *errors.Envelope
		var logErr error

		var httpErr *echo.HTTPError
		var validationErrs validator.ValidationErrors

		switch {
		case stderrors.As(err, &httpErr):
			code := mapHTTPStatusToErrorCode(httpErr.Code)
			opts := []errors.ErrorOption{}
			if msg, ok := httpErr.Message.(string); ok && msg != "" {
				opts = append(opts, errors.WithDetails(msg))
			}
			envelope = errors.NewErrorEnvelope(code, requestID, opts...)
		case stderrors.As(err, &validationErrs):
			fieldErrors := make(map[string]string, len(validationErrs))
			for _, fe := range validationErrs {
				fieldErrors[fe.Field()] = formatValidationError(fe)
			}
			envelope = errors.NewValidationEnvelope(fieldErrors, requestID)
		default:
			envelope, logErr = errors.WrapInternalError(err, requestID)
		}

		status := envelope.HTTPStatus()
		metrics.IncrementError(envelope.Error.Code)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Log(c.Request().Context(), level, "request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", status,
			"code", envelope.Error.Code,
			"request_id", requestID,
			"error", errString(logErr),
		)

		if jsonErr := c.JSON(status, envelope); jsonErr != nil {
			slog.Error("failed to write error response", "error", jsonErr)
		}
	}
}

// mapHTTPStatusToErrorCode translates Echo's HTTP statuses into envelope codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return errors.CodeValidation
	case http.StatusUnauthorized:
		return errors.CodeUnauthorized
	case http.StatusForbidden:
		return errors.CodeForbidden
	case http.StatusNotFound:
		return errors.CodeRouteNotFound
	case http.StatusConflict:
		return errors.CodeConflict
	case http.StatusTooManyRequests:
		return errors.CodeRateLimited
	default:
		if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
			return errors.CodeValidation
		}
		return errors.CodeInternal
	}
}

// formatValidationError produces a human-readable message for a field error
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on '%s'", fe.Tag())
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
