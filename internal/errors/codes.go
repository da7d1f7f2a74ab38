package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

const (
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	CodeForbidden     ErrorCode = "FORBIDDEN"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeRouteNotFound ErrorCode = "ROUTE_NOT_FOUND"
	CodeConflict      ErrorCode = "CONFLICT"

	// Storage-layer codes mapped from database error classes
	CodeUniqueConstraint     ErrorCode = "UNIQUE_CONSTRAINT"
	CodeForeignKeyConstraint ErrorCode = "FOREIGN_KEY_CONSTRAINT"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"

	CodeInternal          ErrorCode = "INTERNAL_ERROR"
	CodeHealthCheckFailed ErrorCode = "HEALTH_CHECK_FAILED"
	CodeRateLimited       ErrorCode = "RATE_LIMITED"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	CodeValidation:    "Request validation failed",
	CodeUnauthorized:  "Authentication required",
	CodeForbidden:     "Operation not permitted on this resource",
	CodeNotFound:      "Resource not found",
	CodeRouteNotFound: "Route not found",
	CodeConflict:      "Operation conflicts with existing data",

	CodeUniqueConstraint:     "A record with these values already exists",
	CodeForeignKeyConstraint: "Operation violates a data relationship",
	CodeDatabaseError:        "Database operation failed",

	CodeInternal:          "An unexpected error occurred",
	CodeHealthCheckFailed: "Service health check failed",
	CodeRateLimited:       "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code.
// If the error code is not registered, it returns a generic message.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// GetHTTPStatus returns the HTTP status code for the error code. The envelope
// success flag always agrees with the status class this mapping produces.
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodeRouteNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeUniqueConstraint, CodeForeignKeyConstraint:
		return http.StatusConflict
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeHealthCheckFailed:
		return http.StatusServiceUnavailable
	case CodeDatabaseError, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
