package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the header name for the request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey is the context key for storing the request ID
	RequestIDContextKey = "request_id"
)

// RequestID generates a unique identifier for each request and sets it in
// both the response header and the request context. An inbound X-Request-ID
// is honored so correlated clients keep their identifiers.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			requestID := req.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set(RequestIDContextKey, requestID)
			res.Header().Set(RequestIDHeader, requestID)
			return next(c)
		}
	}
}

// GetRequestID extracts the request ID from the Echo context.
// Returns empty string if not found.
func GetRequestID(c echo.Context) string {
	requestID, ok := c.Get(RequestIDContextKey).(string)
	if !ok {
		return ""
	}
	return requestID
}
