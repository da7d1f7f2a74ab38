package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"networth-tracker/internal/errors"
	"networth-tracker/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery catches panics in the handler chain, logs the stack trace,
// and returns a generic 500 envelope so the process keeps serving.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("panic recovered",
						"panic", fmt.Sprintf("%v", r),
						"method", c.Request().Method,
						"path", c.Request().URL.Path,
						"request_id", GetRequestID(c),
						"stack", string(debug.Stack()),
					)

					if !c.Response().Committed {
						_ = handlers.SendError(c, errors.CodeInternal)
					}
				}
			}()
			return next(c)
		}
	}
}
