package middleware

import (
	stderrors "errors"

	"networth-tracker/internal/errors"
	"networth-tracker/internal/handlers"
	"networth-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// UserIDContextKey is the context key carrying the authenticated user's ID
const UserIDContextKey = "user_id"

// RequireAuth verifies the bearer token on every request and resolves the
// token subject to a local user record, provisioning one on first sight.
// The resolved user ID is stored in the context for handlers.
func RequireAuth(tokenService services.TokenServiceInterface, userService services.UserServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.CodeUnauthorized,
					errors.WithDetails("Authorization header is required"))
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.CodeUnauthorized,
					errors.WithDetails("Authorization header must use the Bearer scheme"))
			}

			claims, err := tokenService.ValidateToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.CodeUnauthorized,
						errors.WithDetails("Token has expired"))
				}
				return handlers.SendError(c, errors.CodeUnauthorized,
					errors.WithDetails("Token is invalid"))
			}

			user, err := userService.ResolveIdentity(claims)
			if err != nil {
				return handlers.SendSystemError(c, err)
			}

			c.Set(UserIDContextKey, user.ID)
			return next(c)
		}
	}
}
