package handlers

import (
	stderrors "errors"
	"fmt"
	"strconv"

	"networth-tracker/internal/models"
	"networth-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// Sentinel checks tolerate service-layer wrapping. The internal errors
// package shadows the stdlib one in handler files, hence the alias.

func isNotFound(err error) bool {
	return stderrors.Is(err, services.ErrNotFound)
}

func isValidationError(err error) bool {
	return stderrors.Is(err, services.ErrValidation)
}

func isAssetConflict(err error) bool {
	return stderrors.Is(err, services.ErrAssetHasInputs)
}

func isDefaultSubcategory(err error) bool {
	return stderrors.Is(err, services.ErrDefaultSubcategory)
}

func isSubcategoryInUse(err error) bool {
	return stderrors.Is(err, services.ErrSubcategoryInUse)
}

// getUserIDFromContext extracts the authenticated user ID set by the auth
// middleware. Returns ErrUnauthorized if missing or of the wrong type.
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

// periodFromQuery reads the year and month query parameters, defaulting to
// the current period when both are absent.
func periodFromQuery(c echo.Context) (models.Period, error) {
	yearParam := c.QueryParam("year")
	monthParam := c.QueryParam("month")

	if yearParam == "" && monthParam == "" {
		return models.CurrentPeriod(), nil
	}

	year, err := strconv.Atoi(yearParam)
	if err != nil {
		return models.Period{}, fmt.Errorf("invalid year")
	}
	month, err := strconv.Atoi(monthParam)
	if err != nil {
		return models.Period{}, fmt.Errorf("invalid month")
	}

	period := models.Period{Year: year, Month: month}
	if err := period.Validate(); err != nil {
		return models.Period{}, err
	}
	return period, nil
}

// pathUUID parses a UUID path parameter
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
