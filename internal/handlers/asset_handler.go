package handlers

import (
	"net/http"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/errors"
	"networth-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AssetHandler handles asset CRUD requests
type AssetHandler struct {
	assetService services.AssetServiceInterface
	inputService services.AssetInputServiceInterface
	metrics      services.MetricsRecorderInterface
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(
	assetService services.AssetServiceInterface,
	inputService services.AssetInputServiceInterface,
	metrics services.MetricsRecorderInterface,
) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
		inputService: inputService,
		metrics:      metrics,
	}
}

// ListAssets returns all assets of the authenticated user
func (h *AssetHandler) ListAssets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	assets, err := h.assetService.ListAssets(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendSuccess(c, http.StatusOK, assets)
}

// CreateAsset adds an asset to the authenticated user's portfolio
func (h *AssetHandler) CreateAsset(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	var req dto.CreateAssetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	asset, err := h.assetService.CreateAsset(userID, &req)
	if err != nil {
		if isValidationError(err) {
			return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("asset", "create")
	return SendSuccess(c, http.StatusCreated, asset)
}

// UpdateAsset applies partial changes to an asset
func (h *AssetHandler) UpdateAsset(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	assetID, err := pathUUID(c, "id")
	if err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateAssetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	asset, err := h.assetService.UpdateAsset(userID, assetID, &req)
	if err != nil {
		switch {
		case isNotFound(err):
			return SendError(c, errors.CodeNotFound)
		case isValidationError(err):
			return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("asset", "update")
	return SendSuccess(c, http.StatusOK, asset)
}

// DeleteAsset removes an asset; ?force=true cascades its snapshots
func (h *AssetHandler) DeleteAsset(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	assetID, err := pathUUID(c, "id")
	if err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	force := c.QueryParam("force") == "true"
	if err := h.assetService.DeleteAsset(userID, assetID, force); err != nil {
		switch {
		case isNotFound(err):
			return SendError(c, errors.CodeNotFound)
		case isAssetConflict(err):
			return SendError(c, errors.CodeConflict,
				errors.WithDetails("asset has recorded snapshots; pass force=true to delete them too"))
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("asset", "delete")
	return SendSuccess(c, http.StatusOK, map[string]string{"message": "asset deleted"})
}

// ListInputs returns the snapshots of one period
func (h *AssetHandler) ListInputs(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	period, err := periodFromQuery(c)
	if err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	inputs, err := h.inputService.ListByPeriod(userID, period)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendSuccess(c, http.StatusOK, inputs)
}

// SaveInput upserts the snapshot for one (asset, year, month)
func (h *AssetHandler) SaveInput(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	var req dto.SaveAssetInputRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	input, err := h.inputService.Save(userID, &req)
	if err != nil {
		switch {
		case isNotFound(err):
			return SendError(c, errors.CodeNotFound)
		case isValidationError(err):
			return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("asset_input", "upsert")
	return SendSuccess(c, http.StatusOK, input)
}

// DeleteInput removes one snapshot
func (h *AssetHandler) DeleteInput(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	inputID, err := pathUUID(c, "id")
	if err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	if err := h.inputService.Delete(userID, inputID); err != nil {
		if isNotFound(err) {
			return SendError(c, errors.CodeNotFound)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("asset_input", "delete")
	return SendSuccess(c, http.StatusOK, map[string]string{"message": "asset input deleted"})
}
