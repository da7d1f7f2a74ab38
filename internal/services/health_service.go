package services

import (
	"errors"
	"fmt"
	"time"

	"networth-tracker/internal/database"
	"networth-tracker/internal/dto"
	"networth-tracker/internal/models"
)

// ErrHealthCheckFailed signals a failed liveness probe against the database
var ErrHealthCheckFailed = errors.New("health check failed")

type healthService struct {
	db *database.DB
}

// NewHealthService creates a new health service
func NewHealthService(db *database.DB) HealthServiceInterface {
	return &healthService{db: db}
}

// Check pings the database and reports per-table row counts
func (s *healthService) Check() (*dto.HealthResponse, error) {
	response := &dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Database:  "up",
	}

	if err := s.db.HealthCheck(); err != nil {
		response.Status = "degraded"
		response.Database = "down"
		return response, fmt.Errorf("%w: %v", ErrHealthCheckFailed, err)
	}

	tables := map[string]interface{}{
		"users":                 &models.User{},
		"assets":                &models.Asset{},
		"asset_inputs":          &models.AssetInput{},
		"incoming_items":        &models.IncomingItem{},
		"expense_items":         &models.ExpenseItem{},
		"budgets":               &models.Budget{},
		"allocation_targets":    &models.CategoryAllocationTarget{},
		"expense_subcategories": &models.ExpenseSubcategory{},
	}

	counts := make(map[string]int64, len(tables))
	for name, model := range tables {
		var count int64
		if err := s.db.Model(model).Count(&count).Error; err != nil {
			response.Status = "degraded"
			response.Database = "down"
			return response, fmt.Errorf("%w: %v", ErrHealthCheckFailed, err)
		}
		counts[name] = count
	}
	response.Tables = counts

	return response, nil
}
