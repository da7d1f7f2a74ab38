package services

import (
	"errors"
	"fmt"
	"log/slog"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"

	"github.com/google/uuid"
)

var (
	// ErrDefaultSubcategory signals an attempt to modify or delete a system
	// default. Defaults are visible to everyone, so unlike other resources
	// the refusal is a 403 rather than pretending absence.
	ErrDefaultSubcategory = errors.New("system default subcategories cannot be modified")
	// ErrSubcategoryInUse signals a delete refused because expenses still
	// reference the subcategory.
	ErrSubcategoryInUse = errors.New("subcategory is referenced by expenses")
)

type subcategoryService struct {
	subcategoryRepo repositories.SubcategoryRepositoryInterface
}

// NewSubcategoryService creates a new subcategory service
func NewSubcategoryService(subcategoryRepo repositories.SubcategoryRepositoryInterface) SubcategoryServiceInterface {
	return &subcategoryService{subcategoryRepo: subcategoryRepo}
}

// List returns the system defaults plus the user's own subcategories
func (s *subcategoryService) List(userID uuid.UUID) (*dto.SubcategoryListResponse, error) {
	subcategories, err := s.subcategoryRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	return &dto.SubcategoryListResponse{Subcategories: subcategories}, nil
}

// Create adds a user-owned subcategory
func (s *subcategoryService) Create(userID uuid.UUID, req *dto.CreateSubcategoryRequest) (*models.ExpenseSubcategory, error) {
	subcategory := &models.ExpenseSubcategory{
		UserID:   &userID,
		Category: req.Category,
		Name:     req.Name,
	}
	if err := s.subcategoryRepo.Create(subcategory); err != nil {
		return nil, fmt.Errorf("failed to create subcategory: %w", err)
	}

	slog.Info("subcategory created", "user_id", userID, "subcategory_id", subcategory.ID)
	return subcategory, nil
}

// Update renames a subcategory the user owns. Defaults are refused outright;
// other users' rows read as absent.
func (s *subcategoryService) Update(userID, subcategoryID uuid.UUID, req *dto.UpdateSubcategoryRequest) (*models.ExpenseSubcategory, error) {
	subcategory, err := s.authorize(userID, subcategoryID)
	if err != nil {
		return nil, err
	}

	subcategory.Name = req.Name
	if err := s.subcategoryRepo.Update(subcategory); err != nil {
		return nil, fmt.Errorf("failed to update subcategory: %w", err)
	}
	return subcategory, nil
}

// Delete removes a subcategory the user owns, refusing while expenses still
// reference it.
func (s *subcategoryService) Delete(userID, subcategoryID uuid.UUID) error {
	if _, err := s.authorize(userID, subcategoryID); err != nil {
		return err
	}

	if err := s.subcategoryRepo.DeleteIfUnreferenced(subcategoryID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSubcategoryReferenced):
			return ErrSubcategoryInUse
		case errors.Is(err, repositories.ErrSubcategoryNotFound):
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete subcategory: %w", err)
	}

	slog.Info("subcategory deleted", "user_id", userID, "subcategory_id", subcategoryID)
	return nil
}

func (s *subcategoryService) authorize(userID, subcategoryID uuid.UUID) (*models.ExpenseSubcategory, error) {
	subcategory, err := s.subcategoryRepo.GetByID(subcategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrSubcategoryNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subcategory: %w", err)
	}

	if subcategory.IsDefault() {
		return nil, ErrDefaultSubcategory
	}
	if !subcategory.OwnedBy(userID) {
		return nil, ErrNotFound
	}
	return subcategory, nil
}
