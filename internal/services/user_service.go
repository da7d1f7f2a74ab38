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
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
)

type userService struct {
	userRepo repositories.UserRepositoryInterface
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepositoryInterface) UserServiceInterface {
	return &userService{userRepo: userRepo}
}

// ResolveIdentity maps verified token claims to a local user row, creating it
// on first contact. The subject claim is the only join key; email and name
// are convenience copies refreshed opportunistically.
func (s *userService) ResolveIdentity(claims *models.IdentityClaims) (*models.User, error) {
	user, err := s.userRepo.GetBySubject(claims.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	user = &models.User{
		Subject:     claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Username,
	}
	if user.DisplayName == "" {
		user.DisplayName = claims.Email
	}

	if err := s.userRepo.Create(user); err != nil {
		// A concurrent first request may have provisioned the row already.
		if repositories.IsUniqueViolation(err) {
			return s.userRepo.GetBySubject(claims.Subject)
		}
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	slog.Info("provisioned new user", "user_id", user.ID, "subject", claims.Subject)
	return user, nil
}

// GetProfile returns the authenticated user's profile
func (s *userService) GetProfile(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return user, nil
}

// UpdateProfile applies the provided profile fields
func (s *userService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	fields := map[string]interface{}{}
	if req.DisplayName != nil {
		fields["display_name"] = *req.DisplayName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if len(fields) == 0 {
		return s.GetProfile(userID)
	}

	if err := s.userRepo.UpdateProfile(userID, fields); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	slog.Info("profile updated", "user_id", userID)
	return s.GetProfile(userID)
}
