// internal/repository/user_profile_repo.go
package repository

import (
	"context"

	"gamestore-api/internal/domain"
)

// UserProfileRepository defines the interface for user profile data operations.
type UserProfileRepository interface {
	// CreateProfile adds a new user profile using the provided DBExecutor.
	CreateProfile(ctx context.Context, q DBExecutor, profile *domain.UserProfile) error
	// GetProfileByID retrieves a profile by its ID using the provided DBExecutor.
	GetProfileByID(ctx context.Context, q DBExecutor, id int64) (*domain.UserProfile, error)
	// GetProfileByUsername retrieves a profile by username using the provided DBExecutor.
	GetProfileByUsername(ctx context.Context, q DBExecutor, username string) (*domain.UserProfile, error)
	// UpdateProfile persists the mutable fields of an existing profile.
	UpdateProfile(ctx context.Context, q DBExecutor, profile *domain.UserProfile) error
	// ListTopSpenders retrieves up to limit profiles ordered by total spend descending.
	ListTopSpenders(ctx context.Context, q DBExecutor, limit int) ([]domain.UserProfile, error)
	// ListTopBuyers retrieves up to limit profiles ordered by games purchased descending.
	ListTopBuyers(ctx context.Context, q DBExecutor, limit int) ([]domain.UserProfile, error)
}
