// internal/repository/postgres/user_profile_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"gamestore-api/internal/domain"
	"gamestore-api/internal/repository"
	"gamestore-api/internal/util"

	"github.com/jmoiron/sqlx"
)

const profileColumns = `id, username, email, full_name, wallet_balance, premium_member, total_games_purchased, total_spent, created_at, updated_at`

// UserProfileRepository implements repository.UserProfileRepository for PostgreSQL.
type UserProfileRepository struct {
	// Stateless; methods receive a DBExecutor directly.
}

// NewUserProfileRepository creates a new UserProfileRepository.
func NewUserProfileRepository(db *sqlx.DB) repository.UserProfileRepository {
	return &UserProfileRepository{}
}

// CreateProfile inserts a new user profile into the database using the provided DBExecutor.
func (r *UserProfileRepository) CreateProfile(ctx context.Context, q repository.DBExecutor, profile *domain.UserProfile) error {
	query := `INSERT INTO user_profiles (username, email, full_name, wallet_balance, premium_member, total_games_purchased, total_spent, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		profile.Username,
		profile.Email,
		profile.FullName,
		profile.WalletBalance,
		profile.PremiumMember,
		profile.TotalGamesPurchased,
		profile.TotalSpent,
		profile.CreatedAt,
		profile.UpdatedAt,
	).Scan(&profile.ID)
	if err != nil {
		return fmt.Errorf("failed to create user profile: %w", err)
	}
	return nil
}

// GetProfileByID retrieves a profile by its ID using the provided DBExecutor.
func (r *UserProfileRepository) GetProfileByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE id = $1`
	err := q.GetContext(ctx, &profile, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user profile by ID %d: %w", id, err)
	}
	return &profile, nil
}

// GetProfileByUsername retrieves a profile by username using the provided DBExecutor.
func (r *UserProfileRepository) GetProfileByUsername(ctx context.Context, q repository.DBExecutor, username string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE username = $1`
	err := q.GetContext(ctx, &profile, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user profile by username '%s': %w", username, err)
	}
	return &profile, nil
}

// UpdateProfile persists the mutable fields of an existing profile.
func (r *UserProfileRepository) UpdateProfile(ctx context.Context, q repository.DBExecutor, profile *domain.UserProfile) error {
	query := `UPDATE user_profiles
              SET email = $1, full_name = $2, wallet_balance = $3, premium_member = $4,
                  total_games_purchased = $5, total_spent = $6, updated_at = $7
              WHERE id = $8`
	result, err := q.ExecContext(ctx, query,
		profile.Email,
		profile.FullName,
		profile.WalletBalance,
		profile.PremiumMember,
		profile.TotalGamesPurchased,
		profile.TotalSpent,
		profile.UpdatedAt,
		profile.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user profile %d: %w", profile.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating user profile %d: %w", profile.ID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no rows affected when updating user profile %d: %w", profile.ID, util.ErrNotFound)
	}
	return nil
}

// ListTopSpenders retrieves up to limit profiles ordered by total spend descending.
func (r *UserProfileRepository) ListTopSpenders(ctx context.Context, q repository.DBExecutor, limit int) ([]domain.UserProfile, error) {
	profiles := []domain.UserProfile{}
	query := `SELECT ` + profileColumns + ` FROM user_profiles ORDER BY total_spent DESC LIMIT $1`
	if err := q.SelectContext(ctx, &profiles, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list top spenders: %w", err)
	}
	return profiles, nil
}

// ListTopBuyers retrieves up to limit profiles ordered by games purchased descending.
func (r *UserProfileRepository) ListTopBuyers(ctx context.Context, q repository.DBExecutor, limit int) ([]domain.UserProfile, error) {
	profiles := []domain.UserProfile{}
	query := `SELECT ` + profileColumns + ` FROM user_profiles ORDER BY total_games_purchased DESC LIMIT $1`
	if err := q.SelectContext(ctx, &profiles, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list top buyers: %w", err)
	}
	return profiles, nil
}
