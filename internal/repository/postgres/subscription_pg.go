// internal/repository/postgres/subscription_pg.go
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

const subscriptionColumns = `id, user_id, username, tier, monthly_price, payment_method, is_active, status, started_at, updated_at`

// SubscriptionRepository implements repository.SubscriptionRepository for PostgreSQL.
type SubscriptionRepository struct {
	// Stateless; methods receive a DBExecutor directly.
}

// NewSubscriptionRepository creates a new SubscriptionRepository.
func NewSubscriptionRepository(db *sqlx.DB) repository.SubscriptionRepository {
	return &SubscriptionRepository{}
}

// CreateSubscription inserts a new subscription record using the provided DBExecutor.
func (r *SubscriptionRepository) CreateSubscription(ctx context.Context, q repository.DBExecutor, subscription *domain.Subscription) error {
	query := `INSERT INTO subscriptions (user_id, username, tier, monthly_price, payment_method, is_active, status, started_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		subscription.UserID,
		subscription.Username,
		subscription.Tier,
		subscription.MonthlyPrice,
		subscription.PaymentMethod,
		subscription.IsActive,
		subscription.Status,
		subscription.StartedAt,
		subscription.UpdatedAt,
	).Scan(&subscription.ID)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// GetActiveSubscriptionByUser retrieves the user's active subscription, if any.
func (r *SubscriptionRepository) GetActiveSubscriptionByUser(ctx context.Context, q repository.DBExecutor, userID int64) (*domain.Subscription, error) {
	var subscription domain.Subscription
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE user_id = $1 AND is_active = TRUE`
	err := q.GetContext(ctx, &subscription, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active subscription for user %d: %w", userID, err)
	}
	return &subscription, nil
}

// UpdateSubscription persists the mutable fields of an existing subscription.
func (r *SubscriptionRepository) UpdateSubscription(ctx context.Context, q repository.DBExecutor, subscription *domain.Subscription) error {
	query := `UPDATE subscriptions SET is_active = $1, status = $2, updated_at = $3 WHERE id = $4`
	result, err := q.ExecContext(ctx, query,
		subscription.IsActive,
		subscription.Status,
		subscription.UpdatedAt,
		subscription.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscription %d: %w", subscription.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating subscription %d: %w", subscription.ID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no rows affected when updating subscription %d: %w", subscription.ID, util.ErrNotFound)
	}
	return nil
}

// CountActiveSubscriptions counts subscriptions that are currently active.
func (r *SubscriptionRepository) CountActiveSubscriptions(ctx context.Context, q repository.DBExecutor) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM subscriptions WHERE is_active = TRUE`
	if err := q.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count active subscriptions: %w", err)
	}
	return count, nil
}
