// internal/repository/subscription_repo.go
package repository

import (
	"context"

	"gamestore-api/internal/domain"
)

// SubscriptionRepository defines the interface for subscription data operations.
type SubscriptionRepository interface {
	// CreateSubscription adds a new subscription record using the provided DBExecutor.
	CreateSubscription(ctx context.Context, q DBExecutor, subscription *domain.Subscription) error
	// GetActiveSubscriptionByUser retrieves the user's active
	// subscription, if any. Used by the single-active-subscription guard.
	GetActiveSubscriptionByUser(ctx context.Context, q DBExecutor, userID int64) (*domain.Subscription, error)
	// UpdateSubscription persists the mutable fields of an existing subscription.
	UpdateSubscription(ctx context.Context, q DBExecutor, subscription *domain.Subscription) error
	// CountActiveSubscriptions counts subscriptions that are currently active.
	CountActiveSubscriptions(ctx context.Context, q DBExecutor) (int64, error)
}
