// internal/domain/subscription.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// SubscriptionStatus defines the status of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
)

// Subscription represents a user's store subscription plan.
// At most one active Subscription exists per user at any time.
type Subscription struct {
	ID            int64              `db:"id" json:"id"`                         // Primary key, BIGSERIAL in DB
	UserID        int64              `db:"user_id" json:"user_id"`               // Foreign key to UserProfile
	Username      string             `db:"username" json:"username"`             // Denormalized for display
	Tier          Tier               `db:"tier" json:"tier"`                     // Subscription plan
	MonthlyPrice  decimal.Decimal    `db:"monthly_price" json:"monthly_price"`   // Price locked in at creation, NUMERIC(12, 2) in DB
	PaymentMethod string             `db:"payment_method" json:"payment_method"` // e.g., "wallet", "card"
	IsActive      bool               `db:"is_active" json:"is_active"`           // False once cancelled
	Status        SubscriptionStatus `db:"status" json:"status"`                 // ACTIVE or CANCELLED
	StartedAt     time.Time          `db:"started_at" json:"started_at"`         // Timestamp of creation
	UpdatedAt     time.Time          `db:"updated_at" json:"updated_at"`         // Refreshed on cancellation
}

// NewSubscription creates an active Subscription for a user at the given tier.
func NewSubscription(user *UserProfile, tier Tier, paymentMethod string, now time.Time) *Subscription {
	return &Subscription{
		UserID:        user.ID,
		Username:      user.Username,
		Tier:          tier,
		MonthlyPrice:  tier.MonthlyPrice(),
		PaymentMethod: paymentMethod,
		IsActive:      true,
		Status:        SubscriptionStatusActive,
		StartedAt:     now,
		UpdatedAt:     now,
	}
}

// Cancel deactivates the subscription. No refund is issued.
func (s *Subscription) Cancel(now time.Time) {
	s.IsActive = false
	s.Status = SubscriptionStatusCancelled
	s.UpdatedAt = now
}
