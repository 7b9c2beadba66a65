// internal/domain/user_profile.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// UserProfile represents a store customer and their wallet.
//
// WalletBalance must never go negative: every spend is guarded by a
// balance check before the debit is applied.
type UserProfile struct {
	ID                  int64           `db:"id" json:"id"`                                       // Primary key, BIGSERIAL in DB
	Username            string          `db:"username" json:"username"`                           // Unique username
	Email               string          `db:"email" json:"email"`                                 // Contact email
	FullName            string          `db:"full_name" json:"full_name"`                         // Display name
	WalletBalance       decimal.Decimal `db:"wallet_balance" json:"wallet_balance"`               // Current balance, NUMERIC(12, 2) in DB
	PremiumMember       bool            `db:"premium_member" json:"premium_member"`               // True while a subscription is active
	TotalGamesPurchased int             `db:"total_games_purchased" json:"total_games_purchased"` // Lifetime purchase counter
	TotalSpent          decimal.Decimal `db:"total_spent" json:"total_spent"`                     // Lifetime spend accumulator
	CreatedAt           time.Time       `db:"created_at" json:"created_at"`                       // Timestamp of creation
	UpdatedAt           time.Time       `db:"updated_at" json:"updated_at"`                       // Refreshed on every mutation
}

// NewUserProfile creates a new UserProfile with an empty wallet.
func NewUserProfile(username, email, fullName string, now time.Time) *UserProfile {
	return &UserProfile{
		Username:      username,
		Email:         email,
		FullName:      fullName,
		WalletBalance: decimal.Zero,
		TotalSpent:    decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
