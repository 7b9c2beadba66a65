// internal/domain/purchase.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// PurchaseStatus defines the status of a game purchase.
type PurchaseStatus string

const (
	PurchaseStatusCompleted PurchaseStatus = "COMPLETED"
	PurchaseStatusRefunded  PurchaseStatus = "REFUNDED"
)

// Purchase records a single game bought by a user. Immutable after
// creation; at most one exists per (user, game) pair.
type Purchase struct {
	ID            int64           `db:"id" json:"id"`                         // Primary key, BIGSERIAL in DB
	UserID        int64           `db:"user_id" json:"user_id"`               // Foreign key to UserProfile
	Username      string          `db:"username" json:"username"`             // Denormalized at purchase time for display
	GameID        int64           `db:"game_id" json:"game_id"`               // Foreign key to Game
	GameTitle     string          `db:"game_title" json:"game_title"`         // Denormalized at purchase time for display
	PricePaid     decimal.Decimal `db:"price_paid" json:"price_paid"`         // Price at time of purchase, NUMERIC(12, 2) in DB
	PaymentMethod string          `db:"payment_method" json:"payment_method"` // e.g., "wallet", "card"
	Status        PurchaseStatus  `db:"status" json:"status"`                 // COMPLETED once the guard chain passes
	PurchaseDate  time.Time       `db:"purchase_date" json:"purchase_date"`   // Timestamp of the purchase
}

// NewPurchase creates a completed Purchase record for a user and game.
func NewPurchase(user *UserProfile, game *Game, paymentMethod string, now time.Time) *Purchase {
	return &Purchase{
		UserID:        user.ID,
		Username:      user.Username,
		GameID:        game.ID,
		GameTitle:     game.Title,
		PricePaid:     game.Price,
		PaymentMethod: paymentMethod,
		Status:        PurchaseStatusCompleted,
		PurchaseDate:  now,
	}
}
