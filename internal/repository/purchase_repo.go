// internal/repository/purchase_repo.go
package repository

import (
	"context"

	"gamestore-api/internal/domain"
)

// PurchaseRepository defines the interface for purchase data operations.
type PurchaseRepository interface {
	// CreatePurchase adds a new purchase record using the provided DBExecutor.
	CreatePurchase(ctx context.Context, q DBExecutor, purchase *domain.Purchase) error
	// GetPurchaseByUserAndGame retrieves the purchase for a (user, game)
	// pair, if any. Used by the duplicate-purchase guard.
	GetPurchaseByUserAndGame(ctx context.Context, q DBExecutor, userID, gameID int64) (*domain.Purchase, error)
	// ListPurchasesByUser retrieves a user's purchases, most recent first.
	ListPurchasesByUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.Purchase, error)
	// CountPurchasesByStatus counts purchases with the given status.
	CountPurchasesByStatus(ctx context.Context, q DBExecutor, status domain.PurchaseStatus) (int64, error)
}
