// internal/repository/postgres/purchase_pg.go
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

const purchaseColumns = `id, user_id, username, game_id, game_title, price_paid, payment_method, status, purchase_date`

// PurchaseRepository implements repository.PurchaseRepository for PostgreSQL.
type PurchaseRepository struct {
	// Stateless; methods receive a DBExecutor directly.
}

// NewPurchaseRepository creates a new PurchaseRepository.
func NewPurchaseRepository(db *sqlx.DB) repository.PurchaseRepository {
	return &PurchaseRepository{}
}

// CreatePurchase inserts a new purchase record using the provided DBExecutor.
func (r *PurchaseRepository) CreatePurchase(ctx context.Context, q repository.DBExecutor, purchase *domain.Purchase) error {
	query := `INSERT INTO purchases (user_id, username, game_id, game_title, price_paid, payment_method, status, purchase_date)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		purchase.UserID,
		purchase.Username,
		purchase.GameID,
		purchase.GameTitle,
		purchase.PricePaid,
		purchase.PaymentMethod,
		purchase.Status,
		purchase.PurchaseDate,
	).Scan(&purchase.ID)
	if err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

// GetPurchaseByUserAndGame retrieves the purchase for a (user, game) pair, if any.
func (r *PurchaseRepository) GetPurchaseByUserAndGame(ctx context.Context, q repository.DBExecutor, userID, gameID int64) (*domain.Purchase, error) {
	var purchase domain.Purchase
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE user_id = $1 AND game_id = $2`
	err := q.GetContext(ctx, &purchase, query, userID, gameID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get purchase for user %d and game %d: %w", userID, gameID, err)
	}
	return &purchase, nil
}

// ListPurchasesByUser retrieves a user's purchases, most recent first.
func (r *PurchaseRepository) ListPurchasesByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Purchase, error) {
	purchases := []domain.Purchase{}
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE user_id = $1 ORDER BY purchase_date DESC`
	if err := q.SelectContext(ctx, &purchases, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list purchases for user %d: %w", userID, err)
	}
	return purchases, nil
}

// CountPurchasesByStatus counts purchases with the given status.
func (r *PurchaseRepository) CountPurchasesByStatus(ctx context.Context, q repository.DBExecutor, status domain.PurchaseStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM purchases WHERE status = $1`
	if err := q.GetContext(ctx, &count, query, status); err != nil {
		return 0, fmt.Errorf("failed to count purchases with status '%s': %w", status, err)
	}
	return count, nil
}
