// internal/repository/postgres/purchase_pg_test.go
package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"gamestore-api/internal/domain"
	"gamestore-api/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePurchaseAssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPurchaseRepository(db)

	purchase := &domain.Purchase{
		UserID:        1,
		Username:      "alice",
		GameID:        42,
		GameTitle:     "Elden Ring",
		PricePaid:     decimal.RequireFromString("29.99"),
		PaymentMethod: "wallet",
		Status:        domain.PurchaseStatusCompleted,
		PurchaseDate:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO purchases")).
		WithArgs(
			purchase.UserID,
			purchase.Username,
			purchase.GameID,
			purchase.GameTitle,
			purchase.PricePaid,
			purchase.PaymentMethod,
			purchase.Status,
			purchase.PurchaseDate,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	require.NoError(t, repo.CreatePurchase(context.Background(), db, purchase))
	assert.Equal(t, int64(7), purchase.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPurchaseByUserAndGameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPurchaseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM purchases WHERE user_id = $1 AND game_id = $2")).
		WithArgs(int64(1), int64(42)).
		WillReturnError(sql.ErrNoRows)

	purchase, err := repo.GetPurchaseByUserAndGame(context.Background(), db, 1, 42)
	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestListPurchasesByUserOrdersByDateDescending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPurchaseRepository(db)

	columns := []string{"id", "user_id", "username", "game_id", "game_title", "price_paid", "payment_method", "status", "purchase_date"}
	newer := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	older := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(columns).
		AddRow(8, 1, "alice", 10, "Minecraft", "26.95", "wallet", "COMPLETED", newer).
		AddRow(7, 1, "alice", 42, "Elden Ring", "29.99", "wallet", "COMPLETED", older)

	mock.ExpectQuery(regexp.QuoteMeta("FROM purchases WHERE user_id = $1 ORDER BY purchase_date DESC")).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	purchases, err := repo.ListPurchasesByUser(context.Background(), db, 1)
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.True(t, purchases[0].PurchaseDate.After(purchases[1].PurchaseDate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountPurchasesByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPurchaseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM purchases WHERE status = $1")).
		WithArgs(domain.PurchaseStatusCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountPurchasesByStatus(context.Background(), db, domain.PurchaseStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}
