// internal/repository/postgres/user_profile_pg_test.go
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

var profileColumnList = []string{
	"id", "username", "email", "full_name", "wallet_balance", "premium_member",
	"total_games_purchased", "total_spent", "created_at", "updated_at",
}

func TestGetProfileByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserProfileRepository(db)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(profileColumnList).
		AddRow(1, "alice", "alice@example.com", "Alice Example", "50.00", false, 0, "0.00", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_profiles WHERE username = $1")).
		WithArgs("alice").
		WillReturnRows(rows)

	profile, err := repo.GetProfileByUsername(context.Background(), db, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.ID)
	assert.True(t, profile.WalletBalance.Equal(decimal.RequireFromString("50.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfileByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserProfileRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_profiles WHERE username = $1")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	profile, err := repo.GetProfileByUsername(context.Background(), db, "ghost")
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestUpdateProfileMissingRowReturnsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserProfileRepository(db)

	profile := &domain.UserProfile{
		ID:            99,
		Email:         "ghost@example.com",
		WalletBalance: decimal.Zero,
		TotalSpent:    decimal.Zero,
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE user_profiles")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProfile(context.Background(), db, profile)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestListTopSpendersPassesLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserProfileRepository(db)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(profileColumnList).
		AddRow(1, "alice", "alice@example.com", "Alice Example", "20.01", false, 3, "120.00", now, now).
		AddRow(2, "bob", "bob@example.com", "Bob Example", "5.00", false, 1, "29.99", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY total_spent DESC LIMIT $1")).
		WithArgs(2).
		WillReturnRows(rows)

	profiles, err := repo.ListTopSpenders(context.Background(), db, 2)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "alice", profiles[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}
