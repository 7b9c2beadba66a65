// internal/repository/postgres/game_pg_test.go
package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"gamestore-api/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var gameColumnList = []string{
	"id", "title", "description", "developer", "publisher", "price",
	"category", "image_url", "rating", "review_count", "tags", "is_active", "created_at",
}

func gameRow(rows *sqlmock.Rows, id int64, title, price string) *sqlmock.Rows {
	return rows.AddRow(
		id, title, "A game", "Studio", "Studio", price,
		"RPG", "https://example.com/cover.jpg", 4.6, 1200, "{rpg,popular,trending}", true,
		time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	)
}

func TestGetGameByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGameRepository(db)

	rows := gameRow(sqlmock.NewRows(gameColumnList), 42, "Elden Ring", "59.99")
	mock.ExpectQuery(regexp.QuoteMeta("FROM games WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	game, err := repo.GetGameByID(context.Background(), db, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), game.ID)
	assert.Equal(t, "Elden Ring", game.Title)
	assert.True(t, game.Price.Equal(decimal.RequireFromString("59.99")))
	assert.Equal(t, []string{"rpg", "popular", "trending"}, []string(game.Tags))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGameByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGameRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM games WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	game, err := repo.GetGameByID(context.Background(), db, 404)
	assert.Nil(t, game)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestSearchGamesByTitleUsesCaseInsensitiveMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGameRepository(db)

	rows := gameRow(sqlmock.NewRows(gameColumnList), 2, "The Witcher 3: Wild Hunt", "29.99")
	mock.ExpectQuery(regexp.QuoteMeta("title ILIKE '%' || $1 || '%' AND is_active = TRUE")).
		WithArgs("witcher").
		WillReturnRows(rows)

	games, err := repo.SearchGamesByTitle(context.Background(), db, "witcher")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "The Witcher 3: Wild Hunt", games[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchGamesByTitleNoMatchesReturnsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGameRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("title ILIKE '%' || $1 || '%' AND is_active = TRUE")).
		WithArgs("nonexistent").
		WillReturnRows(sqlmock.NewRows(gameColumnList))

	games, err := repo.SearchGamesByTitle(context.Background(), db, "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestListActiveGamesPageReturnsPageAndCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGameRepository(db)

	rows := sqlmock.NewRows(gameColumnList)
	gameRow(rows, 1, "Among Us", "4.99")
	gameRow(rows, 2, "Baldur's Gate 3", "59.99")
	mock.ExpectQuery(regexp.QuoteMeta("FROM games WHERE is_active = TRUE ORDER BY title LIMIT $1 OFFSET $2")).
		WithArgs(2, 0).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM games WHERE is_active = TRUE")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(20))

	games, totalCount, err := repo.ListActiveGamesPage(context.Background(), db, 2, 0)
	require.NoError(t, err)
	assert.Len(t, games, 2)
	assert.Equal(t, int64(20), totalCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAllGames(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGameRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM games")).
		WillReturnResult(sqlmock.NewResult(0, 20))

	require.NoError(t, repo.DeleteAllGames(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
