// internal/seed/catalog_test.go
package seed

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"gamestore-api/internal/domain"
	"gamestore-api/internal/repository"
	"gamestore-api/pkg/db"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGameRepository records catalog writes during seeding.
type MockGameRepository struct {
	mock.Mock
	created []*domain.Game
}

func (m *MockGameRepository) CreateGame(ctx context.Context, q repository.DBExecutor, game *domain.Game) error {
	args := m.Called(ctx, q, game)
	m.created = append(m.created, game)
	return args.Error(0)
}

func (m *MockGameRepository) GetGameByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Game, error) {
	args := m.Called(ctx, q, id)
	return args.Get(0).(*domain.Game), args.Error(1)
}

func (m *MockGameRepository) ListActiveGames(ctx context.Context, q repository.DBExecutor) ([]domain.Game, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.Game), args.Error(1)
}

func (m *MockGameRepository) ListActiveGamesPage(ctx context.Context, q repository.DBExecutor, limit, offset int) ([]domain.Game, int64, error) {
	args := m.Called(ctx, q, limit, offset)
	return args.Get(0).([]domain.Game), args.Get(1).(int64), args.Error(2)
}

func (m *MockGameRepository) ListGamesByCategory(ctx context.Context, q repository.DBExecutor, category string) ([]domain.Game, error) {
	args := m.Called(ctx, q, category)
	return args.Get(0).([]domain.Game), args.Error(1)
}

func (m *MockGameRepository) SearchGamesByTitle(ctx context.Context, q repository.DBExecutor, query string) ([]domain.Game, error) {
	args := m.Called(ctx, q, query)
	return args.Get(0).([]domain.Game), args.Error(1)
}

func (m *MockGameRepository) ListGamesByPriceRange(ctx context.Context, q repository.DBExecutor, min, max decimal.Decimal) ([]domain.Game, error) {
	args := m.Called(ctx, q, min, max)
	return args.Get(0).([]domain.Game), args.Error(1)
}

func (m *MockGameRepository) DeleteAllGames(ctx context.Context, q repository.DBExecutor) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

// MockTxController stands in for *sqlx.Tx in seeder tests.
type MockTxController struct {
	mock.Mock
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return nil
}
func (m *MockTxController) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return nil
}
func (m *MockTxController) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (m *MockTxController) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

var seedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestSeeder(repo *MockGameRepository, tx *MockTxController) *CatalogSeeder {
	beginTx := func(ctx context.Context, _ db.DBTxBeginner) (db.TxController, error) {
		return tx, nil
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCatalogSeeder(nil, repo, beginTx, db.CommitTx, db.RollbackTx, func() time.Time { return seedNow }, logger)
}

func TestSeederReplacesCatalog(t *testing.T) {
	repo := new(MockGameRepository)
	tx := new(MockTxController)

	repo.On("DeleteAllGames", mock.Anything, tx).Return(nil)
	repo.On("CreateGame", mock.Anything, tx, mock.AnythingOfType("*domain.Game")).Return(nil)
	tx.On("Commit").Return(nil)
	tx.On("Rollback").Return(nil)

	seeder := newTestSeeder(repo, tx)
	require.NoError(t, seeder.Run(context.Background()))

	repo.AssertCalled(t, "DeleteAllGames", mock.Anything, tx)
	require.Len(t, repo.created, 20)
	tx.AssertCalled(t, "Commit")
}

func TestSeederDerivesDisplayMetadata(t *testing.T) {
	repo := new(MockGameRepository)
	tx := new(MockTxController)

	repo.On("DeleteAllGames", mock.Anything, tx).Return(nil)
	repo.On("CreateGame", mock.Anything, tx, mock.AnythingOfType("*domain.Game")).Return(nil)
	tx.On("Commit").Return(nil)
	tx.On("Rollback").Return(nil)

	seeder := newTestSeeder(repo, tx)
	require.NoError(t, seeder.Run(context.Background()))
	require.Len(t, repo.created, 20)

	first := repo.created[0]
	assert.Equal(t, "Cyberpunk 2077", first.Title)
	assert.Equal(t, "CD Projekt RED", first.Developer)
	assert.Equal(t, "CD Projekt RED", first.Publisher, "publisher defaults to developer")
	assert.True(t, first.Price.Equal(decimal.RequireFromString("59.99")))
	assert.InDelta(t, 4.0, first.Rating, 1e-9)
	assert.Equal(t, 100, first.ReviewCount)
	assert.Equal(t, []string{"rpg", "popular", "trending"}, []string(first.Tags))
	assert.Equal(t, "https://images.igdb.com/igdb/image/upload/t_cover_big/co2rpf.jpg", first.ImageURL)
	assert.True(t, first.IsActive)
	assert.Equal(t, seedNow, first.CreatedAt)

	// Rating cycles with a period of five, review count grows linearly.
	eighth := repo.created[7]
	assert.InDelta(t, 4.4, eighth.Rating, 1e-9)
	assert.Equal(t, 450, eighth.ReviewCount)

	last := repo.created[19]
	assert.InDelta(t, 4.8, last.Rating, 1e-9)
	assert.Equal(t, 1050, last.ReviewCount)
}

func TestSeederFallsBackToPlaceholderImage(t *testing.T) {
	entry := catalogEntry{
		title:       "Some Future Game",
		description: "TBD",
		developer:   "Someone",
		price:       "9.99",
		category:    "Indie",
	}

	game, err := buildGame(len(catalogImages), entry, seedNow)
	require.NoError(t, err)
	assert.Equal(t, "https://via.placeholder.com/300x400/2a3142/ffffff?text=Some+Future+Game", game.ImageURL)
}

func TestSeederRollsBackOnInsertFailure(t *testing.T) {
	repo := new(MockGameRepository)
	tx := new(MockTxController)

	repo.On("DeleteAllGames", mock.Anything, tx).Return(nil)
	repo.On("CreateGame", mock.Anything, tx, mock.AnythingOfType("*domain.Game")).Return(assert.AnError)
	tx.On("Rollback").Return(nil)

	seeder := newTestSeeder(repo, tx)
	err := seeder.Run(context.Background())
	assert.Error(t, err)
	tx.AssertNotCalled(t, "Commit")
	tx.AssertCalled(t, "Rollback")
}
