// internal/repository/game_repo.go
package repository

import (
	"context"

	"gamestore-api/internal/domain"

	"github.com/shopspring/decimal"
)

// GameRepository defines the interface for catalog data operations.
type GameRepository interface {
	// CreateGame inserts a new game using the provided DBExecutor.
	CreateGame(ctx context.Context, q DBExecutor, game *domain.Game) error
	// GetGameByID retrieves a game by its ID using the provided DBExecutor.
	GetGameByID(ctx context.Context, q DBExecutor, id int64) (*domain.Game, error)
	// ListActiveGames retrieves all active games.
	ListActiveGames(ctx context.Context, q DBExecutor) ([]domain.Game, error)
	// ListActiveGamesPage retrieves a page of active games plus the total active count.
	ListActiveGamesPage(ctx context.Context, q DBExecutor, limit, offset int) ([]domain.Game, int64, error)
	// ListGamesByCategory retrieves active games in the given category.
	ListGamesByCategory(ctx context.Context, q DBExecutor, category string) ([]domain.Game, error)
	// SearchGamesByTitle retrieves active games whose title contains the
	// query, matched case-insensitively.
	SearchGamesByTitle(ctx context.Context, q DBExecutor, query string) ([]domain.Game, error)
	// ListGamesByPriceRange retrieves active games priced within [min, max].
	ListGamesByPriceRange(ctx context.Context, q DBExecutor, min, max decimal.Decimal) ([]domain.Game, error)
	// DeleteAllGames removes every game. Used by the catalog seeder.
	DeleteAllGames(ctx context.Context, q DBExecutor) error
}
