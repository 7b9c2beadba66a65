// internal/repository/postgres/game_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"gamestore-api/internal/domain"
	"gamestore-api/internal/repository"
	"gamestore-api/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const gameColumns = `id, title, description, developer, publisher, price, category, image_url, rating, review_count, tags, is_active, created_at`

// GameRepository implements repository.GameRepository for PostgreSQL.
type GameRepository struct {
	// Stateless; methods receive a DBExecutor directly.
}

// NewGameRepository creates a new GameRepository.
func NewGameRepository(db *sqlx.DB) repository.GameRepository {
	return &GameRepository{}
}

// CreateGame inserts a new game into the database using the provided DBExecutor.
func (r *GameRepository) CreateGame(ctx context.Context, q repository.DBExecutor, game *domain.Game) error {
	query := `INSERT INTO games (title, description, developer, publisher, price, category, image_url, rating, review_count, tags, is_active, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		game.Title,
		game.Description,
		game.Developer,
		game.Publisher,
		game.Price,
		game.Category,
		game.ImageURL,
		game.Rating,
		game.ReviewCount,
		game.Tags,
		game.IsActive,
		game.CreatedAt,
	).Scan(&game.ID)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// GetGameByID retrieves a game by its ID using the provided DBExecutor.
func (r *GameRepository) GetGameByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Game, error) {
	var game domain.Game
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	err := q.GetContext(ctx, &game, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get game by ID %d: %w", id, err)
	}
	return &game, nil
}

// ListActiveGames retrieves all active games.
func (r *GameRepository) ListActiveGames(ctx context.Context, q repository.DBExecutor) ([]domain.Game, error) {
	games := []domain.Game{}
	query := `SELECT ` + gameColumns + ` FROM games WHERE is_active = TRUE ORDER BY title`
	if err := q.SelectContext(ctx, &games, query); err != nil {
		return nil, fmt.Errorf("failed to list active games: %w", err)
	}
	return games, nil
}

// ListActiveGamesPage retrieves a page of active games plus the total
// active count. Two queries: one for the page, one for the count.
func (r *GameRepository) ListActiveGamesPage(ctx context.Context, q repository.DBExecutor, limit, offset int) ([]domain.Game, int64, error) {
	games := []domain.Game{}
	query := `SELECT ` + gameColumns + ` FROM games WHERE is_active = TRUE ORDER BY title LIMIT $1 OFFSET $2`
	if err := q.SelectContext(ctx, &games, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list active games page: %w", err)
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM games WHERE is_active = TRUE`
	if err := q.GetContext(ctx, &totalCount, countQuery); err != nil {
		return nil, 0, fmt.Errorf("failed to count active games: %w", err)
	}

	return games, totalCount, nil
}

// ListGamesByCategory retrieves active games in the given category.
func (r *GameRepository) ListGamesByCategory(ctx context.Context, q repository.DBExecutor, category string) ([]domain.Game, error) {
	games := []domain.Game{}
	query := `SELECT ` + gameColumns + ` FROM games WHERE category = $1 AND is_active = TRUE ORDER BY title`
	if err := q.SelectContext(ctx, &games, query, category); err != nil {
		return nil, fmt.Errorf("failed to list games for category '%s': %w", category, err)
	}
	return games, nil
}

// SearchGamesByTitle retrieves active games whose title contains the
// query, matched case-insensitively via ILIKE.
func (r *GameRepository) SearchGamesByTitle(ctx context.Context, q repository.DBExecutor, search string) ([]domain.Game, error) {
	games := []domain.Game{}
	query := `SELECT ` + gameColumns + ` FROM games WHERE title ILIKE '%' || $1 || '%' AND is_active = TRUE ORDER BY title`
	if err := q.SelectContext(ctx, &games, query, search); err != nil {
		return nil, fmt.Errorf("failed to search games for '%s': %w", search, err)
	}
	return games, nil
}

// ListGamesByPriceRange retrieves active games priced within [min, max].
func (r *GameRepository) ListGamesByPriceRange(ctx context.Context, q repository.DBExecutor, min, max decimal.Decimal) ([]domain.Game, error) {
	games := []domain.Game{}
	query := `SELECT ` + gameColumns + ` FROM games WHERE price BETWEEN $1 AND $2 AND is_active = TRUE ORDER BY price`
	if err := q.SelectContext(ctx, &games, query, min, max); err != nil {
		return nil, fmt.Errorf("failed to list games in price range: %w", err)
	}
	return games, nil
}

// DeleteAllGames removes every game from the catalog.
func (r *GameRepository) DeleteAllGames(ctx context.Context, q repository.DBExecutor) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM games`); err != nil {
		return fmt.Errorf("failed to delete all games: %w", err)
	}
	return nil
}
