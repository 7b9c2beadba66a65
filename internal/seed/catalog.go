// internal/seed/catalog.go
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gamestore-api/internal/domain"
	"gamestore-api/internal/repository"
	"gamestore-api/pkg/db"

	"github.com/shopspring/decimal"
)

// catalogEntry is one curated title in the sample catalog.
type catalogEntry struct {
	title       string
	description string
	developer   string
	price       string
	category    string
}

// sampleCatalog is the fixed curated catalog inserted at startup.
var sampleCatalog = []catalogEntry{
	{"Cyberpunk 2077", "An open-world, action-adventure story set in Night City", "CD Projekt RED", "59.99", "RPG"},
	{"The Witcher 3: Wild Hunt", "A story-driven open world RPG", "CD Projekt RED", "29.99", "RPG"},
	{"Grand Theft Auto V", "Experience Los Santos and Blaine County", "Rockstar Games", "39.99", "Action"},
	{"Minecraft", "Build, explore, and survive in infinite worlds", "Mojang Studios", "26.95", "Sandbox"},
	{"Among Us", "A game of teamwork and betrayal", "InnerSloth", "4.99", "Multiplayer"},
	{"Fall Guys", "A massively multiplayer party royale game", "Mediatonic", "19.99", "Party"},
	{"Valorant", "A 5v5 character-based tactical FPS", "Riot Games", "0.00", "FPS"},
	{"League of Legends", "A fast-paced, competitive online game", "Riot Games", "0.00", "MOBA"},
	{"Counter-Strike 2", "The world's premier competitive FPS", "Valve", "0.00", "FPS"},
	{"Baldur's Gate 3", "A story-rich, party-based RPG", "Larian Studios", "59.99", "RPG"},
	{"Elden Ring", "A new fantasy action RPG", "FromSoftware", "59.99", "RPG"},
	{"Hogwarts Legacy", "An immersive, open-world action RPG", "Avalanche Software", "59.99", "RPG"},
	{"Call of Duty: Modern Warfare III", "The ultimate multiplayer experience", "Infinity Ward", "69.99", "FPS"},
	{"FIFA 24", "The world's game", "EA Sports", "69.99", "Sports"},
	{"NBA 2K24", "The most realistic basketball simulation", "Visual Concepts", "69.99", "Sports"},
	{"Assassin's Creed Mirage", "A return to the roots of the franchise", "Ubisoft", "49.99", "Action"},
	{"Spider-Man 2", "Swing through New York as Spider-Man", "Insomniac Games", "69.99", "Action"},
	{"God of War Ragnarök", "Embark on an epic journey", "Santa Monica Studio", "69.99", "Action"},
	{"Horizon Forbidden West", "Explore a beautiful post-apocalyptic world", "Guerrilla Games", "59.99", "Action"},
	{"The Last of Us Part II", "A story of revenge and redemption", "Naughty Dog", "59.99", "Action"},
}

// catalogImages is the parallel per-title cover image list. Titles past
// the end of this list get a placeholder URL built from the title.
var catalogImages = []string{
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2rpf.jpg", // Cyberpunk 2077
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co1wyy.jpg", // The Witcher 3
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co1r7j.jpg", // GTA V
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co1r6y.jpg", // Minecraft
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l4y.jpg", // Among Us
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l4z.jpg", // Fall Guys
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l50.jpg", // Valorant
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co1r7k.jpg", // League of Legends
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l51.jpg", // Counter-Strike 2
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l52.jpg", // Baldur's Gate 3
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l53.jpg", // Elden Ring
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l54.jpg", // Hogwarts Legacy
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l55.jpg", // Call of Duty
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l56.jpg", // FIFA 24
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l57.jpg", // NBA 2K24
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l58.jpg", // Assassin's Creed
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l59.jpg", // Spider-Man 2
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l5a.jpg", // God of War
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l5b.jpg", // Horizon
	"https://images.igdb.com/igdb/image/upload/t_cover_big/co2l5c.jpg", // The Last of Us
}

// CatalogSeeder replaces the game catalog with the curated sample list.
type CatalogSeeder struct {
	dbBeginner db.DBTxBeginner
	gameRepo   repository.GameRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
	now        func() time.Time
	logger     *slog.Logger
}

// NewCatalogSeeder creates a new CatalogSeeder.
func NewCatalogSeeder(
	dbBeginner db.DBTxBeginner,
	gameRepo repository.GameRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
	now func() time.Time,
	logger *slog.Logger,
) *CatalogSeeder {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &CatalogSeeder{
		dbBeginner: dbBeginner,
		gameRepo:   gameRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
		now:        now,
		logger:     logger,
	}
}

// Run clears the existing catalog and inserts the sample games. The
// delete and all inserts share one transaction, so the catalog is
// never observed half-replaced.
func (s *CatalogSeeder) Run(ctx context.Context) error {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return fmt.Errorf("seed catalog: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return fmt.Errorf("seed catalog: transaction controller does not implement DBExecutor")
	}

	if err := s.gameRepo.DeleteAllGames(ctx, txExecutor); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	now := s.now()
	for i, entry := range sampleCatalog {
		game, err := buildGame(i, entry, now)
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		if err := s.gameRepo.CreateGame(ctx, txExecutor, game); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	if err := s.commitTx(txController); err != nil {
		return fmt.Errorf("seed catalog: failed to commit transaction: %w", err)
	}

	s.logger.Info("Catalog seeded", "games", len(sampleCatalog))
	return nil
}

// buildGame derives the display metadata for a catalog entry from its
// list position.
func buildGame(i int, entry catalogEntry, now time.Time) (*domain.Game, error) {
	price, err := decimal.NewFromString(entry.price)
	if err != nil {
		return nil, fmt.Errorf("invalid price for '%s': %w", entry.title, err)
	}

	game := domain.NewGame(entry.title, entry.description, entry.developer, price, entry.category, now)
	game.ImageURL = imageFor(i, entry.title)
	game.Rating = 4.0 + float64(i%5)*0.2
	game.ReviewCount = 100 + i*50
	game.Tags = []string{strings.ToLower(entry.category), "popular", "trending"}
	return game, nil
}

func imageFor(i int, title string) string {
	if i < len(catalogImages) {
		return catalogImages[i]
	}
	return "https://via.placeholder.com/300x400/2a3142/ffffff?text=" + strings.ReplaceAll(title, " ", "+")
}
