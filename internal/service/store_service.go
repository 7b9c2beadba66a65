// internal/service/store_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamestore-api/internal/domain"
	"gamestore-api/internal/metrics"
	"gamestore-api/internal/repository"
	"gamestore-api/internal/util"
	"gamestore-api/pkg/db"

	"github.com/shopspring/decimal"
)

// StoreService defines the interface for the game store's business logic.
//
// Every mutating operation evaluates its guard chain and applies its
// writes inside a single database transaction: the snapshot the guards
// validated is the snapshot the writes commit against.
type StoreService interface {
	// Catalog
	GetAllGames(ctx context.Context) ([]domain.Game, error)
	GetGames(ctx context.Context, page, size int) ([]domain.Game, int64, error)
	GetGameByID(ctx context.Context, id int64) (*domain.Game, error)
	GetGamesByCategory(ctx context.Context, category string) ([]domain.Game, error)
	SearchGames(ctx context.Context, query string) ([]domain.Game, error)
	GetGamesByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Game, error)
	CreateGame(ctx context.Context, game *domain.Game) (*domain.Game, error)

	// User profiles
	CreateUserProfile(ctx context.Context, username, email, fullName string) (*domain.UserProfile, error)
	GetUserProfile(ctx context.Context, username string) (*domain.UserProfile, error)

	// Purchases
	PurchaseGame(ctx context.Context, username string, gameID int64, paymentMethod string) (*domain.Purchase, error)
	GetUserPurchases(ctx context.Context, username string) ([]domain.Purchase, error)

	// Subscriptions
	CreateSubscription(ctx context.Context, username, tier, paymentMethod string) (*domain.Subscription, error)
	GetUserSubscription(ctx context.Context, username string) (*domain.Subscription, error)
	CancelSubscription(ctx context.Context, username string) (*domain.Subscription, error)

	// Wallet
	TopUpWallet(ctx context.Context, username string, amount decimal.Decimal) (*domain.UserProfile, error)

	// Analytics
	GetTopSpenders(ctx context.Context, limit int) ([]domain.UserProfile, error)
	GetTopBuyers(ctx context.Context, limit int) ([]domain.UserProfile, error)
	CountActiveSubscriptions(ctx context.Context) (int64, error)
	CountCompletedPurchases(ctx context.Context) (int64, error)
}

// storeService implements the StoreService interface.
type storeService struct {
	dbBeginner       db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor       repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	gameRepo         repository.GameRepository
	profileRepo      repository.UserProfileRepository
	purchaseRepo     repository.PurchaseRepository
	subscriptionRepo repository.SubscriptionRepository
	beginTx          db.BeginTxFunc
	commitTx         db.CommitTxFunc
	rollbackTx       db.RollbackTxFunc
	now              func() time.Time // Injected clock for deterministic timestamps
}

// NewStoreService creates a new instance of StoreService.
func NewStoreService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	gameRepo repository.GameRepository,
	profileRepo repository.UserProfileRepository,
	purchaseRepo repository.PurchaseRepository,
	subscriptionRepo repository.SubscriptionRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
	now func() time.Time,
) StoreService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &storeService{
		dbBeginner:       dbBeginner,
		dbExecutor:       dbExecutor,
		gameRepo:         gameRepo,
		profileRepo:      profileRepo,
		purchaseRepo:     purchaseRepo,
		subscriptionRepo: subscriptionRepo,
		beginTx:          beginTx,
		commitTx:         commitTx,
		rollbackTx:       rollbackTx,
		now:              now,
	}
}

// beginTxExecutor starts a transaction and returns it both as a
// controller and as a DBExecutor for repository calls.
func (s *storeService) beginTxExecutor(ctx context.Context, op string) (db.TxController, repository.DBExecutor, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		s.rollbackTx(txController)
		return nil, nil, fmt.Errorf("%s: transaction controller does not implement DBExecutor", op)
	}
	return txController, txExecutor, nil
}

// PurchaseGame buys a game for a user out of their wallet balance.
//
// Guard order: user exists, game exists, game not already owned,
// balance covers the price. The first failing guard wins and nothing
// is written.
func (s *storeService) PurchaseGame(ctx context.Context, username string, gameID int64, paymentMethod string) (*domain.Purchase, error) {
	txController, txExecutor, err := s.beginTxExecutor(ctx, "purchase game")
	if err != nil {
		return nil, err
	}
	defer s.rollbackTx(txController)

	user, err := s.profileRepo.GetProfileByUsername(ctx, txExecutor, username)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("purchase game: failed to get user '%s': %w", username, err)
	}

	game, err := s.gameRepo.GetGameByID(ctx, txExecutor, gameID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrGameNotFound
		}
		return nil, fmt.Errorf("purchase game: failed to get game %d: %w", gameID, err)
	}

	_, err = s.purchaseRepo.GetPurchaseByUserAndGame(ctx, txExecutor, user.ID, gameID)
	if err == nil {
		return nil, util.ErrAlreadyOwned
	}
	if !errors.Is(err, util.ErrNotFound) {
		return nil, fmt.Errorf("purchase game: failed to check existing purchase: %w", err)
	}

	if user.WalletBalance.LessThan(game.Price) {
		return nil, util.ErrInsufficientFunds
	}

	now := s.now()
	purchase := domain.NewPurchase(user, game, paymentMethod, now)
	if err := s.purchaseRepo.CreatePurchase(ctx, txExecutor, purchase); err != nil {
		return nil, fmt.Errorf("purchase game: failed to create purchase: %w", err)
	}

	user.WalletBalance = user.WalletBalance.Sub(game.Price)
	user.TotalGamesPurchased++
	user.TotalSpent = user.TotalSpent.Add(game.Price)
	user.UpdatedAt = now
	if err := s.profileRepo.UpdateProfile(ctx, txExecutor, user); err != nil {
		return nil, fmt.Errorf("purchase game: failed to update user profile: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("purchase game: failed to commit transaction: %w", err)
	}

	metrics.RecordPurchase(string(purchase.Status))
	return purchase, nil
}

// CreateSubscription signs a user up for a subscription tier, debiting
// the first month from their wallet.
//
// Guard order: user exists, no active subscription, tier is known,
// balance covers the monthly price.
func (s *storeService) CreateSubscription(ctx context.Context, username, tierName, paymentMethod string) (*domain.Subscription, error) {
	txController, txExecutor, err := s.beginTxExecutor(ctx, "create subscription")
	if err != nil {
		return nil, err
	}
	defer s.rollbackTx(txController)

	user, err := s.profileRepo.GetProfileByUsername(ctx, txExecutor, username)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("create subscription: failed to get user '%s': %w", username, err)
	}

	_, err = s.subscriptionRepo.GetActiveSubscriptionByUser(ctx, txExecutor, user.ID)
	if err == nil {
		return nil, util.ErrAlreadyActiveSubscription
	}
	if !errors.Is(err, util.ErrNotFound) {
		return nil, fmt.Errorf("create subscription: failed to check existing subscription: %w", err)
	}

	tier, ok := domain.ParseTier(tierName)
	if !ok {
		return nil, util.ErrInvalidTier
	}

	if user.WalletBalance.LessThan(tier.MonthlyPrice()) {
		return nil, util.ErrInsufficientFunds
	}

	now := s.now()
	subscription := domain.NewSubscription(user, tier, paymentMethod, now)
	if err := s.subscriptionRepo.CreateSubscription(ctx, txExecutor, subscription); err != nil {
		return nil, fmt.Errorf("create subscription: failed to create subscription: %w", err)
	}

	user.WalletBalance = user.WalletBalance.Sub(tier.MonthlyPrice())
	user.PremiumMember = true
	user.UpdatedAt = now
	if err := s.profileRepo.UpdateProfile(ctx, txExecutor, user); err != nil {
		return nil, fmt.Errorf("create subscription: failed to update user profile: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create subscription: failed to commit transaction: %w", err)
	}

	metrics.RecordSubscription(string(tier), "created")
	return subscription, nil
}

// CancelSubscription deactivates the user's active subscription and
// clears their premium flag. No refund is issued.
func (s *storeService) CancelSubscription(ctx context.Context, username string) (*domain.Subscription, error) {
	txController, txExecutor, err := s.beginTxExecutor(ctx, "cancel subscription")
	if err != nil {
		return nil, err
	}
	defer s.rollbackTx(txController)

	user, err := s.profileRepo.GetProfileByUsername(ctx, txExecutor, username)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("cancel subscription: failed to get user '%s': %w", username, err)
	}

	subscription, err := s.subscriptionRepo.GetActiveSubscriptionByUser(ctx, txExecutor, user.ID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrNoActiveSubscription
		}
		return nil, fmt.Errorf("cancel subscription: failed to get active subscription: %w", err)
	}

	now := s.now()
	subscription.Cancel(now)
	if err := s.subscriptionRepo.UpdateSubscription(ctx, txExecutor, subscription); err != nil {
		return nil, fmt.Errorf("cancel subscription: failed to update subscription: %w", err)
	}

	user.PremiumMember = false
	user.UpdatedAt = now
	if err := s.profileRepo.UpdateProfile(ctx, txExecutor, user); err != nil {
		return nil, fmt.Errorf("cancel subscription: failed to update user profile: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("cancel subscription: failed to commit transaction: %w", err)
	}

	metrics.RecordSubscription(string(subscription.Tier), "cancelled")
	return subscription, nil
}

// TopUpWallet credits the user's wallet. Zero and negative amounts are
// rejected, which keeps the non-negative balance invariant independent
// of call order.
func (s *storeService) TopUpWallet(ctx context.Context, username string, amount decimal.Decimal) (*domain.UserProfile, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidInput
	}

	txController, txExecutor, err := s.beginTxExecutor(ctx, "top up wallet")
	if err != nil {
		return nil, err
	}
	defer s.rollbackTx(txController)

	user, err := s.profileRepo.GetProfileByUsername(ctx, txExecutor, username)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("top up wallet: failed to get user '%s': %w", username, err)
	}

	user.WalletBalance = user.WalletBalance.Add(amount)
	user.UpdatedAt = s.now()
	if err := s.profileRepo.UpdateProfile(ctx, txExecutor, user); err != nil {
		return nil, fmt.Errorf("top up wallet: failed to update user profile: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("top up wallet: failed to commit transaction: %w", err)
	}

	metrics.RecordWalletTopUp()
	return user, nil
}

// CreateUserProfile registers a new user with an empty wallet.
func (s *storeService) CreateUserProfile(ctx context.Context, username, email, fullName string) (*domain.UserProfile, error) {
	txController, txExecutor, err := s.beginTxExecutor(ctx, "create user profile")
	if err != nil {
		return nil, err
	}
	defer s.rollbackTx(txController)

	_, err = s.profileRepo.GetProfileByUsername(ctx, txExecutor, username)
	if err == nil {
		return nil, fmt.Errorf("create user profile: username '%s': %w", username, util.ErrDuplicateEntry)
	}
	if !errors.Is(err, util.ErrNotFound) {
		return nil, fmt.Errorf("create user profile: failed to check existing user: %w", err)
	}

	profile := domain.NewUserProfile(username, email, fullName, s.now())
	if err := s.profileRepo.CreateProfile(ctx, txExecutor, profile); err != nil {
		return nil, fmt.Errorf("create user profile: failed to create profile: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create user profile: failed to commit transaction: %w", err)
	}

	return profile, nil
}

// GetUserProfile retrieves a user's profile by username.
func (s *storeService) GetUserProfile(ctx context.Context, username string) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.GetProfileByUsername(ctx, s.dbExecutor, username)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	return profile, nil
}

// GetUserPurchases lists a user's purchases, most recent first.
// An unknown username yields an empty list, not an error.
func (s *storeService) GetUserPurchases(ctx context.Context, username string) ([]domain.Purchase, error) {
	user, err := s.profileRepo.GetProfileByUsername(ctx, s.dbExecutor, username)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return []domain.Purchase{}, nil
		}
		return nil, fmt.Errorf("get user purchases: %w", err)
	}
	purchases, err := s.purchaseRepo.ListPurchasesByUser(ctx, s.dbExecutor, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get user purchases: %w", err)
	}
	return purchases, nil
}

// GetUserSubscription retrieves the user's active subscription. A
// missing user or absent subscription yields (nil, nil).
func (s *storeService) GetUserSubscription(ctx context.Context, username string) (*domain.Subscription, error) {
	user, err := s.profileRepo.GetProfileByUsername(ctx, s.dbExecutor, username)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user subscription: %w", err)
	}
	subscription, err := s.subscriptionRepo.GetActiveSubscriptionByUser(ctx, s.dbExecutor, user.ID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user subscription: %w", err)
	}
	return subscription, nil
}

// GetAllGames lists every active game in the catalog.
func (s *storeService) GetAllGames(ctx context.Context) ([]domain.Game, error) {
	games, err := s.gameRepo.ListActiveGames(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("get all games: %w", err)
	}
	return games, nil
}

// GetGames lists a page of active games plus the total active count.
func (s *storeService) GetGames(ctx context.Context, page, size int) ([]domain.Game, int64, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 20
	}
	games, totalCount, err := s.gameRepo.ListActiveGamesPage(ctx, s.dbExecutor, size, page*size)
	if err != nil {
		return nil, 0, fmt.Errorf("get games page: %w", err)
	}
	return games, totalCount, nil
}

// GetGameByID retrieves a single game.
func (s *storeService) GetGameByID(ctx context.Context, id int64) (*domain.Game, error) {
	game, err := s.gameRepo.GetGameByID(ctx, s.dbExecutor, id)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrGameNotFound
		}
		return nil, fmt.Errorf("get game by ID: %w", err)
	}
	return game, nil
}

// GetGamesByCategory lists active games in a category.
func (s *storeService) GetGamesByCategory(ctx context.Context, category string) ([]domain.Game, error) {
	games, err := s.gameRepo.ListGamesByCategory(ctx, s.dbExecutor, category)
	if err != nil {
		return nil, fmt.Errorf("get games by category: %w", err)
	}
	return games, nil
}

// SearchGames lists active games whose title contains the query,
// matched case-insensitively.
func (s *storeService) SearchGames(ctx context.Context, query string) ([]domain.Game, error) {
	games, err := s.gameRepo.SearchGamesByTitle(ctx, s.dbExecutor, query)
	if err != nil {
		return nil, fmt.Errorf("search games: %w", err)
	}
	return games, nil
}

// GetGamesByPriceRange lists active games priced within [min, max].
func (s *storeService) GetGamesByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Game, error) {
	if min.IsNegative() || max.LessThan(min) {
		return nil, util.ErrInvalidInput
	}
	games, err := s.gameRepo.ListGamesByPriceRange(ctx, s.dbExecutor, min, max)
	if err != nil {
		return nil, fmt.Errorf("get games by price range: %w", err)
	}
	return games, nil
}

// CreateGame adds a game to the catalog.
func (s *storeService) CreateGame(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	if game.Title == "" || game.Price.IsNegative() {
		return nil, util.ErrInvalidInput
	}
	if game.Publisher == "" {
		game.Publisher = game.Developer
	}
	if game.CreatedAt.IsZero() {
		game.CreatedAt = s.now()
	}
	game.IsActive = true
	if err := s.gameRepo.CreateGame(ctx, s.dbExecutor, game); err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return game, nil
}

// GetTopSpenders lists up to limit users by lifetime spend.
func (s *storeService) GetTopSpenders(ctx context.Context, limit int) ([]domain.UserProfile, error) {
	if limit <= 0 {
		limit = 10
	}
	profiles, err := s.profileRepo.ListTopSpenders(ctx, s.dbExecutor, limit)
	if err != nil {
		return nil, fmt.Errorf("get top spenders: %w", err)
	}
	return profiles, nil
}

// GetTopBuyers lists up to limit users by lifetime purchase count.
func (s *storeService) GetTopBuyers(ctx context.Context, limit int) ([]domain.UserProfile, error) {
	if limit <= 0 {
		limit = 10
	}
	profiles, err := s.profileRepo.ListTopBuyers(ctx, s.dbExecutor, limit)
	if err != nil {
		return nil, fmt.Errorf("get top buyers: %w", err)
	}
	return profiles, nil
}

// CountActiveSubscriptions counts currently active subscriptions.
func (s *storeService) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	count, err := s.subscriptionRepo.CountActiveSubscriptions(ctx, s.dbExecutor)
	if err != nil {
		return 0, fmt.Errorf("count active subscriptions: %w", err)
	}
	return count, nil
}

// CountCompletedPurchases counts purchases that completed successfully.
func (s *storeService) CountCompletedPurchases(ctx context.Context) (int64, error) {
	count, err := s.purchaseRepo.CountPurchasesByStatus(ctx, s.dbExecutor, domain.PurchaseStatusCompleted)
	if err != nil {
		return 0, fmt.Errorf("count completed purchases: %w", err)
	}
	return count, nil
}
