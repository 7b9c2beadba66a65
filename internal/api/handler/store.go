// internal/api/handler/store.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"gamestore-api/internal/api/types"
	"gamestore-api/internal/service"
	"gamestore-api/internal/util" // For custom errors
)

// DefaultTimeout is the per-request timeout applied by the router.
const DefaultTimeout = 30 * time.Second

// StoreHandler handles HTTP requests for the game store.
type StoreHandler struct {
	service service.StoreService
	logger  *slog.Logger
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(svc service.StoreService, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		service: svc,
		logger:  logger,
	}
}

// respondWithJSON sends a JSON response with the given status code.
func (h *StoreHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// statusForError maps service errors to HTTP status codes.
func (h *StoreHandler) statusForError(err error) int {
	switch {
	case util.IsError(err, util.ErrInvalidInput), util.IsError(err, util.ErrInvalidTier):
		return http.StatusBadRequest
	case util.IsError(err, util.ErrNotFound),
		util.IsError(err, util.ErrUserNotFound),
		util.IsError(err, util.ErrGameNotFound):
		return http.StatusNotFound
	case util.IsError(err, util.ErrAlreadyOwned),
		util.IsError(err, util.ErrAlreadyActiveSubscription),
		util.IsError(err, util.ErrNoActiveSubscription),
		util.IsError(err, util.ErrDuplicateEntry):
		return http.StatusConflict
	case util.IsError(err, util.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	default:
		h.logger.Error("Unhandled service error", "error", err)
		return http.StatusInternalServerError
	}
}

// respondWithError sends a plain error body for read endpoints.
func (h *StoreHandler) respondWithError(w http.ResponseWriter, err error) {
	code := h.statusForError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}
	h.respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithResult sends the {success, message, data} contract used by
// mutating endpoints.
func respondWithResult[T any](h *StoreHandler, w http.ResponseWriter, data *T, err error, successMessage string) {
	if err != nil {
		code := h.statusForError(err)
		message := err.Error()
		if code == http.StatusInternalServerError {
			message = "Internal server error"
		}
		h.respondWithJSON(w, code, types.Failed[T](message))
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.OK(successMessage, data))
}

// CreateProfileRequest represents the request body for profile creation.
type CreateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// CreateProfile handles user profile creation.
// POST /api/users
func (h *StoreHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if req.Username == "" || req.Email == "" {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	profile, err := h.service.CreateUserProfile(r.Context(), req.Username, req.Email, req.FullName)
	respondWithResult(h, w, profile, err, "Profile created successfully")
}

// GetProfile handles profile lookup.
// GET /api/users/{username}
func (h *StoreHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	profile, err := h.service.GetUserProfile(r.Context(), username)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, profile)
}

// PurchaseRequest represents the request body for a game purchase.
type PurchaseRequest struct {
	Username      string `json:"username"`
	GameID        int64  `json:"game_id"`
	PaymentMethod string `json:"payment_method"`
}

// PurchaseGame handles a game purchase.
// POST /api/store/purchase
func (h *StoreHandler) PurchaseGame(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if req.Username == "" || req.GameID == 0 {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "wallet"
	}

	purchase, err := h.service.PurchaseGame(r.Context(), req.Username, req.GameID, req.PaymentMethod)
	respondWithResult(h, w, purchase, err, "Purchase completed successfully")
}

// GetUserPurchases handles a user's purchase history lookup.
// GET /api/users/{username}/purchases
func (h *StoreHandler) GetUserPurchases(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	purchases, err := h.service.GetUserPurchases(r.Context(), username)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{"purchases": purchases})
}

// SubscribeRequest represents the request body for creating a subscription.
type SubscribeRequest struct {
	Username      string `json:"username"`
	Tier          string `json:"tier"`
	PaymentMethod string `json:"payment_method"`
}

// CreateSubscription handles subscription sign-up.
// POST /api/store/subscription
func (h *StoreHandler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if req.Username == "" || req.Tier == "" {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "wallet"
	}

	subscription, err := h.service.CreateSubscription(r.Context(), req.Username, req.Tier, req.PaymentMethod)
	respondWithResult(h, w, subscription, err, "Subscription created successfully")
}

// CancelSubscription handles subscription cancellation.
// DELETE /api/users/{username}/subscription
func (h *StoreHandler) CancelSubscription(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	subscription, err := h.service.CancelSubscription(r.Context(), username)
	respondWithResult(h, w, subscription, err, "Subscription cancelled")
}

// GetUserSubscription handles active subscription lookup.
// GET /api/users/{username}/subscription
func (h *StoreHandler) GetUserSubscription(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	subscription, err := h.service.GetUserSubscription(r.Context(), username)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{"subscription": subscription})
}

// TopUpRequest represents the request body for a wallet top-up.
type TopUpRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TopUpWallet handles a wallet top-up.
// POST /api/users/{username}/wallet/topup
func (h *StoreHandler) TopUpWallet(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	var req TopUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	profile, err := h.service.TopUpWallet(r.Context(), username, req.Amount)
	respondWithResult(h, w, profile, err, "Wallet topped up successfully")
}

// GetTopSpenders handles the top spenders analytics lookup.
// GET /api/analytics/top-spenders
func (h *StoreHandler) GetTopSpenders(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.GetTopSpenders(r.Context(), queryLimit(r))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{"users": profiles})
}

// GetTopBuyers handles the top buyers analytics lookup.
// GET /api/analytics/top-buyers
func (h *StoreHandler) GetTopBuyers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.GetTopBuyers(r.Context(), queryLimit(r))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{"users": profiles})
}

// GetStoreStats handles the aggregate store counters lookup.
// GET /api/analytics/stats
func (h *StoreHandler) GetStoreStats(w http.ResponseWriter, r *http.Request) {
	activeSubscriptions, err := h.service.CountActiveSubscriptions(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	completedPurchases, err := h.service.CountCompletedPurchases(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"active_subscriptions": activeSubscriptions,
		"completed_purchases":  completedPurchases,
	})
}

// queryLimit parses the optional limit query parameter.
func queryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return 10
	}
	return limit
}
