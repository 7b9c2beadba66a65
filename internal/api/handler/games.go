// internal/api/handler/games.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"gamestore-api/internal/api/types"
	"gamestore-api/internal/domain"
	"gamestore-api/internal/util"
)

// ListGames handles the full catalog listing.
// GET /api/games
func (h *StoreHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.GetAllGames(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{"games": games})
}

// ListGamesPaged handles the paginated catalog listing.
// GET /api/games/paged?page=&size=
func (h *StoreHandler) ListGamesPaged(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size <= 0 {
		size = 20
	}

	games, totalCount, err := h.service.GetGames(r.Context(), page, size)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.PaginatedResponse[domain.Game]{
		Data:       games,
		Page:       page,
		Size:       size,
		TotalCount: totalCount,
	})
}

// GetGame handles a single game lookup.
// GET /api/games/{gameID}
func (h *StoreHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.ParseInt(chi.URLParam(r, "gameID"), 10, 64)
	if err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	game, err := h.service.GetGameByID(r.Context(), gameID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, game)
}

// ListGamesByCategory handles a category listing.
// GET /api/games/category/{category}
func (h *StoreHandler) ListGamesByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	games, err := h.service.GetGamesByCategory(r.Context(), category)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{"games": games})
}

// SearchGames handles a title search.
// GET /api/games/search?q=
func (h *StoreHandler) SearchGames(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	games, err := h.service.SearchGames(r.Context(), query)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{"games": games})
}

// ListGamesByPriceRange handles a price range listing.
// GET /api/games/price-range?min=&max=
func (h *StoreHandler) ListGamesByPriceRange(w http.ResponseWriter, r *http.Request) {
	min, err := decimal.NewFromString(r.URL.Query().Get("min"))
	if err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	max, err := decimal.NewFromString(r.URL.Query().Get("max"))
	if err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	games, err := h.service.GetGamesByPriceRange(r.Context(), min, max)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{"games": games})
}

// CreateGameRequest represents the request body for adding a game.
type CreateGameRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Developer   string          `json:"developer"`
	Publisher   string          `json:"publisher"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
	Tags        []string        `json:"tags"`
}

// CreateGame handles adding a game to the catalog.
// POST /api/games
func (h *StoreHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	game := &domain.Game{
		Title:       req.Title,
		Description: req.Description,
		Developer:   req.Developer,
		Publisher:   req.Publisher,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
	}

	created, err := h.service.CreateGame(r.Context(), game)
	respondWithResult(h, w, created, err, "Game created successfully")
}
