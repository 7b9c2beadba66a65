// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gamestore-api/internal/api/handler"
	"gamestore-api/internal/metrics"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(storeHandler *handler.StoreHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))
	r.Use(metrics.Middleware)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus metrics
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/games", func(r chi.Router) {
			r.Get("/", storeHandler.ListGames)
			r.Post("/", storeHandler.CreateGame)
			r.Get("/paged", storeHandler.ListGamesPaged)
			r.Get("/search", storeHandler.SearchGames)
			r.Get("/price-range", storeHandler.ListGamesByPriceRange)
			r.Get("/category/{category}", storeHandler.ListGamesByCategory)
			r.Get("/{gameID}", storeHandler.GetGame)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", storeHandler.CreateProfile)
			r.Get("/{username}", storeHandler.GetProfile)
			r.Get("/{username}/purchases", storeHandler.GetUserPurchases)
			r.Get("/{username}/subscription", storeHandler.GetUserSubscription)
			r.Delete("/{username}/subscription", storeHandler.CancelSubscription)
			r.Post("/{username}/wallet/topup", storeHandler.TopUpWallet)
		})

		r.Route("/store", func(r chi.Router) {
			r.Post("/purchase", storeHandler.PurchaseGame)
			r.Post("/subscription", storeHandler.CreateSubscription)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/top-spenders", storeHandler.GetTopSpenders)
			r.Get("/top-buyers", storeHandler.GetTopBuyers)
			r.Get("/stats", storeHandler.GetStoreStats)
		})
	})

	return r
}
