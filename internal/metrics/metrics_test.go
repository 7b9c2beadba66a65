// internal/metrics/metrics_test.go
package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMiddlewareCountsRequestsByStatus(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/games/999", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := scrape(t)
	assert.Contains(t, body, `gamestore_http_requests_total{method="GET",status="404"}`)
	assert.Contains(t, body, "gamestore_http_request_duration_seconds_count")
}

func TestMiddlewareDefaultsStatusToOK(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	body := scrape(t)
	assert.Contains(t, body, `gamestore_http_requests_total{method="GET",status="200"}`)
}

func TestStoreCountersAppearAfterRecording(t *testing.T) {
	RecordPurchase("COMPLETED")
	RecordSubscription("premium", "created")
	RecordWalletTopUp()

	body := scrape(t)
	assert.Contains(t, body, `gamestore_store_purchases_total{status="COMPLETED"}`)
	assert.Contains(t, body, `gamestore_store_subscriptions_total{operation="created",tier="premium"}`)
	assert.True(t, strings.Contains(body, "gamestore_store_wallet_topups_total"))
}
