package whatsup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/otpgate/otpgate/internal/auth/entity"
	"github.com/otpgate/otpgate/internal/pkg/instrument"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Config{
		BaseURL: srv.URL,
		APIKey:  "api-key",
		Timeout: 2 * time.Second,
	}, instrument.NewNoop())
}

func TestExchangeCredential(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/user/login", r.URL.Path)
			assert.Equal(t, "Basic api-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "628111111111", req["contact_number"])
			assert.Equal(t, "Alice", req["name"])

			_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "provider-token"})
		}))

		token, err := c.ExchangeCredential(ctx, "628111111111", "Alice")

		require.NoError(t, err)
		assert.Equal(t, "provider-token", token)
	})

	t.Run("ProviderRejection", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]any{"status": 403, "title": "Account Disabled"})
		}))

		_, err := c.ExchangeCredential(ctx, "628111111111", "Alice")

		var perr *entity.ProviderError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 403, perr.Status)
		assert.Equal(t, "Account Disabled", perr.Title)
	})

	t.Run("MalformedErrorBody", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}))

		_, err := c.ExchangeCredential(ctx, "628111111111", "Alice")

		var perr *entity.ProviderError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, http.StatusBadGateway, perr.Status)
		assert.Equal(t, http.StatusText(http.StatusBadGateway), perr.Title)
	})

	t.Run("NoRetryOnRejection", func(t *testing.T) {
		calls := 0
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"status": 401, "title": "Bad Key"})
		}))

		_, err := c.ExchangeCredential(ctx, "628111111111", "Alice")

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestSendText(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/message/text", r.URL.Path)
			assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))

			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "628111111111", req["contact_number"])
			assert.Equal(t, "your code is abc123", req["message"])

			w.WriteHeader(http.StatusOK)
		}))

		err := c.SendText(ctx, "admin-token", "628111111111", "your code is abc123")

		assert.NoError(t, err)
	})

	t.Run("ProviderRejection", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{"status": 429, "title": "Rate Limited"})
		}))

		err := c.SendText(ctx, "admin-token", "628111111111", "your code is abc123")

		var perr *entity.ProviderError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 429, perr.Status)
	})
}
