package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Run("returns ID when present", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "abc-123")
		assert.Equal(t, "abc-123", FromContext(ctx))
	})

	t.Run("returns empty when absent", func(t *testing.T) {
		assert.Empty(t, FromContext(context.Background()))
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("generates new ID when header missing", func(t *testing.T) {
		var seen string
		handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = FromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})

	t.Run("propagates existing header", func(t *testing.T) {
		var seen string
		handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = FromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "incoming-id")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "incoming-id", seen)
		assert.Equal(t, "incoming-id", rec.Header().Get(RequestIDHeader))
	})
}
