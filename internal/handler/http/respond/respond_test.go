package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]int{"count": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":3}`, rec.Body.String())
}

func TestSafeError(t *testing.T) {
	t.Run("validation error passes through", func(t *testing.T) {
		rec := httptest.NewRecorder()
		SafeError(rec, http.StatusBadRequest, errors.New("invalid country code \"zz\""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec), "invalid country code")
	})

	t.Run("internal detail is hidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		SafeError(rec, http.StatusBadGateway, errors.New("dial tcp 10.0.0.1:443: connection refused"))

		assert.Equal(t, "internal server error", decodeError(t, rec))
	})

	t.Run("5xx always hides the message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		SafeError(rec, http.StatusInternalServerError, errors.New("invalid state in worker"))

		assert.Equal(t, "internal server error", decodeError(t, rec))
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		SafeError(rec, http.StatusBadRequest, nil)

		assert.Empty(t, rec.Body.String())
	})
}

func TestAppSafeError(t *testing.T) {
	t.Run("app error uses its own code and message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := NewAppError(http.StatusServiceUnavailable, "news sources unavailable", errors.New("breaker open"))
		AppSafeError(rec, http.StatusInternalServerError, err)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "news sources unavailable", decodeError(t, rec))
	})

	t.Run("plain error falls back to SafeError", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AppSafeError(rec, http.StatusBadRequest, errors.New("keyword is required"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "keyword is required", decodeError(t, rec))
	})
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "anthropic key masked",
			err:  errors.New("auth failed for sk-ant-abc123-def456"),
			want: "auth failed for sk-ant-****",
		},
		{
			name: "openai key masked",
			err:  errors.New("auth failed for sk-abcdef1234567890"),
			want: "auth failed for sk-****",
		},
		{
			name: "url query api key masked",
			err:  errors.New(`get "https://newsapi.org/v2/everything?q=tech&apiKey=d4c92e160722": timeout`),
			want: `get "https://newsapi.org/v2/everything?q=tech&apiKey=****": timeout`,
		},
		{
			name: "gnews token masked",
			err:  errors.New("fetch https://gnews.io/api/v4/search?token=14070ffb failed"),
			want: "fetch https://gnews.io/api/v4/search?token=**** failed",
		},
		{
			name: "clean message untouched",
			err:  errors.New("no articles found"),
			want: "no articles found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeError(tt.err))
		})
	}
}
