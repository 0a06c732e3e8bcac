// Package provider implements source adapters for external news providers.
// Each adapter issues one bounded-timeout query against its provider, maps the
// response into canonical Article values, and filters out items missing a
// title or content. Adapters are independent: one adapter failing never
// blocks or corrupts another's results.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"news-digest/internal/domain/entity"
	"news-digest/internal/resilience/retry"
)

// Query carries the parameters of one provider call. Category and Country
// are optional; empty means no filter.
type Query struct {
	Keyword  string
	Language string
	Category string
	Country  string
}

// SourceAdapter is the contract every news provider adapter implements.
// Fetch returns the articles matching the query, already normalized and
// filtered; transport, timeout, and decode failures surface as errors that
// the aggregator absorbs into empty result sets.
type SourceAdapter interface {
	// Name identifies the adapter in logs and metrics.
	Name() string

	// Fetch performs one outbound call against the provider.
	Fetch(ctx context.Context, q Query) ([]entity.Article, error)
}

// getJSON performs an HTTP GET and decodes the JSON response body into out.
// Non-2xx responses become retry.HTTPError so the retry layer can classify them.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "news-digest/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &retry.HTTPError{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
