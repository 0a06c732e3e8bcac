package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"

	"news-digest/internal/domain/entity"
	"news-digest/internal/resilience/circuitbreaker"
	"news-digest/internal/resilience/retry"
)

// NewsAPI is the source adapter for newsapi.org's "everything" search endpoint.
// It includes circuit breaker and retry logic for improved reliability.
type NewsAPI struct {
	client         *http.Client
	apiKey         string
	baseURL        string
	pageSize       int
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
}

// newsAPIResponse mirrors the provider's JSON payload.
type newsAPIResponse struct {
	Status   string           `json:"status"`
	Total    int              `json:"totalResults"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

// NewNewsAPI creates a NewsAPI adapter from the shared provider configuration.
// It automatically configures circuit breaker and retry logic.
func NewNewsAPI(cfg Config) *NewsAPI {
	return &NewsAPI{
		client:         &http.Client{Timeout: cfg.Timeout},
		apiKey:         cfg.NewsAPIKey,
		baseURL:        cfg.NewsAPIBaseURL,
		pageSize:       cfg.PageSize,
		circuitBreaker: circuitbreaker.New(circuitbreaker.NewsProviderConfig("newsapi")),
		retryConfig:    retry.NewsProviderConfig(),
	}
}

// Name implements SourceAdapter.
func (n *NewsAPI) Name() string { return "newsapi" }

// Fetch queries NewsAPI for articles matching the keyword and language.
// NewsAPI's everything endpoint has no category or country filter, so those
// query fields are ignored here.
func (n *NewsAPI) Fetch(ctx context.Context, q Query) ([]entity.Article, error) {
	if n.apiKey == "" {
		slog.Warn("newsapi adapter disabled, api key not configured")
		return nil, nil
	}

	var articles []entity.Article

	retryErr := retry.WithBackoff(ctx, n.retryConfig, func() error {
		cbResult, err := n.circuitBreaker.Execute(func() (interface{}, error) {
			return n.doFetch(ctx, q)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("newsapi circuit breaker open, request rejected",
					slog.String("service", "newsapi"),
					slog.String("state", n.circuitBreaker.State().String()))
			}
			return err
		}

		articles = cbResult.([]entity.Article)
		return nil
	})

	if retryErr != nil {
		return nil, retryErr
	}

	return articles, nil
}

// doFetch performs the actual API call without retry or circuit breaker.
func (n *NewsAPI) doFetch(ctx context.Context, q Query) ([]entity.Article, error) {
	params := url.Values{}
	params.Set("q", q.Keyword)
	params.Set("language", q.Language)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(n.pageSize))
	params.Set("apiKey", n.apiKey)

	var payload newsAPIResponse
	if err := getJSON(ctx, n.client, n.baseURL+"?"+params.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}

	if payload.Status != "ok" {
		return nil, fmt.Errorf("newsapi returned status %q", payload.Status)
	}

	articles := make([]entity.Article, 0, len(payload.Articles))
	for _, item := range payload.Articles {
		// Items without a title or description cannot flow through the pipeline
		if item.Title == "" || item.Description == "" {
			continue
		}

		source := item.Source.Name
		if source == "" {
			source = "NewsAPI"
		}

		articles = append(articles, entity.Article{
			Title:          item.Title,
			Content:        item.Description,
			Source:         source,
			URL:            item.URL,
			PublishedAt:    item.PublishedAt,
			SourcePriority: entity.UnrankedPriority,
		})
	}

	return articles, nil
}
