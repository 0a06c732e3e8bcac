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

// GNews is the source adapter for gnews.io's search endpoint. Unlike NewsAPI
// it supports category and country filters, which makes it the adapter the
// aggregator fans out over the caller's country-priority list.
type GNews struct {
	client         *http.Client
	apiKey         string
	baseURL        string
	pageSize       int
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
}

// gnewsResponse mirrors the provider's JSON payload.
type gnewsResponse struct {
	TotalArticles int            `json:"totalArticles"`
	Articles      []gnewsArticle `json:"articles"`
}

type gnewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

// NewGNews creates a GNews adapter from the shared provider configuration.
// It automatically configures circuit breaker and retry logic.
func NewGNews(cfg Config) *GNews {
	return &GNews{
		client:         &http.Client{Timeout: cfg.Timeout},
		apiKey:         cfg.GNewsKey,
		baseURL:        cfg.GNewsBaseURL,
		pageSize:       cfg.PageSize,
		circuitBreaker: circuitbreaker.New(circuitbreaker.NewsProviderConfig("gnews")),
		retryConfig:    retry.NewsProviderConfig(),
	}
}

// Name implements SourceAdapter.
func (g *GNews) Name() string { return "gnews" }

// Fetch queries GNews for articles matching the query. Category and Country
// are forwarded when present.
func (g *GNews) Fetch(ctx context.Context, q Query) ([]entity.Article, error) {
	if g.apiKey == "" {
		slog.Warn("gnews adapter disabled, api key not configured")
		return nil, nil
	}

	var articles []entity.Article

	retryErr := retry.WithBackoff(ctx, g.retryConfig, func() error {
		cbResult, err := g.circuitBreaker.Execute(func() (interface{}, error) {
			return g.doFetch(ctx, q)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("gnews circuit breaker open, request rejected",
					slog.String("service", "gnews"),
					slog.String("state", g.circuitBreaker.State().String()))
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
func (g *GNews) doFetch(ctx context.Context, q Query) ([]entity.Article, error) {
	params := url.Values{}
	params.Set("q", q.Keyword)
	params.Set("lang", q.Language)
	params.Set("max", strconv.Itoa(g.pageSize))
	params.Set("sortby", "publishdate")
	params.Set("token", g.apiKey)
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Country != "" {
		params.Set("country", q.Country)
	}

	var payload gnewsResponse
	if err := getJSON(ctx, g.client, g.baseURL+"?"+params.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("gnews fetch: %w", err)
	}

	articles := make([]entity.Article, 0, len(payload.Articles))
	for _, item := range payload.Articles {
		if item.Title == "" || item.Description == "" {
			continue
		}

		source := item.Source.Name
		if source == "" {
			source = "GNews"
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
