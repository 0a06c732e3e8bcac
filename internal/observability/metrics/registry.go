// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Pipeline metrics track news aggregation and enrichment behavior
var (
	// ProviderFetchesTotal counts provider fetch attempts by provider and status
	ProviderFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_provider_fetches_total",
			Help: "Total number of fetch attempts against news providers",
		},
		[]string{"provider", "status"},
	)

	// ProviderFetchDuration measures provider fetch duration in seconds
	ProviderFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_provider_fetch_duration_seconds",
			Help:    "Duration of news provider fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	// ProviderArticlesTotal counts articles returned by each provider
	ProviderArticlesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_provider_articles_total",
			Help: "Total number of articles returned by each news provider",
		},
		[]string{"provider"},
	)

	// ArticlesEnrichedTotal counts enrichment operations by status
	ArticlesEnrichedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_enriched_total",
			Help: "Total number of article enrichment operations",
		},
		[]string{"status"},
	)

	// EnrichmentDuration measures per-article enrichment duration in seconds
	EnrichmentDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "article_enrichment_duration_seconds",
			Help:    "Time taken to enrich a single article",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)

	// PipelineArticlesReturned measures how many articles each pipeline run returned
	PipelineArticlesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pipeline_articles_returned",
			Help:    "Number of articles returned per pipeline run",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 10, 15, 20},
		},
	)
)
