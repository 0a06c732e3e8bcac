// Package news implements the aggregation pipeline: keyword enhancement,
// multi-source fetch with country priority, ranking, and enrichment.
package news

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"news-digest/internal/domain/entity"
	"news-digest/internal/infra/provider"
	"news-digest/internal/observability/metrics"
)

// Enrichment runs the selected enrichment backend over a ranked batch.
type Enrichment interface {
	EnrichAll(ctx context.Context, articles []entity.Article, language string, summaryLimit int) []entity.EnrichedArticle
	Backend() string
}

// Service orchestrates one pipeline run per request. Source failures are
// absorbed into smaller result sets; a request only fails on invalid input.
type Service struct {
	primary    provider.SourceAdapter
	secondary  provider.SourceAdapter
	enrichment Enrichment
}

// NewService creates the pipeline service over the two source adapters and
// the enrichment engine selected at startup.
func NewService(primary, secondary provider.SourceAdapter, enrichment Enrichment) *Service {
	return &Service{
		primary:    primary,
		secondary:  secondary,
		enrichment: enrichment,
	}
}

// Backend returns the name of the active enrichment backend.
func (s *Service) Backend() string {
	return s.enrichment.Backend()
}

// Process runs the full pipeline for validated request parameters and
// returns at most params.PageSize enriched articles, best first. Summaries
// are capped at summaryLimit characters. An empty result is not an error.
func (s *Service) Process(ctx context.Context, params entity.RequestParams, summaryLimit int) ([]entity.EnrichedArticle, error) {
	keyword := EnhanceKeyword(params.Keyword)

	articles := s.aggregate(ctx, keyword, params)
	if len(articles) == 0 {
		slog.WarnContext(ctx, "no articles fetched from any source",
			slog.String("keyword", keyword))
		return nil, nil
	}

	ranked := Rank(articles, params.PageSize)

	enriched := s.enrichment.EnrichAll(ctx, ranked, params.Language, summaryLimit)
	metrics.RecordPipelineRun(len(enriched))

	return enriched, nil
}

// aggregate fans out to both sources concurrently. The primary source is
// always queried once without country scoping. The secondary source is
// queried once per priority country, or once unscoped when the caller gave
// no preference.
func (s *Service) aggregate(ctx context.Context, keyword string, params entity.RequestParams) []entity.Article {
	var (
		mu  sync.Mutex
		all []entity.Article
	)

	collect := func(articles []entity.Article, priority int) {
		for i := range articles {
			articles[i].SourcePriority = priority
		}
		mu.Lock()
		all = append(all, articles...)
		mu.Unlock()
	}

	var g errgroup.Group

	g.Go(func() error {
		query := provider.Query{Keyword: keyword, Language: params.Language}
		collect(s.fetchOne(ctx, s.primary, query), entity.UnrankedPriority)
		return nil
	})

	if len(params.CountryPriority) == 0 {
		g.Go(func() error {
			query := provider.Query{
				Keyword:  keyword,
				Language: params.Language,
				Category: params.Category,
			}
			collect(s.fetchOne(ctx, s.secondary, query), entity.UnrankedPriority)
			return nil
		})
	} else {
		for i, country := range params.CountryPriority {
			g.Go(func() error {
				query := provider.Query{
					Keyword:  keyword,
					Language: params.Language,
					Category: params.Category,
					Country:  country,
				}
				collect(s.fetchOne(ctx, s.secondary, query), i)
				return nil
			})
		}
	}

	// Fetch failures are absorbed inside fetchOne.
	_ = g.Wait()

	return all
}

// fetchOne queries a single source, recording metrics and absorbing errors.
// A failed source contributes nothing instead of failing the request.
func (s *Service) fetchOne(ctx context.Context, adapter provider.SourceAdapter, query provider.Query) []entity.Article {
	start := time.Now()
	articles, err := adapter.Fetch(ctx, query)
	duration := time.Since(start)

	if err != nil {
		slog.WarnContext(ctx, "source fetch failed, continuing without it",
			slog.String("provider", adapter.Name()),
			slog.String("country", query.Country),
			slog.String("error", err.Error()))
		metrics.RecordProviderFetch(adapter.Name(), false, duration, 0)
		return nil
	}

	metrics.RecordProviderFetch(adapter.Name(), true, duration, len(articles))
	slog.InfoContext(ctx, "fetched articles from source",
		slog.String("provider", adapter.Name()),
		slog.String("country", query.Country),
		slog.Int("count", len(articles)))

	return articles
}
