package enrich

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"news-digest/internal/domain/entity"
	"news-digest/internal/observability/metrics"
)

// degradedSummaryLimit caps the raw-content excerpt used when summarization
// fails for an article.
const degradedSummaryLimit = 200

// Engine runs the enrichment backend across a batch of articles with bounded
// parallelism and a process-wide rate limit. A failure on one article never
// fails the batch; that article degrades to a content excerpt and neutral
// sentiment.
type Engine struct {
	enricher    Enricher
	limiter     *rate.Limiter
	parallelism int
}

// NewEngine creates an enrichment engine over the given backend.
func NewEngine(enricher Enricher, cfg Config) *Engine {
	return &Engine{
		enricher:    enricher,
		limiter:     rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Parallelism),
		parallelism: cfg.Parallelism,
	}
}

// Backend returns the name of the selected enrichment backend.
func (e *Engine) Backend() string {
	return e.enricher.Name()
}

// EnrichAll enriches a batch of articles concurrently, preserving input
// order. Summaries are capped at summaryLimit characters and translated when
// language is not English. Cancellation of ctx stops scheduling; articles
// already in flight finish or degrade.
func (e *Engine) EnrichAll(ctx context.Context, articles []entity.Article, language string, summaryLimit int) []entity.EnrichedArticle {
	if len(articles) == 0 {
		return nil
	}

	enriched := make([]entity.EnrichedArticle, len(articles))

	g, ctx := errgroup.WithContext(ctx)
	semaphore := make(chan struct{}, e.parallelism)

	for i, article := range articles {
		g.Go(func() error {
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if err := e.limiter.Wait(ctx); err != nil {
				enriched[i] = degrade(article, language)
				return nil
			}
			enriched[i] = e.enrichOne(ctx, article, language, summaryLimit)
			return nil
		})
	}

	// Workers never return errors; degradation is handled per article.
	_ = g.Wait()

	return enriched
}

// enrichOne runs the three enrichment operations for one article. Each
// operation degrades independently so a sentiment failure does not discard a
// good summary.
func (e *Engine) enrichOne(ctx context.Context, article entity.Article, language string, summaryLimit int) entity.EnrichedArticle {
	start := time.Now()
	degraded := false

	summary, err := e.enricher.Summarize(ctx, article.Content, summaryLimit)
	if err != nil {
		slog.Warn("summarization failed, using content excerpt",
			slog.String("backend", e.enricher.Name()),
			slog.String("title", article.Title),
			slog.String("error", err.Error()))
		summary = excerpt(article.Content)
		degraded = true
	}

	if language != "en" {
		translated, err := e.enricher.Translate(ctx, summary, language)
		if err != nil {
			slog.Warn("translation failed, keeping untranslated summary",
				slog.String("backend", e.enricher.Name()),
				slog.String("language", language),
				slog.String("error", err.Error()))
			degraded = true
		} else {
			summary = translated
		}
	}

	sentiment, err := e.enricher.Sentiment(ctx, article.Content)
	if err != nil {
		slog.Warn("sentiment classification failed, using neutral",
			slog.String("backend", e.enricher.Name()),
			slog.String("title", article.Title),
			slog.String("error", err.Error()))
		sentiment = entity.SentimentFor(entity.SentimentNeutral)
		degraded = true
	}

	metrics.RecordArticleEnriched(degraded, time.Since(start))

	return entity.EnrichedArticle{
		Article:   article,
		Summary:   summary,
		Sentiment: sentiment,
		Language:  language,
	}
}

// degrade builds the enrichment result for an article that never reached the
// backend, such as when the batch was cancelled mid-flight.
func degrade(article entity.Article, language string) entity.EnrichedArticle {
	return entity.EnrichedArticle{
		Article:   article,
		Summary:   excerpt(article.Content),
		Sentiment: entity.SentimentFor(entity.SentimentNeutral),
		Language:  language,
	}
}

// excerpt returns the leading slice of content used in place of a summary.
func excerpt(content string) string {
	if len(content) > degradedSummaryLimit {
		return content[:degradedSummaryLimit] + "..."
	}
	return content
}
