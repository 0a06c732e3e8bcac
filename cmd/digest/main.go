// Package main provides a CLI command for fetching an enriched news digest.
// Usage: news-digest "keyword" [--country in,us] [--language te] [--limit N] [--output json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"news-digest/internal/digest"
	"news-digest/internal/domain/entity"
	"news-digest/internal/infra/enrich"
	"news-digest/internal/infra/provider"
	"news-digest/internal/observability/logging"
	"news-digest/internal/usecase/news"
)

// DigestOutput is the JSON output format for a digest run.
type DigestOutput struct {
	Keyword             string          `json:"keyword"`
	Articles            []ArticleOutput `json:"articles"`
	TotalArticles       int             `json:"total_articles"`
	Timestamp           string          `json:"timestamp"`
	FollowUpSuggestions string          `json:"follow_up_suggestions,omitempty"`
}

// ArticleOutput is one enriched article in the JSON output.
type ArticleOutput struct {
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Sentiment   string `json:"sentiment"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
}

func main() {
	var (
		country      string
		language     string
		limit        int
		outputFormat string
	)

	flag.StringVar(&country, "country", "", "Comma-separated country priority list (e.g. in,us)")
	flag.StringVar(&language, "language", "en", "Response language code (e.g. en, te, hi)")
	flag.IntVar(&limit, "limit", 5, "Maximum number of articles")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	keyword := entity.DefaultKeyword
	if args := flag.Args(); len(args) > 0 {
		keyword = args[0]
	}

	logger := logging.NewTextLogger()
	slog.SetDefault(logger)

	params, err := entity.NewRequestParams(keyword, "", country, language, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	providerCfg := provider.LoadConfig()
	enrichCfg := enrich.LoadConfig()
	engine := enrich.NewEngine(enrich.NewEnricher(enrichCfg), enrichCfg)

	pipeline := news.NewService(
		provider.NewNewsAPI(providerCfg),
		provider.NewGNews(providerCfg),
		engine,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	articles, err := pipeline.Process(ctx, params, enrichCfg.SummaryLimit)
	if err != nil {
		logger.Error("digest run failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: Failed to fetch news: %v\n", err)
		os.Exit(1)
	}

	d := digest.Compose(articles)
	if outputFormat == "json" {
		outputJSON(params.Keyword, d)
	} else {
		fmt.Println(d.FormattedResponse)
	}
}

// outputJSON prints the digest in machine-readable format.
func outputJSON(keyword string, d digest.Digest) {
	out := DigestOutput{
		Keyword:             keyword,
		Articles:            make([]ArticleOutput, 0, len(d.Articles)),
		TotalArticles:       d.TotalArticles,
		Timestamp:           d.Timestamp.Format(time.RFC3339),
		FollowUpSuggestions: d.FollowUpSuggestions,
	}
	for _, a := range d.Articles {
		out.Articles = append(out.Articles, ArticleOutput{
			Title:       a.Title,
			Summary:     a.Summary,
			Sentiment:   string(a.Sentiment.Label),
			Source:      a.Source,
			PublishedAt: a.PublishedAt,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to encode output: %v\n", err)
		os.Exit(1)
	}
}
