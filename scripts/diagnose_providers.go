// Command diagnose_providers probes the configured news providers with a set
// of representative queries and reports per-provider health as JSON. Useful
// for verifying API keys and provider availability before a deploy.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"news-digest/internal/infra/provider"
)

// ProviderDiagnostic is the result of probing one provider with one query.
type ProviderDiagnostic struct {
	Provider     string `json:"provider"`
	Keyword      string `json:"keyword"`
	Country      string `json:"country,omitempty"`
	Status       string `json:"status"` // "OK", "ERROR", "EMPTY"
	ArticleCount int    `json:"article_count"`
	LatestDate   string `json:"latest_date,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	ResponseTime int64  `json:"response_time_ms"`
}

func main() {
	cfg := provider.LoadConfig()
	if cfg.NewsAPIKey == "" {
		log.Println("NEWS_API_KEY not set, primary probes will fail")
	}
	if cfg.GNewsKey == "" {
		log.Println("GNEWS_API_KEY not set, secondary probes will fail")
	}

	adapters := []provider.SourceAdapter{
		provider.NewNewsAPI(cfg),
		provider.NewGNews(cfg),
	}

	probes := []provider.Query{
		{Keyword: "latest", Language: "en"},
		{Keyword: "technology", Language: "en", Country: "in"},
		{Keyword: "sports", Language: "en", Country: "us"},
	}

	var results []ProviderDiagnostic
	failures := 0

	for _, adapter := range adapters {
		for _, q := range probes {
			// NewsAPI's everything endpoint ignores country scoping.
			if adapter.Name() == "newsapi" && q.Country != "" {
				continue
			}
			d := probe(adapter, q)
			if d.Status == "ERROR" {
				failures++
			}
			results = append(results, d)
			log.Printf("%-8s keyword=%-12s country=%-3s status=%-6s articles=%d time=%dms",
				d.Provider, d.Keyword, d.Country, d.Status, d.ArticleCount, d.ResponseTime)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		log.Fatalf("Failed to encode results: %v", err)
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d probe(s) failed\n", failures)
		os.Exit(1)
	}
}

// probe runs one query against one adapter and classifies the outcome.
func probe(adapter provider.SourceAdapter, q provider.Query) ProviderDiagnostic {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	d := ProviderDiagnostic{
		Provider: adapter.Name(),
		Keyword:  q.Keyword,
		Country:  q.Country,
	}

	start := time.Now()
	articles, err := adapter.Fetch(ctx, q)
	d.ResponseTime = time.Since(start).Milliseconds()

	if err != nil {
		d.Status = "ERROR"
		d.ErrorMessage = err.Error()
		return d
	}

	d.ArticleCount = len(articles)
	if len(articles) == 0 {
		d.Status = "EMPTY"
		return d
	}

	d.Status = "OK"
	d.LatestDate = articles[0].PublishedAt
	return d
}
