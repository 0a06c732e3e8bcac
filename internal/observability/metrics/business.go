package metrics

import (
	"time"
)

// RecordProviderFetch records the outcome of one fetch against a news provider.
// Status should be either "success" or "failure".
func RecordProviderFetch(provider string, success bool, duration time.Duration, articles int) {
	status := "success"
	if !success {
		status = "failure"
	}
	ProviderFetchesTotal.WithLabelValues(provider, status).Inc()
	ProviderFetchDuration.WithLabelValues(provider).Observe(duration.Seconds())
	if articles > 0 {
		ProviderArticlesTotal.WithLabelValues(provider).Add(float64(articles))
	}
}

// RecordArticleEnriched records the result of an article enrichment operation.
// Degraded means the advanced backend failed and the article fell back to a
// truncated summary with neutral sentiment.
func RecordArticleEnriched(degraded bool, duration time.Duration) {
	status := "success"
	if degraded {
		status = "degraded"
	}
	ArticlesEnrichedTotal.WithLabelValues(status).Inc()
	EnrichmentDuration.Observe(duration.Seconds())
}

// RecordPipelineRun records how many articles a pipeline run returned to the caller.
func RecordPipelineRun(articles int) {
	PipelineArticlesReturned.Observe(float64(articles))
}
