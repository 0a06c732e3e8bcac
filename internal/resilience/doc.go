// Package resilience provides reliability and fault tolerance patterns for the application.
// It includes implementations of circuit breakers and retry logic to ensure the pipeline
// degrades gracefully when news providers or AI enrichment backends misbehave.
//
// The package supports:
//   - Circuit breakers for external API calls (NewsAPI, GNews, Claude, OpenAI)
//   - Retry logic with exponential backoff and jitter
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.NewsProviderConfig("newsapi"))
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callProvider()
//	})
//
//	retryConfig := retry.NewsProviderConfig()
//	err := retry.WithBackoff(ctx, retryConfig, func() error {
//	    return performOperation()
//	})
package resilience
