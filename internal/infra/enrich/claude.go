package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"news-digest/internal/domain/entity"
	"news-digest/internal/resilience/circuitbreaker"
	"news-digest/internal/resilience/retry"
	textutil "news-digest/internal/utils/text"
)

// Claude implements Enricher using Anthropic's Claude API. All calls go
// through retry with backoff and a circuit breaker shared across the three
// operations, so a failing API trips once for the whole backend.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	model           string
	maxTokens       int
	timeout         time.Duration
	metricsRecorder MetricsRecorder
}

// NewClaude creates a Claude-backed enricher with the given API key.
func NewClaude(apiKey string) *Claude {
	model := string(anthropic.ModelClaudeSonnet4_5_20250929)

	slog.Info("initialized claude enrichment backend",
		slog.String("model", model))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		model:           model,
		maxTokens:       1024,
		timeout:         60 * time.Second,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

func (c *Claude) Name() string { return ProviderClaude }

// Summarize generates a summary of text no longer than maxLength characters.
// Short content is returned verbatim without an API call.
func (c *Claude) Summarize(ctx context.Context, text string, maxLength int) (string, error) {
	if len(strings.TrimSpace(text)) < minSummarizeLength {
		return text, nil
	}

	prompt := fmt.Sprintf(
		"Summarize the following news content in at most %d characters. Respond with the summary only, no preamble:\n%s",
		maxLength, truncate(text, summarizeInputLimit))

	summary, err := c.complete(ctx, "summarize", prompt)
	if err != nil {
		return "", err
	}
	c.metricsRecorder.RecordSummaryLength(textutil.CountRunes(summary))
	return summary, nil
}

// Sentiment classifies text into positive, negative, or neutral.
func (c *Claude) Sentiment(ctx context.Context, text string) (entity.Sentiment, error) {
	if text == "" {
		return entity.SentimentFor(entity.SentimentNeutral), nil
	}

	prompt := (
		"Classify the sentiment of the following news content. " +
			"Respond with exactly one word: positive, negative, or neutral.\n" +
			truncate(text, sentimentInputLimit))

	answer, err := c.complete(ctx, "sentiment", prompt)
	if err != nil {
		return entity.Sentiment{}, err
	}
	return entity.SentimentFor(parseSentimentLabel(answer)), nil
}

// Translate renders text in the target language. English and unsupported
// language codes return the text unchanged.
func (c *Claude) Translate(ctx context.Context, text, language string) (string, error) {
	if text == "" || language == "en" {
		return text, nil
	}
	name, ok := entity.LanguageNames[language]
	if !ok {
		slog.Warn("translation not available for language",
			slog.String("language", language))
		return text, nil
	}

	prompt := fmt.Sprintf(
		"Translate the following text to %s. Respond with the translation only:\n%s",
		name, truncate(text, summarizeInputLimit))

	return c.complete(ctx, "translate", prompt)
}

// complete performs one prompt round trip through retry and the circuit
// breaker, recording per-operation metrics.
func (c *Claude) complete(ctx context.Context, operation, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	var result string

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doComplete(ctx, operation, prompt)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", "claude-api"),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}
		result = cbResult.(string)
		return nil
	})

	duration := time.Since(start)
	c.metricsRecorder.RecordOperation(c.Name(), operation, retryErr == nil)
	c.metricsRecorder.RecordOperationDuration(c.Name(), operation, duration)

	if retryErr != nil {
		return "", fmt.Errorf("claude %s failed after retries: %w", operation, retryErr)
	}
	return result, nil
}

// doComplete performs the actual API call without retry or circuit breaker.
func (c *Claude) doComplete(ctx context.Context, operation, prompt string) (string, error) {
	requestID := uuid.New().String()

	slog.DebugContext(ctx, "calling claude api",
		slog.String("request_id", requestID),
		slog.String("operation", operation),
		slog.Int("prompt_length", len(prompt)))

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})
	if err != nil {
		slog.ErrorContext(ctx, "claude api call failed",
			slog.String("request_id", requestID),
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("claude api returned empty response")
	}
	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", fmt.Errorf("claude api returned unexpected response type")
	}
	return strings.TrimSpace(textBlock.Text), nil
}
