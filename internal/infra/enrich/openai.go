package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"news-digest/internal/domain/entity"
	"news-digest/internal/resilience/circuitbreaker"
	"news-digest/internal/resilience/retry"
	textutil "news-digest/internal/utils/text"
)

// OpenAI implements Enricher using OpenAI's chat completion API. Reliability
// wiring matches the Claude backend: retry with backoff around a circuit
// breaker shared by all three operations.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	model           string
	timeout         time.Duration
	metricsRecorder MetricsRecorder
}

// NewOpenAI creates an OpenAI-backed enricher with the given API key.
func NewOpenAI(apiKey string) *OpenAI {
	slog.Info("initialized openai enrichment backend",
		slog.String("model", openai.GPT3Dot5Turbo))

	return &OpenAI{
		client:          openai.NewClient(apiKey),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		model:           openai.GPT3Dot5Turbo,
		timeout:         60 * time.Second,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

func (o *OpenAI) Name() string { return ProviderOpenAI }

// Summarize generates a summary of text no longer than maxLength characters.
// Short content is returned verbatim without an API call.
func (o *OpenAI) Summarize(ctx context.Context, text string, maxLength int) (string, error) {
	if len(strings.TrimSpace(text)) < minSummarizeLength {
		return text, nil
	}

	prompt := fmt.Sprintf(
		"Summarize the following news content in at most %d characters. Respond with the summary only, no preamble:\n%s",
		maxLength, truncate(text, summarizeInputLimit))

	summary, err := o.complete(ctx, "summarize", prompt)
	if err != nil {
		return "", err
	}
	o.metricsRecorder.RecordSummaryLength(textutil.CountRunes(summary))
	return summary, nil
}

// Sentiment classifies text into positive, negative, or neutral.
func (o *OpenAI) Sentiment(ctx context.Context, text string) (entity.Sentiment, error) {
	if text == "" {
		return entity.SentimentFor(entity.SentimentNeutral), nil
	}

	prompt := (
		"Classify the sentiment of the following news content. " +
			"Respond with exactly one word: positive, negative, or neutral.\n" +
			truncate(text, sentimentInputLimit))

	answer, err := o.complete(ctx, "sentiment", prompt)
	if err != nil {
		return entity.Sentiment{}, err
	}
	return entity.SentimentFor(parseSentimentLabel(answer)), nil
}

// Translate renders text in the target language. English and unsupported
// language codes return the text unchanged.
func (o *OpenAI) Translate(ctx context.Context, text, language string) (string, error) {
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

	return o.complete(ctx, "translate", prompt)
}

// complete performs one prompt round trip through retry and the circuit
// breaker, recording per-operation metrics.
func (o *OpenAI) complete(ctx context.Context, operation, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	var result string

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doComplete(ctx, operation, prompt)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("service", "openai-api"),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}
		result = cbResult.(string)
		return nil
	})

	duration := time.Since(start)
	o.metricsRecorder.RecordOperation(o.Name(), operation, retryErr == nil)
	o.metricsRecorder.RecordOperationDuration(o.Name(), operation, duration)

	if retryErr != nil {
		return "", fmt.Errorf("openai %s failed after retries: %w", operation, retryErr)
	}
	return result, nil
}

// doComplete performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doComplete(ctx context.Context, operation, prompt string) (string, error) {
	slog.DebugContext(ctx, "calling openai api",
		slog.String("operation", operation),
		slog.Int("prompt_length", len(prompt)))

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		slog.ErrorContext(ctx, "openai api call failed",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
