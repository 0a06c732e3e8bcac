package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"news-digest/internal/digest"
	"news-digest/internal/domain/entity"
	"news-digest/internal/handler/http/respond"
	"news-digest/internal/observability/logging"
)

// Page sizes per endpoint. Follow-up topic queries return a larger window
// than the first search.
const (
	defaultPageSize  = 5
	followUpPageSize = 10
)

// compactSummaryLimit bounds summaries on the chat command endpoints, which
// render in constrained chat surfaces.
const compactSummaryLimit = 80

// Pipeline is the aggregation-ranking-enrichment usecase the handlers drive.
type Pipeline interface {
	Process(ctx context.Context, params entity.RequestParams, summaryLimit int) ([]entity.EnrichedArticle, error)
	Backend() string
}

// NewsHandler serves the news digest endpoints.
type NewsHandler struct {
	pipeline     Pipeline
	summaryLimit int
}

// NewNewsHandler creates the handler over the pipeline service.
// summaryLimit bounds summaries on the full digest endpoints.
func NewNewsHandler(pipeline Pipeline, summaryLimit int) *NewsHandler {
	return &NewsHandler{pipeline: pipeline, summaryLimit: summaryLimit}
}

// GetNews handles GET /news: fetch, rank, and enrich articles for the query
// parameters, returning structured data plus the chat digest.
func (h *NewsHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params, err := entity.NewRequestParams(
		q.Get("keyword"), q.Get("category"), q.Get("country"), q.Get("language"),
		defaultPageSize)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	articles, err := h.pipeline.Process(r.Context(), params, h.summaryLimit)
	if err != nil {
		logging.FromContext(r.Context()).Error("news pipeline failed",
			slog.String("keyword", params.Keyword),
			slog.Any("error", err))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	if len(articles) == 0 {
		respond.JSON(w, http.StatusOK, []articleResponse{})
		return
	}

	respond.JSON(w, http.StatusOK, toDigestResponse(digest.Compose(articles)))
}

// GetNewsByTopic handles GET /news/topic/{topic}: a follow-up query with the
// topic slug as keyword and a larger page size. Hyphens and underscores in
// the slug read as spaces.
func (h *NewsHandler) GetNewsByTopic(w http.ResponseWriter, r *http.Request) {
	topic := r.PathValue("topic")
	keyword := strings.NewReplacer("-", " ", "_", " ").Replace(topic)

	q := r.URL.Query()
	params, err := entity.NewRequestParams(
		keyword, q.Get("category"), q.Get("country"), q.Get("language"),
		followUpPageSize)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	articles, err := h.pipeline.Process(r.Context(), params, h.summaryLimit)
	if err != nil {
		logging.FromContext(r.Context()).Error("topic pipeline failed",
			slog.String("topic", topic),
			slog.Any("error", err))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	if len(articles) == 0 {
		respond.JSON(w, http.StatusOK, map[string]any{
			"message":  fmt.Sprintf("No more news found for topic: %s", topic),
			"topic":    topic,
			"articles": []articleResponse{},
		})
		return
	}

	resp := toDigestResponse(digest.Compose(articles))
	resp.Topic = topic
	resp.FollowUpQuery = true
	respond.JSON(w, http.StatusOK, resp)
}
