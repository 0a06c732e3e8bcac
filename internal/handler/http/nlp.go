package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"news-digest/internal/domain/entity"
	"news-digest/internal/handler/http/respond"
	"news-digest/internal/observability/logging"
	"news-digest/internal/usecase/intent"
)

type nlpRequest struct {
	Text string `json:"text"`
}

type nlpResponse struct {
	Status          string                   `json:"status"`
	Intent          string                   `json:"intent,omitempty"`
	Message         string                   `json:"message"`
	Articles        []compactArticleResponse `json:"articles,omitempty"`
	ExtractedParams map[string]string        `json:"extracted_params,omitempty"`
}

// ProcessNaturalLanguage handles POST /nlp: extract a news query from free
// text and run the pipeline with the recognized parameters. Text that does
// not read as a news request is rejected with a usage hint.
func (h *NewsHandler) ProcessNaturalLanguage(w http.ResponseWriter, r *http.Request) {
	var req nlpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		respond.JSON(w, http.StatusBadRequest, nlpResponse{
			Status:  "error",
			Message: "No text provided for processing",
		})
		return
	}

	result := intent.Extract(req.Text)
	if result.Intent != intent.IntentGetNews {
		respond.JSON(w, http.StatusBadRequest, nlpResponse{
			Status:  "error",
			Message: "Could not understand the request. Try 'get me latest news' or 'show technology news'",
		})
		return
	}

	keyword := result.Params.Keyword
	if keyword == "" {
		keyword = chatKeywordDefault
	}

	params, err := entity.NewRequestParams(
		keyword, "", result.Params.Country, result.Params.Language,
		defaultPageSize)
	if err != nil {
		// Extraction tables only emit values from the allow-lists; reaching
		// here means the tables and the allow-lists drifted apart.
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	articles, err := h.pipeline.Process(r.Context(), params, compactSummaryLimit)
	if err != nil {
		logging.FromContext(r.Context()).Error("nlp pipeline failed",
			slog.String("keyword", params.Keyword),
			slog.Any("error", err))
		respond.JSON(w, http.StatusInternalServerError, nlpResponse{
			Status:  "error",
			Message: "Failed to process natural language request",
		})
		return
	}

	extracted := map[string]string{}
	if result.Params.Keyword != "" {
		extracted["keyword"] = result.Params.Keyword
	}
	if result.Params.Language != "" {
		extracted["language"] = result.Params.Language
	}
	if result.Params.Country != "" {
		extracted["country"] = result.Params.Country
	}

	respond.JSON(w, http.StatusOK, nlpResponse{
		Status:          "success",
		Intent:          intent.IntentGetNews,
		Message:         resultMessage(len(articles)),
		Articles:        toCompactArticles(articles),
		ExtractedParams: extracted,
	})
}
