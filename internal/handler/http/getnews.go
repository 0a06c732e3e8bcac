package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"news-digest/internal/domain/entity"
	"news-digest/internal/handler/http/respond"
	"news-digest/internal/observability/logging"
)

// chatKeywordDefault replaces an absent keyword on the chat command
// endpoints; unlike the regular default it is a freshness cue, not a topic.
const chatKeywordDefault = "latest"

// getNewsRequest is the POST body accepted by the chat command endpoint.
// The topic and lang fields are aliases kept for older chat integrations.
type getNewsRequest struct {
	Keyword  string `json:"keyword"`
	Topic    string `json:"topic"`
	Country  string `json:"country"`
	Language string `json:"language"`
	Lang     string `json:"lang"`
	Category string `json:"category"`
}

type getNewsResponse struct {
	Status   string                   `json:"status"`
	Message  string                   `json:"message"`
	Articles []compactArticleResponse `json:"articles"`
	Command  string                   `json:"command"`
	Params   map[string]string        `json:"params,omitempty"`
}

// GetNewsCommand handles the chat-integration endpoint /getnews on both GET
// and POST. Parameters arrive as query values or a JSON body, with topic and
// lang accepted as aliases for keyword and language. Responses carry only
// summaries, sized for chat display.
func (h *NewsHandler) GetNewsCommand(w http.ResponseWriter, r *http.Request) {
	var req getNewsRequest
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			// An empty or malformed body means defaults, matching GET with
			// no query parameters.
			req = getNewsRequest{}
		}
	} else {
		q := r.URL.Query()
		req = getNewsRequest{
			Keyword:  q.Get("keyword"),
			Topic:    q.Get("topic"),
			Country:  q.Get("country"),
			Language: q.Get("language"),
			Lang:     q.Get("lang"),
			Category: q.Get("category"),
		}
	}

	keyword := firstNonEmpty(req.Keyword, req.Topic, chatKeywordDefault)
	language := firstNonEmpty(req.Language, req.Lang)

	params, err := entity.NewRequestParams(keyword, req.Category, req.Country, language, defaultPageSize)
	if err != nil {
		respond.JSON(w, http.StatusBadRequest, getNewsResponse{
			Status:  "error",
			Message: err.Error(),
			Command: "getNews",
		})
		return
	}

	articles, err := h.pipeline.Process(r.Context(), params, compactSummaryLimit)
	if err != nil {
		logging.FromContext(r.Context()).Error("chat command pipeline failed",
			slog.String("keyword", params.Keyword),
			slog.Any("error", err))
		respond.JSON(w, http.StatusInternalServerError, getNewsResponse{
			Status:  "error",
			Message: "Failed to fetch news",
			Command: "getNews",
		})
		return
	}

	if len(articles) == 0 {
		respond.JSON(w, http.StatusOK, getNewsResponse{
			Status:   "success",
			Message:  "No news found for the specified criteria",
			Articles: []compactArticleResponse{},
			Command:  "getNews",
		})
		return
	}

	respond.JSON(w, http.StatusOK, getNewsResponse{
		Status:   "success",
		Message:  resultMessage(len(articles)),
		Articles: toCompactArticles(articles),
		Command:  "getNews",
		Params:   paramsEcho(params),
	})
}

func toCompactArticles(articles []entity.EnrichedArticle) []compactArticleResponse {
	out := make([]compactArticleResponse, len(articles))
	for i, a := range articles {
		out[i] = toCompactArticleResponse(a)
	}
	return out
}

func paramsEcho(params entity.RequestParams) map[string]string {
	echo := map[string]string{
		"keyword":  params.Keyword,
		"language": params.Language,
	}
	if params.Category != "" {
		echo["category"] = params.Category
	}
	if len(params.CountryPriority) > 0 {
		echo["country"] = strings.Join(params.CountryPriority, ",")
	}
	return echo
}

func resultMessage(n int) string {
	return fmt.Sprintf("Found %d news articles", n)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
