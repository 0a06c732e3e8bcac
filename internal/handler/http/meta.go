package http

import (
	"net/http"

	"news-digest/internal/domain/entity"
	"news-digest/internal/handler/http/respond"
)

const (
	serviceName    = "news-digest"
	serviceVersion = "2.0.0"
)

// Root handles GET /: service discovery information for API consumers.
func (h *NewsHandler) Root(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{
		"service":     serviceName,
		"version":     serviceVersion,
		"status":      "running",
		"description": "News aggregation service with ranking, enrichment, and chat-ready digests",
		"enrichment_backend": h.pipeline.Backend(),
		"endpoints": map[string]string{
			"/health":          "Health check endpoint",
			"/news":            "Fetch processed news articles with enrichment",
			"/news/topic/{topic}": "Get more news on a specific topic",
			"/news/languages":  "Get supported languages",
			"/news/countries":  "Get supported countries",
			"/getnews":         "Chat command endpoint (case insensitive)",
			"/nlp":             "Natural language processing for commands",
			"/metrics":         "Prometheus metrics",
		},
		"example_usage": map[string]string{
			"indian_movies":    "/news?keyword=indian+movies&country=in&language=hi",
			"bollywood_news":   "/news?keyword=bollywood&category=entertainment&country=in",
			"priority_country": "/news?keyword=cricket&country=in,us,uk",
			"follow_up_topic":  "/news/topic/indian-movies?language=hi&country=in",
			"chat_getnews":     "/getnews?keyword=technology&lang=te",
			"natural_language": `POST /nlp {"text": "give me latest technology news in telugu"}`,
		},
		"supported_languages": entity.LanguageNames,
		"supported_countries": entity.CountryNames,
	})
}

// SupportedLanguages handles GET /news/languages.
func (h *NewsHandler) SupportedLanguages(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{
		"languages": entity.LanguageNames,
		"message":   "Use the language code as 'language' parameter in news requests",
	})
}

// SupportedCountries handles GET /news/countries.
func (h *NewsHandler) SupportedCountries(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{
		"countries": entity.CountryNames,
		"usage": map[string]string{
			"single_country": "country=in",
			"priority_order": "country=in,us,uk (will try India first, then US, then UK)",
			"message":        "Use country codes as 'country' parameter in news requests",
		},
	})
}
