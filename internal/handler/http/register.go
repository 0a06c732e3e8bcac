package http

import "net/http"

// RegisterRoutes wires all service endpoints onto the mux. The chat command
// endpoint is registered under its historical capitalization variants
// because chat integrations send the command name verbatim.
func RegisterRoutes(mux *http.ServeMux, h *NewsHandler) {
	mux.HandleFunc("GET /{$}", h.Root)
	mux.Handle("GET /health", &HealthHandler{Backend: h.pipeline.Backend()})

	mux.HandleFunc("GET /news", h.GetNews)
	mux.HandleFunc("GET /news/topic/{topic}", h.GetNewsByTopic)
	mux.HandleFunc("GET /news/languages", h.SupportedLanguages)
	mux.HandleFunc("GET /news/countries", h.SupportedCountries)

	for _, path := range []string{"/getnews", "/getNews", "/GetNews"} {
		mux.HandleFunc("GET "+path, h.GetNewsCommand)
		mux.HandleFunc("POST "+path, h.GetNewsCommand)
	}

	mux.HandleFunc("POST /nlp", h.ProcessNaturalLanguage)
}
