package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	hhttp "news-digest/internal/handler/http"
	"news-digest/internal/handler/http/requestid"
	"news-digest/internal/infra/enrich"
	"news-digest/internal/infra/provider"
	"news-digest/internal/observability/logging"
	"news-digest/internal/usecase/news"
	"news-digest/pkg/config"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	handler := setupServer(logger)
	runServer(logger, handler)
}

// setupServer wires the pipeline and returns the middleware-wrapped handler.
func setupServer(logger *slog.Logger) http.Handler {
	providerCfg := provider.LoadConfig()
	if providerCfg.NewsAPIKey == "" {
		logger.Warn("NEWS_API_KEY is not set, primary source requests will fail upstream")
	}
	if providerCfg.GNewsKey == "" {
		logger.Warn("GNEWS_API_KEY is not set, secondary source requests will fail upstream")
	}

	enrichCfg := enrich.LoadConfig()
	enricher := enrich.NewEnricher(enrichCfg)
	engine := enrich.NewEngine(enricher, enrichCfg)

	logger.Info("enrichment backend selected",
		slog.String("backend", enricher.Name()),
		slog.Int("summary_limit", enrichCfg.SummaryLimit),
		slog.Int("parallelism", enrichCfg.Parallelism))

	pipeline := news.NewService(
		provider.NewNewsAPI(providerCfg),
		provider.NewGNews(providerCfg),
		engine,
	)

	mux := http.NewServeMux()
	hhttp.RegisterRoutes(mux, hhttp.NewNewsHandler(pipeline, enrichCfg.SummaryLimit))
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	requestTimeout := config.GetEnvDuration("REQUEST_TIMEOUT", 60*time.Second)

	// Metrics sits innermost so it sees the route pattern set by the mux.
	return hhttp.Chain(mux,
		requestid.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.Timeout(requestTimeout),
		hhttp.Metrics(),
	)
}

// runServer starts the HTTP server and blocks until graceful shutdown completes.
func runServer(logger *slog.Logger, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + config.GetEnvString("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
