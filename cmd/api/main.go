// Command api runs the article digest HTTP server: signup/login, article
// summarization and per-user history management.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	fileRepo "article-digest/internal/infra/adapter/persistence/file"
	pgRepo "article-digest/internal/infra/adapter/persistence/postgres"
	"article-digest/internal/infra/db"
	"article-digest/internal/infra/fetcher"
	"article-digest/internal/infra/summarizer"
	"article-digest/internal/observability/logging"
	"article-digest/pkg/config"

	authUC "article-digest/internal/usecase/auth"
	histUC "article-digest/internal/usecase/history"
	sumUC "article-digest/internal/usecase/summarize"

	hhttp "article-digest/internal/handler/http"
	hauth "article-digest/internal/handler/http/auth"
	"article-digest/internal/handler/http/requestid"
	hsummary "article-digest/internal/handler/http/summary"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	secret := validateJWTSecret(logger)
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, database, secret)
	runServer(logger, handler, getVersion())
}

// validateJWTSecret enforces the token secret policy at startup so the
// server never runs with a guessable signing key.
func validateJWTSecret(logger *slog.Logger) []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
	return []byte(secret)
}

// initDatabase opens the user database and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database, err := db.Open(os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// buildAbstractor picks the abstractive backend from AI_PROVIDER and wraps
// it in the chunked pipeline. Returns nil when no provider is configured,
// which leaves the extractive output as the final summary.
func buildAbstractor(logger *slog.Logger) sumUC.Summarizer {
	provider := os.Getenv("AI_PROVIDER")
	switch provider {
	case "claude":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			logger.Error("ANTHROPIC_API_KEY must be set when AI_PROVIDER=claude")
			os.Exit(1)
		}
		return summarizer.NewChunked(summarizer.NewClaude(apiKey), summarizer.DefaultChunkedConfig())
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			logger.Error("OPENAI_API_KEY must be set when AI_PROVIDER=openai")
			os.Exit(1)
		}
		cfg, err := summarizer.LoadOpenAIConfig()
		if err != nil {
			logger.Error("invalid openai configuration", slog.Any("error", err))
			os.Exit(1)
		}
		return summarizer.NewChunked(summarizer.NewOpenAI(apiKey, cfg), summarizer.DefaultChunkedConfig())
	case "", "none":
		logger.Warn("no AI provider configured, summaries are extractive only")
		return nil
	default:
		logger.Error("unknown AI_PROVIDER", slog.String("provider", provider))
		os.Exit(1)
		return nil
	}
}

// setupServer wires repositories, use cases, handlers and middleware.
func setupServer(logger *slog.Logger, database *sql.DB, secret []byte) http.Handler {
	fetchCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Error("invalid fetcher configuration", slog.Any("error", err))
		os.Exit(1)
	}

	historyDir := config.GetEnvString("HISTORY_DIR", "data/history")
	if err := os.MkdirAll(historyDir, 0o750); err != nil {
		logger.Error("failed to create history directory",
			slog.String("dir", historyDir), slog.Any("error", err))
		os.Exit(1)
	}

	authSvc := authUC.NewService(pgRepo.NewUserRepo(database), secret)
	historyRepo := fileRepo.NewHistoryRepo(historyDir)
	sumSvc := &sumUC.Service{
		Fetcher:    fetcher.NewArticleFetcher(fetchCfg),
		Extractor:  summarizer.NewExtractive(),
		Abstractor: buildAbstractor(logger),
		History:    historyRepo,
	}
	histSvc := &histUC.Service{Repo: historyRepo}

	loginLimiter := hhttp.NewLoginRateLimiter(
		config.GetEnvFloat("LOGIN_RATE_PER_SECOND", 0.5),
		config.GetEnvInt("LOGIN_RATE_BURST", 5),
	)

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", hhttp.LiveHandler{})
	mux.Handle("GET /readyz", hhttp.HealthHandler{DB: database, Version: getVersion()})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	hauth.Register(mux, authSvc, loginLimiter.Middleware)
	hsummary.Register(mux, sumSvc, histSvc, authSvc)

	maxBodyBytes := int64(config.GetEnvInt("MAX_REQUEST_BODY_BYTES", 1<<20))
	return hhttp.Chain(mux,
		hhttp.Recover(logger),
		requestid.Middleware,
		hhttp.Logging(logger),
		hhttp.Metrics(),
		hhttp.LimitRequestBody(maxBodyBytes),
	)
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := config.GetEnvString("LISTEN_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris protection
		IdleTimeout:       120 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
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
