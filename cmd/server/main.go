package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/AnshRaj112/life-reset-backend/internal/config"
	"github.com/AnshRaj112/life-reset-backend/internal/database"
	"github.com/AnshRaj112/life-reset-backend/internal/handlers"
	"github.com/AnshRaj112/life-reset-backend/internal/middleware"
	"github.com/AnshRaj112/life-reset-backend/internal/routes"
	"github.com/AnshRaj112/life-reset-backend/internal/services"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load env
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := openRecordStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	store := services.NewRecordStore(db, cfg.DatabaseDriver)

	coach := services.NewCoach(services.CoachConfig{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
	})
	if !coach.Configured() {
		logger.Warn("⚠️  OPENAI_API_KEY not set. AI coaching will return a configuration error.")
	}

	syncer := services.NewNotionSyncer(services.NewNotionClient(cfg.NotionKey), cfg.NotionDBID)
	if !cfg.NotionConfigured() {
		logger.Warn("⚠️  NOTION_KEY or NOTION_DB_ID not set. Notion sync is disabled.")
	}

	// Redis is optional and keeps the last-known Notion database name
	if cfg.RedisURI != "" {
		logger.Info("Connecting to Redis...")
		rdb, err := database.ConnectRedis(cfg.RedisURI)
		if err != nil {
			logger.Warn("Redis unavailable, last-known Notion database will not be kept", "error", err)
		} else {
			defer rdb.Close()
			syncer.WithStatusCache(services.NewCacheService(rdb))
		}
	}

	// MongoDB is optional and keeps the sync history
	var history handlers.SyncHistoryReader
	if cfg.MongoURI != "" {
		logger.Info("Connecting to MongoDB...")
		client, mdb, err := database.ConnectMongo(cfg.MongoURI)
		if err != nil {
			logger.Warn("MongoDB unavailable, sync history is disabled", "error", err)
		} else {
			defer database.DisconnectMongo(client)
			syncHistory := services.NewSyncHistory(mdb)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := syncHistory.EnsureIndexes(ctx); err != nil {
				logger.Warn("⚠️  failed to ensure sync history indexes", "error", err)
			}
			cancel()
			syncer.WithRecorder(syncHistory)
			history = syncHistory
		}
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(logger, cfg.IsProduction()))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity(cfg.AllowedHost) {
			r.Use(mw)
		}
		logger.Info("✅ Production security enabled (security headers, host check)")
	}
	r.Use(chimw.Timeout(cfg.RequestTimeout))

	routes.SetupRoutes(r, handlers.New(store, coach, syncer, history, logger))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("🚀 Life Reset backend running", "port", cfg.Port, "driver", cfg.DatabaseDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func openRecordStore(cfg *config.Config) (*sql.DB, error) {
	if cfg.DatabaseDriver == database.DriverSQLite {
		slog.Info("Opening SQLite...", "path", cfg.SQLitePath)
		return database.ConnectSQLite(cfg.SQLitePath)
	}
	slog.Info("Connecting to PostgreSQL...")
	return database.ConnectPostgres(cfg.PostgresURI)
}
