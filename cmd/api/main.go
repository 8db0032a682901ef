package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/quote-service/internal/catalog"
	"github.com/Dan9191/quote-service/internal/config"
	"github.com/Dan9191/quote-service/internal/handler"
	"github.com/Dan9191/quote-service/internal/metrics"
	"github.com/Dan9191/quote-service/internal/models"
	"github.com/Dan9191/quote-service/internal/repository"
	"github.com/Dan9191/quote-service/internal/service"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	setLogLevel(logger, os.Getenv("LOG_LEVEL"))

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	// LOG_LEVEL may come from .env, which only NewConfig reads
	setLogLevel(logger, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lenders, err := loadCatalog(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to load lender catalog: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"source":  cfg.CatalogSource,
		"lenders": len(lenders),
	}).Info("Lender catalog loaded")

	// Optional quote cache
	var cache service.QuoteCache
	if cfg.CacheEnabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		qc := repository.NewQuoteCache(client, cfg.QuoteCacheTTL)
		if err := qc.Ping(ctx); err != nil {
			logger.WithError(err).Warn("Redis unreachable, quotes will be computed until it recovers")
		}
		cache = qc
	}

	// Initialize layers
	m := metrics.New()
	svc := service.NewService(lenders, cache, logger, m, cfg)
	h := handler.NewHandler(svc, logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler.NewRouter(h, logger, m),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}

// setLogLevel applies level, falling back to info when it does not parse
func setLogLevel(logger *logrus.Logger, level string) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
}

func loadCatalog(ctx context.Context, cfg *config.Config) ([]models.LenderProfile, error) {
	switch cfg.CatalogSource {
	case config.CatalogXML:
		f, err := os.Open(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog file: %w", err)
		}
		defer f.Close()
		return catalog.ParseXML(f)

	case config.CatalogPostgres:
		db, err := sql.Open("postgres", cfg.DBConn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		lenders, err := repository.NewRepository(db).ListLenders(ctx)
		if err != nil {
			return nil, err
		}
		if err := catalog.Validate(lenders); err != nil {
			return nil, err
		}
		return lenders, nil
	}
	return catalog.Reference(), nil
}
