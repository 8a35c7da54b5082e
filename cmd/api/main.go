// cmd/api/main.go
// Main entry point: loads configuration, connects storage and serves the API

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/auth"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/database"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/logger"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/config"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/introductions"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/matching"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/people"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	envErr := godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logg, err := logger.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logg.Sync()

	if envErr != nil {
		logg.Debug("no .env file loaded", zap.Error(envErr))
	}

	if err := run(cfg, logg); err != nil {
		logg.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logg *zap.Logger) error {
	ctx := context.Background()

	// 1. PostgreSQL
	db, err := database.NewPostgresDB(ctx, &database.PostgresConfig{
		URL:          cfg.DatabaseURL,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
		MaxLifetime:  cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	logg.Info("connected to PostgreSQL")

	if err := database.RunMigrations(ctx, db, logg); err != nil {
		return err
	}

	// 2. Redis, only needed for rate limiting
	var limiter matching.Limiter
	if cfg.RedisURL != "" && cfg.MatchRateLimitPerMinute > 0 {
		redisClient, err := database.NewRedisClientFromURL(ctx, cfg.RedisURL)
		if err != nil {
			logg.Warn("redis unavailable, match rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			limiter = matching.NewRedisLimiter(redisClient, cfg.MatchRateLimitPerMinute, time.Minute)
			logg.Info("match rate limiting enabled", zap.Int("per_minute", cfg.MatchRateLimitPerMinute))
		}
	}

	// 3. Feature modules
	peopleRepo := people.NewPostgresRepository(db)
	peopleService := people.NewService(peopleRepo, logg)

	engine := matching.NewEngine(cfg.MatchResultLimit, logg)
	matchingService := matching.NewService(peopleRepo, matching.NewPostgresRepository(db), engine, limiter, logg)

	introductionsService := introductions.NewService(introductions.NewPostgresRepository(db), peopleRepo, logg)

	authMiddleware := auth.NewMiddleware(cfg.JWTSecret, cfg.JWTIssuer, logg)

	// 4. HTTP server
	router := newRouter(routerDeps{
		people:        people.NewHandler(peopleService),
		matching:      matching.NewHandler(matchingService),
		introductions: introductions.NewHandler(introductionsService),
		authenticate:  authMiddleware.Authenticate,
		ping:          db.PingContext,
	}, cfg.CORSOrigins, cfg.RequestTimeout, logg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logg.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case sig := <-quit:
		logg.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logg.Info("server exited gracefully")
	return nil
}
