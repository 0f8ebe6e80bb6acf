package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"FitMetrics/internal/cache"
	"FitMetrics/internal/config"
	"FitMetrics/internal/database"
	"FitMetrics/internal/server"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func gracefulShutdown(apiServer *http.Server, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The server has 5 seconds to finish the requests it is currently handling.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")

	done <- true
}

func setupLogger(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func newCache(ctx context.Context, cfg config.Config) cache.Cache {
	if cfg.RedisURL != "" {
		c, err := cache.NewRedis(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err == nil {
			return c
		}
		log.Warn().Err(err).Msg("Redis unavailable, falling back to in-process cache")
	}
	return cache.NewLRU(cfg.CacheSize, cfg.CacheTTL)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	setupLogger(cfg)

	ctx := context.Background()

	// 1. Assessment store is optional
	var db database.Service
	if cfg.DatabaseURL != "" {
		db, err = database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Unable to initialise database")
		}
		defer db.Close()
	} else {
		log.Warn().Msg("DATABASE_URL not set, assessment history disabled")
	}

	// 2. Cache
	assessmentCache := newCache(ctx, cfg)
	defer assessmentCache.Close()

	// 3. HTTP
	apiServer := server.NewServer(cfg, db, assessmentCache)

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, done)

	log.Info().Str("addr", apiServer.Addr).Msg("Starting FitMetrics API")
	err = apiServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server error")
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info().Msg("Graceful shutdown complete.")
}
