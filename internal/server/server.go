/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and wires the fitness
engine to its cache and assessment store.
*/
package server

import (
	"fmt"
	"net/http"
	"time"

	"FitMetrics/internal/cache"
	"FitMetrics/internal/config"
	"FitMetrics/internal/database"
)

// Server defines the configuration and dependencies for the HTTP service.
type Server struct {
	// port specifies the TCP port the server will listen on.
	port int

	// db stores assessment history. Nil when no DATABASE_URL is configured;
	// history endpoints then answer 503.
	db database.Service

	// cache memoizes full assessments by canonical input.
	cache cache.Cache

	rateLimit    float64
	batchLimit   int
	batchWorkers int
}

// New builds a Server from cfg. db may be nil.
func New(cfg config.Config, db database.Service, c cache.Cache) *Server {
	return &Server{
		port:         cfg.Port,
		db:           db,
		cache:        c,
		rateLimit:    cfg.RateLimit,
		batchLimit:   cfg.BatchLimit,
		batchWorkers: cfg.BatchWorkers,
	}
}

// NewServer returns a configured *http.Server with production network
// timeouts.
func NewServer(cfg config.Config, db database.Service, c cache.Cache) *http.Server {
	app := New(cfg, db, c)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", app.port),
		Handler:      app.RegisterRoutes(),
		IdleTimeout:  time.Minute,      // Time to wait for the next request on keep-alive connections.
		ReadTimeout:  10 * time.Second, // Maximum duration for reading the entire request.
		WriteTimeout: 30 * time.Second, // Maximum duration before timing out writes of the response.
	}
}
