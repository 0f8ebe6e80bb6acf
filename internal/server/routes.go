package server

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"FitMetrics/internal/utility"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/time/rate"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"https://*", "http://*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:       300,
	}))

	if s.rateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Store: middleware.NewRateLimiterMemoryStore(rate.Limit(s.rateLimit)),
			IdentifierExtractor: func(c echo.Context) (string, error) {
				return utility.GetRealIP(c), nil
			},
			DenyHandler: func(c echo.Context, identifier string, err error) error {
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many requests"})
			},
		}))
	}

	e.Use(LoggerMiddleware)

	e.GET("/health", s.healthHandler)
	e.GET("/sports", s.listSportsHandler)

	// Engine
	e.POST("/metrics", s.computeMetricsHandler)
	e.POST("/recommendations", s.recommendationsHandler)

	// Assessments
	e.POST("/assessments", s.createAssessmentHandler)
	e.POST("/assessments/batch", s.batchAssessmentHandler)
	e.GET("/assessments", s.listAssessmentsHandler)
	e.GET("/assessments/latest", s.latestInputHandler)

	return e
}

func (s *Server) healthHandler(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	dbStats := map[string]string{"status": "disabled"}
	if s.db != nil {
		dbStats = s.db.Health()
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"database": dbStats,
		"runtime":  runtimeStats(ctx),
	})
}

// runtimeStats samples host load. Individual probe failures leave their
// keys out rather than failing the health check.
func runtimeStats(ctx context.Context) map[string]string {
	stats := map[string]string{
		"goroutines": fmt.Sprintf("%d", runtime.NumGoroutine()),
	}

	if v, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		stats["ram_usage"] = fmt.Sprintf("%.1f%%", v.UsedPercent)
	}
	if pct, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pct) > 0 {
		stats["cpu_load"] = fmt.Sprintf("%.1f%%", pct[0])
	}
	if d, err := disk.UsageWithContext(ctx, "/"); err == nil {
		stats["disk_usage"] = fmt.Sprintf("%.1f%%", d.UsedPercent)
	}
	if up, err := host.UptimeWithContext(ctx); err == nil {
		stats["host_uptime"] = (time.Duration(up) * time.Second).String()
	}

	return stats
}

func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()

		c.Set("logger", &logger)

		return next(c)
	}
}

// requestLogger returns the per-request logger set by LoggerMiddleware.
func requestLogger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get("logger").(*zerolog.Logger); ok {
		return l
	}
	return &log.Logger
}
