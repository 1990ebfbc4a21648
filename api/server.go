// Package api serves the dashboard's JSON endpoints.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/rustyeddy/fxdesk/broker"
	"github.com/rustyeddy/fxdesk/config"
	"github.com/rustyeddy/fxdesk/journal"
	"github.com/rustyeddy/fxdesk/metrics"
)

type Server struct {
	e       *echo.Echo
	cfg     *config.Config
	broker  broker.Broker
	journal journal.Journal
}

// New wires the routes. j may be nil when journaling is off.
func New(cfg *config.Config, b broker.Broker, j journal.Journal) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{e: e, cfg: cfg, broker: b, journal: j}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return p == "/health" || p == "/metrics"
		},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	}))

	e.GET("/health", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	g := e.Group("/api")
	g.POST("/risk/calc", s.handleCalc)
	g.GET("/features", s.handleFeatures)
	g.GET("/features/:feature", s.handleFeature)
	g.GET("/account", s.handleAccount)
	g.GET("/positions", s.handlePositions)
	g.POST("/connection/test", s.handleConnectionTest)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.e
}

// Run serves on the configured address until ctx is done, then shuts down
// with a short grace period.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.cfg.Server.Addr).Msg("api listening")
		errc <- s.e.Start(s.cfg.Server.Addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("api stopped")
	return nil
}

func (s *Server) handleHealth(c echo.Context) error {
	return SuccessResponse(c, map[string]interface{}{
		"status":  "healthy",
		"service": "fxdesk",
		"time":    time.Now().UTC(),
	})
}
