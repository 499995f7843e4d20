package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/eidsvold/fpl-motw/internal/config"
	httpserver "github.com/eidsvold/fpl-motw/internal/http"
	"github.com/eidsvold/fpl-motw/internal/http/handlers"
	"github.com/eidsvold/fpl-motw/internal/http/middleware"
	"github.com/eidsvold/fpl-motw/internal/logging"
	"github.com/eidsvold/fpl-motw/internal/metrics"
	"github.com/eidsvold/fpl-motw/internal/providers"
	"github.com/eidsvold/fpl-motw/internal/report"
)

var metricsSetup = metrics.Setup

// Server owns the report pipeline wiring and both HTTP listeners (service
// and metrics).
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	reportService *report.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	providerClose func()
}

// New constructs a server with default provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.LeagueProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	providerClose := func() {}
	if provider == nil {
		provider, providerClose = newProviderFactory(logger, recorder).build(cfg)
	}

	svc := report.NewService(provider, recorder, logger, cfg.RequestTimeout)
	httpSrv := buildHTTPServer(cfg, svc, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		reportService: svc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		providerClose: providerClose,
	}
}

func buildHTTPServer(cfg config.Config, svc *report.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(svc, logger)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Release the outbound pacing ticker.
	if s.providerClose != nil {
		s.providerClose()
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}
