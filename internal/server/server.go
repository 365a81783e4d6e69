package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/3EEEs/Project-Solar/internal/config"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP front end for the calculator: an HTML form plus a
// JSON API.
type Server struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *Metrics
	handler http.Handler
}

// New creates a server. Access logs in combined format go to accessLog.
func New(cfg config.Config, logger *slog.Logger, accessLog io.Writer) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
	}
	if cfg.MetricsEnabled {
		s.metrics = NewMetrics()
	}

	r := mux.NewRouter()
	r.Use(s.metrics.Middleware)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/assess", s.handleFormAssess).Methods(http.MethodPost)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/locations", s.handleLocations).Methods(http.MethodGet)
	api.HandleFunc("/panels", s.handlePanels).Methods(http.MethodGet)
	api.HandleFunc("/assess", s.handleAssess).Methods(http.MethodPost)
	api.HandleFunc("/compare", s.handleCompare).Methods(http.MethodPost)

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError)),
	)
	s.handler = handlers.CombinedLoggingHandler(accessLog, recovery(r))
	return s
}

// Handler returns the fully wrapped router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens on the configured port until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("solar calculator server starting",
		"addr", fmt.Sprintf("http://localhost%s", srv.Addr),
		"metrics", s.metrics != nil)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listening on %s: %w", srv.Addr, err)
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
