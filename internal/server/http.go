package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hostmon/collector/internal/config"
	"github.com/hostmon/collector/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server serves the introspection endpoint over HTTP.
type Server struct {
	server *http.Server
	cfg    *config.Config
	log    *logger.Logger
}

// New builds an introspection Server listening on addr.
func New(addr string, cfg *config.Config, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}

	s := &Server{cfg: cfg, log: log}
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/ready", s.ready)
	router.Get("/config", s.configSummary)

	return router
}

// Run serves until Shutdown is called. It blocks.
func (s *Server) Run(ctx context.Context) {
	s.log.Info().Str("addr", s.server.Addr).Msg("introspection endpoint listening")

	go func() {
		<-ctx.Done()
		s.Shutdown()
	}()

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Error().Err(err).Msg("introspection endpoint failed")
	}
}

// Shutdown stops the server, waiting briefly for in-flight requests.
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.log.Error().Err(err).Msg("introspection endpoint shutdown")
	}
}

func (s *Server) ready(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) configSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"collectionMethod":          s.cfg.CollectionMethod().String(),
		"hostname":                  s.cfg.Hostname(),
		"hostProc":                  s.cfg.HostProc(),
		"scrapeInterval":            s.cfg.ScrapeInterval(),
		"turnOffScrape":             s.cfg.TurnOffScrape(),
		"logLevel":                  s.cfg.LogLevel(),
		"processesListeningOnPorts": s.cfg.ProcessesListeningOnPorts(),
		"importUsers":               s.cfg.ImportUsers(),
		"collectConnectionStatus":   s.cfg.CollectConnectionStatus(),
		"enableExternalIPs":         s.cfg.EnableExternalIPs(),
		"enableAfterglow":           s.cfg.EnableAfterglow(),
		"afterglowPeriodMicros":     s.cfg.AfterglowPeriod(),
		"summary":                   s.cfg.String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
