// Package monitor serves run telemetry over HTTP while an optimization is
// in flight: a health check, Prometheus metrics, and a JSON status
// snapshot.
package monitor

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Status is the JSON snapshot served at /status.
type Status struct {
	Evaluations int64    `json:"evaluations"`
	Generations int64    `json:"generations"`
	Best        *float64 `json:"best,omitempty"`
	Uptime      string   `json:"uptime"`
}

// Tracker accumulates run telemetry behind a lock so the HTTP handlers can
// read a consistent snapshot while the single-threaded loop writes.
type Tracker struct {
	mu          sync.RWMutex
	evaluations int64
	generations int64
	best        float64
	hasBest     bool
	started     time.Time
}

// NewTracker creates a tracker with its uptime clock started.
func NewTracker() *Tracker {
	return &Tracker{started: time.Now()}
}

// AddEvaluations counts n objective evaluations.
func (t *Tracker) AddEvaluations(n int) {
	t.mu.Lock()
	t.evaluations += int64(n)
	t.mu.Unlock()
}

// IncGenerations counts one completed generation.
func (t *Tracker) IncGenerations() {
	t.mu.Lock()
	t.generations++
	t.mu.Unlock()
}

// ObserveBest records the current best objective value.
func (t *Tracker) ObserveBest(v float64) {
	t.mu.Lock()
	t.best = v
	t.hasBest = true
	t.mu.Unlock()
}

// Snapshot returns the current status.
func (t *Tracker) Snapshot() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := Status{
		Evaluations: t.evaluations,
		Generations: t.generations,
		Uptime:      time.Since(t.started).Round(time.Millisecond).String(),
	}
	if t.hasBest {
		best := t.best
		s.Best = &best
	}
	return s
}

// Server is the telemetry HTTP server.
type Server struct {
	addr    string
	logger  *zap.Logger
	tracker *Tracker
	httpSrv *http.Server
}

// NewServer creates a monitor server on addr serving the tracker's
// snapshots and the gatherer's metrics.
func NewServer(addr string, logger *zap.Logger, tracker *Tracker, gatherer prometheus.Gatherer) *Server {
	s := &Server{
		addr:    addr,
		logger:  logger,
		tracker: tracker,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/status", s.handleStatus)

	s.httpSrv = &http.Server{Addr: addr, Handler: r}
	return s
}

// Handler returns the server's HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Start serves in a background goroutine until Shutdown.
func (s *Server) Start() {
	go func() {
		s.logger.Info("monitor listening", zap.String("addr", s.addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("monitor server failed", zap.Error(err))
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.tracker.Snapshot()); err != nil {
		s.logger.Error("encoding status", zap.Error(err))
	}
}
