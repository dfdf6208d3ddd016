package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hamed0406/statusboard/internal/httpapi/middleware"
	"github.com/hamed0406/statusboard/internal/view"
)

// Triggerer is what the server needs from the refresher.
type Triggerer interface {
	Refresh()
}

// Server is the render boundary: the SPA reads whole snapshots from
// here and can ask for a manual refresh. CORS is wide open because the
// renderer lives on another origin.
type Server struct {
	Logger       *zap.Logger
	Store        *view.Store
	Refresher    Triggerer
	RefreshRPM   int
	RefreshBurst int
}

func NewServer(l *zap.Logger, st *view.Store, tr Triggerer, refreshRPM, refreshBurst int) *Server {
	return &Server{
		Logger:       l,
		Store:        st,
		Refresher:    tr,
		RefreshRPM:   refreshRPM,
		RefreshBurst: refreshBurst,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/api/dashboard", s.handleDashboard)
	r.With(middleware.RateLimit(s.RefreshRPM, s.RefreshBurst)).
		Post("/api/refresh", s.handleRefresh)

	return r
}

// handleDashboard serves the current snapshot. Before the first cycle
// publishes there is nothing to show yet; 503 tells the renderer to
// keep its loading view.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.Store.Get()
	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		s.Logger.Warn("dashboard_encode_error", zap.Error(err))
	}
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.Refresher.Refresh()
	s.Logger.Info("manual_refresh", zap.String("remote", r.RemoteAddr))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_, _ = w.Write([]byte(`{"status":"refresh scheduled"}`))
}
