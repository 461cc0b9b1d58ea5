package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/fitprogram/internal/planner"
	"github.com/meltforce/fitprogram/internal/storage"
)

// StatsSource reports aggregate completion statistics. *storage.DB satisfies it.
type StatsSource interface {
	GetCompletionStats(ctx context.Context, userID int) (*storage.CompletionStats, error)
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	planner  *planner.Planner
	stats    StatsSource
	log      *slog.Logger
	apiKey   string
	router   chi.Router
	identity func(http.Handler) http.Handler
}

// New creates a new Server with all routes configured. Callers are treated
// as the local user until SetTailscale is called.
func New(p *planner.Planner, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		planner:  p,
		log:      log,
		apiKey:   apiKey,
		router:   chi.NewRouter(),
		identity: DevIdentity,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SetTailscale switches caller identification to tailnet WhoIs lookups.
// Call before serving.
func (s *Server) SetTailscale(lc WhoIser, users UserResolver) {
	s.identity = TailscaleIdentity(lc, users, s.log)
}

// SetStats enables GET /api/v1/stats.
func (s *Server) SetStats(src StatsSource) {
	s.stats = src
}

// MountMCP serves an MCP handler at /mcp behind the identity middleware.
func (s *Server) MountMCP(h http.Handler) {
	s.router.Mount("/mcp", h)
}

func (s *Server) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.identity(next).ServeHTTP(w, r)
	})
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)
	s.router.Use(s.identify)

	s.router.Get("/api/v1/me", s.handleMe)
	s.router.Get("/api/v1/stats", s.handleStats)

	// Program (read-only, tsnet handles access)
	s.router.Get("/api/v1/program", s.handleProgram)
	s.router.Get("/api/v1/program/days/{day}", s.handleDay)
	s.router.Get("/api/v1/program/days/{day}/progress", s.handleDayProgress)
	s.router.Get("/api/v1/program/weeks/{week}", s.handleWeek)
	s.router.Get("/api/v1/program/weeks/{week}/progress", s.handleWeekProgress)
	s.router.Get("/api/v1/summary", s.handleSummary)
	s.router.Get("/api/v1/next", s.handleNext)

	s.router.Route("/api/v1/completions", func(r chi.Router) {
		r.Get("/", s.handleCompletions)

		// Mutations (API key required)
		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Delete("/", s.handleReset)
			r.Put("/days/{day}", s.handleSetDay(true))
			r.Delete("/days/{day}", s.handleSetDay(false))
			r.Put("/days/{day}/exercises/{id}", s.handleSetExercise(true))
			r.Delete("/days/{day}/exercises/{id}", s.handleSetExercise(false))
		})
	})
}
