package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"horaires/internal/cache"
	"horaires/internal/db"
	"horaires/internal/gcal"
)

// HTTPServer exposes the schedule engine over HTTP.
type HTTPServer struct {
	db       *db.DB
	cache    *cache.Cache
	calendar *gcal.Service // nil when sync is not configured
	logger   *zerolog.Logger
	maxDays  int
	limiter  *rateLimiter
}

// Options configures the HTTP server.
type Options struct {
	MaxAvailabilityDays int
	RatePerSecond       float64
	RateBurst           int
}

// NewHTTPServer wires the API over its collaborators. cacheClient and
// calendar may be nil.
func NewHTTPServer(database *db.DB, cacheClient *cache.Cache, calendar *gcal.Service, logger *zerolog.Logger, opts Options) *HTTPServer {
	if opts.MaxAvailabilityDays <= 0 {
		opts.MaxAvailabilityDays = 90
	}
	return &HTTPServer{
		db:       database,
		cache:    cacheClient,
		calendar: calendar,
		logger:   logger,
		maxDays:  opts.MaxAvailabilityDays,
		limiter:  newRateLimiter(opts.RatePerSecond, opts.RateBurst),
	}
}

// Handler returns the routed handler with middleware applied.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/availability", s.handleAvailability)

	mux.HandleFunc("POST /api/clients", s.handleCreateClient)
	mux.HandleFunc("GET /api/clients", s.handleListClients)

	mux.HandleFunc("GET /api/clients/{id}/schedule", s.handleGetSchedule)
	mux.HandleFunc("PUT /api/clients/{id}/schedule", s.handleSaveSchedule)

	mux.HandleFunc("GET /api/clients/{id}/vacations", s.handleGetVacations)
	mux.HandleFunc("PUT /api/clients/{id}/vacations", s.handleSaveVacations)
	mux.HandleFunc("POST /api/clients/{id}/vacations/sync", s.handleSyncVacations)

	mux.HandleFunc("GET /api/clients/{id}/market-days", s.handleGetMarketDays)
	mux.HandleFunc("PUT /api/clients/{id}/market-days", s.handleSaveMarketDays)

	mux.HandleFunc("GET /api/clients/{id}/calendar.xlsx", s.handleExportCalendar)

	return s.limiter.middleware(mux)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
