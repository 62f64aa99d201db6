package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"horaires/internal/metrics"
	"horaires/internal/model"
	"horaires/internal/slots"
	"horaires/internal/validate"
)

// CreateClientRequest is the request body for POST /api/clients.
type CreateClientRequest struct {
	Name string `json:"name"`
}

// ScheduleResponse is the editing view of a client's week: the stored
// per-day form plus the grouped slot form.
type ScheduleResponse struct {
	Week       model.WeekSchedule `json:"week"`
	Slots      []model.TimeSlot   `json:"slots"`
	ClosedDays []model.Weekday    `json:"closedDays"`
}

// SaveScheduleRequest commits an edited slot view.
type SaveScheduleRequest struct {
	Slots      []model.TimeSlot `json:"slots"`
	ClosedDays []model.Weekday  `json:"closedDays"`
}

func (s *HTTPServer) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("create_client")

	var req CreateClientRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	client, err := s.db.CreateClient(r.Context(), req.Name)
	if err != nil {
		s.logger.Error().Err(err).Msg("create client failed")
		writeError(w, http.StatusInternalServerError, "create client failed")
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (s *HTTPServer) handleListClients(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("list_clients")

	clients, err := s.db.ListClients(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("list clients failed")
		writeError(w, http.StatusInternalServerError, "list clients failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"clients": clients})
}

// handleGetSchedule returns the stored week together with its grouped
// slot view. GET /api/clients/{id}/schedule
func (s *HTTPServer) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("get_schedule")

	clientID, ok := s.clientID(w, r)
	if !ok {
		return
	}

	week, err := s.db.GetOpeningHours(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}

	g := slots.Group(week)
	writeJSON(w, http.StatusOK, ScheduleResponse{
		Week:       week,
		Slots:      g.Slots,
		ClosedDays: g.ClosedDays,
	})
}

// handleSaveSchedule flattens the edited slot view, validates the
// resulting week and stores it. PUT /api/clients/{id}/schedule
func (s *HTTPServer) handleSaveSchedule(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("save_schedule")

	clientID, ok := s.clientID(w, r)
	if !ok {
		return
	}

	var req SaveScheduleRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	week := slots.Ungroup(req.Slots, req.ClosedDays)
	if result := validate.Week(week); !result.Valid {
		metrics.IncValidationFailed("week")
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}

	if err := s.db.SaveOpeningHours(r.Context(), clientID, week); err != nil {
		s.logger.Error().Err(err).Int64("client_id", clientID).Msg("save schedule failed")
		writeError(w, http.StatusInternalServerError, "save schedule failed")
		return
	}
	metrics.IncScheduleSaved()
	s.cache.InvalidateClient(r.Context(), clientID)

	writeJSON(w, http.StatusOK, validate.Result{Valid: true})
}

// handleGetVacations returns a client's closure periods.
// GET /api/clients/{id}/vacations
func (s *HTTPServer) handleGetVacations(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("get_vacations")

	clientID, ok := s.clientID(w, r)
	if !ok {
		return
	}

	periods, err := s.db.GetVacationPeriods(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	if periods == nil {
		periods = []model.VacationPeriod{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"periods": periods})
}

// handleSaveVacations validates and stores closure periods. New periods
// without an ID get one assigned. PUT /api/clients/{id}/vacations
func (s *HTTPServer) handleSaveVacations(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("save_vacations")

	clientID, ok := s.clientID(w, r)
	if !ok {
		return
	}

	var periods []model.VacationPeriod
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&periods); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	for i := range periods {
		if periods[i].ID == "" {
			periods[i].ID = uuid.NewString()
		}
	}

	if result := validate.VacationPeriods(periods); !result.Valid {
		metrics.IncValidationFailed("vacation_periods")
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}

	if err := s.db.SaveVacationPeriods(r.Context(), clientID, periods); err != nil {
		s.logger.Error().Err(err).Int64("client_id", clientID).Msg("save vacations failed")
		writeError(w, http.StatusInternalServerError, "save vacations failed")
		return
	}
	metrics.IncScheduleSaved()
	s.cache.InvalidateClient(r.Context(), clientID)

	writeJSON(w, http.StatusOK, map[string]any{"valid": true, "periods": periods})
}

// handleSyncVacations pushes the stored closure periods to the
// configured Google calendar. POST /api/clients/{id}/vacations/sync
func (s *HTTPServer) handleSyncVacations(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("sync_vacations")

	if s.calendar == nil {
		writeError(w, http.StatusServiceUnavailable, "calendar sync is not configured")
		return
	}

	clientID, ok := s.clientID(w, r)
	if !ok {
		return
	}

	client, err := s.db.GetClient(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	periods, err := s.db.GetVacationPeriods(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load vacation periods failed")
		return
	}

	synced, err := s.calendar.SyncVacations(r.Context(), client.Name, periods)
	if err != nil {
		s.logger.Error().Err(err).Int64("client_id", clientID).Msg("calendar sync failed")
		writeError(w, http.StatusBadGateway, "calendar sync failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"synced": synced})
}

// handleGetMarketDays returns a client's market windows.
// GET /api/clients/{id}/market-days
func (s *HTTPServer) handleGetMarketDays(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("get_market_days")

	clientID, ok := s.clientID(w, r)
	if !ok {
		return
	}

	market, err := s.db.GetMarketDays(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	if market == nil {
		market = model.MarketDaySchedule{}
	}
	writeJSON(w, http.StatusOK, market)
}

// handleSaveMarketDays stores a client's market windows. Ranges are kept
// as entered; no ordering or overlap is enforced on them.
// PUT /api/clients/{id}/market-days
func (s *HTTPServer) handleSaveMarketDays(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("save_market_days")

	clientID, ok := s.clientID(w, r)
	if !ok {
		return
	}

	var market model.MarketDaySchedule
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&market); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.db.SaveMarketDays(r.Context(), clientID, market); err != nil {
		s.logger.Error().Err(err).Int64("client_id", clientID).Msg("save market days failed")
		writeError(w, http.StatusInternalServerError, "save market days failed")
		return
	}
	s.cache.InvalidateClient(r.Context(), clientID)

	writeJSON(w, http.StatusOK, map[string]any{"valid": true})
}

func (s *HTTPServer) clientID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid client id")
		return 0, false
	}
	return id, true
}
