package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"horaires/internal/cache"
	"horaires/internal/metrics"
	"horaires/internal/resolve"
)

// AvailabilityRequest is the request body for POST /api/availability.
type AvailabilityRequest struct {
	ClientID  int64  `json:"client_id"`
	StartDate string `json:"start_date"` // Format: YYYY-MM-DD
	EndDate   string `json:"end_date"`   // Format: YYYY-MM-DD
}

// DayAvailability is the resolved status of a single date.
type DayAvailability struct {
	Date          string   `json:"date"`
	Status        string   `json:"status"`
	Reason        string   `json:"reason,omitempty"`
	OpeningRanges []string `json:"opening_ranges,omitempty"`
	MarketRanges  []string `json:"market_ranges,omitempty"`
}

// AvailabilityResponse is the response for POST /api/availability.
type AvailabilityResponse struct {
	ClientID int64             `json:"client_id"`
	Days     []DayAvailability `json:"days"`
	Period   struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"period"`
}

// handleAvailability resolves every date of the requested span.
// POST /api/availability
func (s *HTTPServer) handleAvailability(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("availability")

	var req AvailabilityRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	startDate, endDate, err := s.validateAvailabilityRequest(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := cache.AvailabilityKey(req.ClientID, req.StartDate, req.EndDate)
	var cached AvailabilityResponse
	if s.cache.Read(r.Context(), key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	week, err := s.db.GetOpeningHours(r.Context(), req.ClientID)
	if err != nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	periods, err := s.db.GetVacationPeriods(r.Context(), req.ClientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load vacation periods failed")
		return
	}
	market, err := s.db.GetMarketDays(r.Context(), req.ClientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load market days failed")
		return
	}

	response := AvailabilityResponse{ClientID: req.ClientID}
	response.Period.Start = req.StartDate
	response.Period.End = req.EndDate

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		st := resolve.Day(d, week, periods, market)
		metrics.IncDayResolved(string(st.Status))
		response.Days = append(response.Days, DayAvailability{
			Date:          d.Format("2006-01-02"),
			Status:        string(st.Status),
			Reason:        st.Reason,
			OpeningRanges: st.OpeningRanges,
			MarketRanges:  st.MarketRanges,
		})
	}

	s.cache.Write(r.Context(), key, response)
	writeJSON(w, http.StatusOK, response)
}

func (s *HTTPServer) validateAvailabilityRequest(req *AvailabilityRequest) (start, end time.Time, err error) {
	if req.ClientID <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("client_id is required")
	}
	if req.StartDate == "" || req.EndDate == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date and end_date are required")
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date format; expected YYYY-MM-DD")
	}

	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date format; expected YYYY-MM-DD")
	}

	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date must be before or equal to end_date")
	}

	if endDate.Sub(startDate) > time.Duration(s.maxDays)*24*time.Hour {
		return time.Time{}, time.Time{}, fmt.Errorf("date range must not exceed %d days", s.maxDays)
	}

	return startDate, endDate, nil
}
