package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"horaires/internal/export"
	"horaires/internal/metrics"
)

// handleExportCalendar streams a month of resolved availability as an
// Excel workbook. GET /api/clients/{id}/calendar.xlsx?year=&month=
func (s *HTTPServer) handleExportCalendar(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("export_calendar")

	clientID, ok := s.clientID(w, r)
	if !ok {
		return
	}

	now := time.Now()
	year := now.Year()
	month := now.Month()
	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1970 || n > 9999 {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = n
	}
	if v := r.URL.Query().Get("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			writeError(w, http.StatusBadRequest, "invalid month; expected 1-12")
			return
		}
		month = time.Month(n)
	}

	client, err := s.db.GetClient(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	week, err := s.db.GetOpeningHours(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load schedule failed")
		return
	}
	periods, err := s.db.GetVacationPeriods(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load vacation periods failed")
		return
	}
	market, err := s.db.GetMarketDays(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load market days failed")
		return
	}

	f, err := export.MonthCalendar(client.Name, year, month, week, periods, market)
	if err != nil {
		s.logger.Error().Err(err).Int64("client_id", clientID).Msg("calendar export failed")
		writeError(w, http.StatusInternalServerError, "calendar export failed")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="calendar-%d-%02d.xlsx"`, year, int(month)))
	if err := f.Write(w); err != nil {
		s.logger.Error().Err(err).Msg("write workbook failed")
	}
}
