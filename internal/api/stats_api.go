package api

import (
	"net/http"
	"strconv"
	"time"

	"shiftmaster/internal/metrics"
	"shiftmaster/internal/schedule"
)

// CoverageResponse is the verdict for GET /api/coverage.
type CoverageResponse struct {
	Date    string `json:"date"`
	Covered bool   `json:"covered"`
	Weekend bool   `json:"weekend"`
	Closing string `json:"closing"`
}

// handleCoverage reports whether the store's opening hours are covered on a
// date. The analyzer knows nothing about weekends, so the weekend flag is
// returned alongside for the caller to suppress the alert.
func (s *HTTPServer) handleCoverage(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("coverage")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	dateStr := r.URL.Query().Get("date")
	date, err := parseDate(dateStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	audit := r.URL.Query().Get("audit") == "true"

	shifts, err := s.store.ListShiftsForDate(r.Context(), dateStr, audit)
	if err != nil {
		s.logger.Error().Err(err).Msg("list shifts for date")
		writeError(w, http.StatusInternalServerError, "failed to list shifts")
		return
	}

	writeJSON(w, http.StatusOK, CoverageResponse{
		Date:    dateStr,
		Covered: schedule.IsShopCovered(shifts, date, s.cfg.Policy),
		Weekend: date.Weekday() == time.Saturday || date.Weekday() == time.Sunday,
		Closing: s.cfg.Policy.ClosingTime(date),
	})
}

// handleStats serves GET /api/stats?employee_id=&month=YYYY-MM.
// The fund target defaults to the employee's daily fund times the month's
// workdays; an explicit fund query parameter overrides it.
func (s *HTTPServer) handleStats(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("stats")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		writeError(w, http.StatusBadRequest, "employee_id is required")
		return
	}
	month := r.URL.Query().Get("month")
	year, m, err := parseMonth(month)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	employee, err := s.store.GetEmployee(r.Context(), employeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load employee")
		return
	}
	if employee == nil {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}

	fund := employee.DailyFund() * float64(schedule.WorkdaysInMonth(year, m))
	if v := r.URL.Query().Get("fund"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "invalid fund")
			return
		}
		fund = parsed
	}

	audit := r.URL.Query().Get("audit") == "true"
	shifts, err := s.store.ListShiftsForMonth(r.Context(), month, employeeID, audit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list shifts")
		return
	}

	writeJSON(w, http.StatusOK, schedule.CalculateStats(shifts, fund, employee.WeeklyFund))
}
