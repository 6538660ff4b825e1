package api

import (
	"fmt"
	"net/http"

	"shiftmaster/internal/export"
	"shiftmaster/internal/metrics"
	"shiftmaster/internal/model"
	"shiftmaster/internal/schedule"
)

// handleExportTimesheet serves GET /api/export/timesheet?employee_id=&month=
// as an XLSX download.
func (s *HTTPServer) handleExportTimesheet(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("export_timesheet")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	employeeID := r.URL.Query().Get("employee_id")
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

	audit := r.URL.Query().Get("audit") == "true"
	shifts, err := s.store.ListShiftsForMonth(r.Context(), month, employeeID, audit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list shifts")
		return
	}

	fund := employee.DailyFund() * float64(schedule.WorkdaysInMonth(year, m))
	suffix := ""
	if audit {
		suffix = "_authoritative"
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="timesheet_%s_%s%s.xlsx"`, employee.Name, month, suffix))

	if err := export.Timesheet(w, employee, shifts, year, m, fund); err != nil {
		s.logger.Error().Err(err).Msg("write timesheet")
	}
}

// handleExportSummary serves GET /api/export/summary?month= with one row
// per employee.
func (s *HTTPServer) handleExportSummary(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("export_summary")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	month := r.URL.Query().Get("month")
	year, m, err := parseMonth(month)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	employees, err := s.store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list employees")
		return
	}

	audit := r.URL.Query().Get("audit") == "true"
	shifts, err := s.store.ListShiftsForMonth(r.Context(), month, "", audit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list shifts")
		return
	}
	byEmployee := make(map[string][]*model.Shift)
	for _, shift := range shifts {
		byEmployee[shift.EmployeeID] = append(byEmployee[shift.EmployeeID], shift)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="summary_%s.xlsx"`, month))

	if err := export.TeamSummary(w, employees, byEmployee, year, m); err != nil {
		s.logger.Error().Err(err).Msg("write summary")
	}
}

// handleExportCalendar serves GET /api/export/calendar?employee_id=&month=
// as an ICS feed.
func (s *HTTPServer) handleExportCalendar(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("export_calendar")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	employeeID := r.URL.Query().Get("employee_id")
	month := r.URL.Query().Get("month")
	if _, _, err := parseMonth(month); err != nil {
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

	shifts, err := s.store.ListShiftsForMonth(r.Context(), month, employeeID, false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list shifts")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="shifts_%s.ics"`, month))
	_, _ = w.Write([]byte(export.Calendar(shifts, employee.Name)))
}
