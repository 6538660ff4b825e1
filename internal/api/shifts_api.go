package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"shiftmaster/internal/db"
	"shiftmaster/internal/events"
	"shiftmaster/internal/metrics"
	"shiftmaster/internal/model"
	"shiftmaster/internal/notify"
	"shiftmaster/internal/schedule"
)

// ShiftRequest is the body for POST /api/shifts and PATCH /api/shifts/{id}.
// Omitted times on a work-type create are filled from the type's preset.
// Force saves the shift even when validation flags it.
type ShiftRequest struct {
	EmployeeID    string `json:"employee_id,omitempty"`
	Date          string `json:"date,omitempty"`
	ConfirmedType string `json:"confirmed_type"`
	StartTime     string `json:"start_time,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
	BreakDuration *int   `json:"break_duration,omitempty"`
	Note          string `json:"note,omitempty"`
	Audit         bool   `json:"audit,omitempty"`
	Force         bool   `json:"force,omitempty"`
}

// ShiftResponse pairs a saved shift with its validation outcome.
type ShiftResponse struct {
	Shift      *model.Shift           `json:"shift,omitempty"`
	Validation model.ValidationResult `json:"validation"`
	Saved      bool                   `json:"saved"`
}

// handleShifts serves GET (roster for a month) and POST (create) /api/shifts.
func (s *HTTPServer) handleShifts(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("shifts")
	switch r.Method {
	case http.MethodGet:
		month := r.URL.Query().Get("month")
		if _, _, err := parseMonth(month); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		audit := r.URL.Query().Get("audit") == "true"
		shifts, err := s.store.ListShiftsForMonth(r.Context(), month, r.URL.Query().Get("employee_id"), audit)
		if err != nil {
			s.logger.Error().Err(err).Msg("list shifts")
			writeError(w, http.StatusInternalServerError, "failed to list shifts")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"shifts": shifts})

	case http.MethodPost:
		s.createShift(w, r)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) createShift(w http.ResponseWriter, r *http.Request) {
	var req ShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.EmployeeID == "" {
		writeError(w, http.StatusBadRequest, "employee_id is required")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	employee, err := s.store.GetEmployee(r.Context(), req.EmployeeID)
	if err != nil {
		s.logger.Error().Err(err).Msg("get employee")
		writeError(w, http.StatusInternalServerError, "failed to load employee")
		return
	}
	if employee == nil {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}

	shift := &model.Shift{
		EmployeeID:    req.EmployeeID,
		Date:          req.Date,
		ConfirmedType: req.ConfirmedType,
		StartTime:     schedule.ParseSmartTime(req.StartTime),
		EndTime:       schedule.ParseSmartTime(req.EndTime),
		Note:          req.Note,
		IsWeekend:     date.Weekday() == time.Saturday || date.Weekday() == time.Sunday,
		IsAudit:       req.Audit,
		// A direct audit-plan write is an admin decision; the live mirror
		// must not overwrite it.
		ManuallyEdited: req.Audit,
	}
	if req.BreakDuration != nil {
		shift.BreakDuration = *req.BreakDuration
	}

	// Leave codes carry no times; work codes without explicit times get
	// the type's preset for that day.
	if model.IsLeaveCode(shift.ConfirmedType) {
		shift.StartTime, shift.EndTime, shift.BreakDuration = "", "", 0
	} else if shift.StartTime == "" && shift.EndTime == "" {
		defs, err := s.store.ListDefinitions(r.Context())
		if err != nil {
			s.logger.Error().Err(err).Msg("list definitions")
			writeError(w, http.StatusInternalServerError, "failed to load definitions")
			return
		}
		preset := schedule.ResolvePreset(date, shift.ConfirmedType, defs, s.cfg.Policy)
		shift.StartTime, shift.EndTime = preset.Start, preset.End
		if req.BreakDuration == nil {
			shift.BreakDuration = preset.BreakDuration
		}
	}

	validation, err := s.validate(r, shift)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to validate shift")
		return
	}
	if !validation.IsValid {
		metrics.IncRuleViolation()
		if !req.Force {
			writeJSON(w, http.StatusUnprocessableEntity, ShiftResponse{Validation: validation})
			return
		}
	}

	if err := s.store.CreateShift(r.Context(), shift, actor(r)); err != nil {
		s.logger.Error().Err(err).Msg("create shift")
		writeError(w, http.StatusConflict, "failed to create shift; is the day already planned?")
		return
	}
	metrics.IncShiftWrite(db.ActionCreated)
	s.afterWrite(r, shift)

	writeJSON(w, http.StatusCreated, ShiftResponse{Shift: shift, Validation: validation, Saved: true})
}

// handleShiftByID routes /api/shifts/{id} and its sub-resources.
func (s *HTTPServer) handleShiftByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/shifts/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid path")
		return
	}

	switch sub {
	case "":
		switch r.Method {
		case http.MethodPatch:
			s.updateShift(w, r, id)
		case http.MethodDelete:
			s.deleteShift(w, r, id)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	case "validate":
		s.validateShift(w, r, id)
	case "history":
		s.shiftHistory(w, r, id)
	case "offer":
		s.offerShift(w, r, id)
	case "claim":
		s.claimShift(w, r, id)
	default:
		writeError(w, http.StatusNotFound, "unknown resource")
	}
}

func (s *HTTPServer) updateShift(w http.ResponseWriter, r *http.Request, id string) {
	metrics.IncHTTP("shift_update")

	shift, err := s.store.GetShift(r.Context(), id)
	if err != nil {
		s.logger.Error().Err(err).Msg("get shift")
		writeError(w, http.StatusInternalServerError, "failed to load shift")
		return
	}
	if shift == nil {
		writeError(w, http.StatusNotFound, "shift not found")
		return
	}

	var req ShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.ConfirmedType != "" {
		shift.ConfirmedType = req.ConfirmedType
	}
	if req.StartTime != "" {
		shift.StartTime = schedule.ParseSmartTime(req.StartTime)
	}
	if req.EndTime != "" {
		shift.EndTime = schedule.ParseSmartTime(req.EndTime)
	}
	if req.BreakDuration != nil {
		shift.BreakDuration = *req.BreakDuration
	}
	if req.Note != "" {
		shift.Note = req.Note
	}
	if model.IsLeaveCode(shift.ConfirmedType) {
		shift.StartTime, shift.EndTime, shift.BreakDuration = "", "", 0
	} else if !shift.HasTimes() {
		// A type change from a leave code back to a work code lands here
		// with empty times; fill them from the preset like create does.
		date, err := parseDate(shift.Date)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "invalid shift date")
			return
		}
		defs, err := s.store.ListDefinitions(r.Context())
		if err != nil {
			s.logger.Error().Err(err).Msg("list definitions")
			writeError(w, http.StatusInternalServerError, "failed to load definitions")
			return
		}
		preset := schedule.ResolvePreset(date, shift.ConfirmedType, defs, s.cfg.Policy)
		shift.StartTime, shift.EndTime = preset.Start, preset.End
		if req.BreakDuration == nil {
			shift.BreakDuration = preset.BreakDuration
		}
	}
	if shift.IsAudit {
		shift.ManuallyEdited = true
	}

	validation, err := s.validate(r, shift)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to validate shift")
		return
	}
	if !validation.IsValid {
		metrics.IncRuleViolation()
		if !req.Force {
			writeJSON(w, http.StatusUnprocessableEntity, ShiftResponse{Validation: validation})
			return
		}
	}

	if err := s.store.UpdateShift(r.Context(), shift, actor(r)); err != nil {
		s.logger.Error().Err(err).Msg("update shift")
		writeError(w, http.StatusInternalServerError, "failed to update shift")
		return
	}
	metrics.IncShiftWrite(db.ActionUpdated)
	s.afterWrite(r, shift)

	writeJSON(w, http.StatusOK, ShiftResponse{Shift: shift, Validation: validation, Saved: true})
}

func (s *HTTPServer) deleteShift(w http.ResponseWriter, r *http.Request, id string) {
	metrics.IncHTTP("shift_delete")
	if err := s.store.DeleteShift(r.Context(), id, actor(r)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "shift not found")
			return
		}
		s.logger.Error().Err(err).Msg("delete shift")
		writeError(w, http.StatusInternalServerError, "failed to delete shift")
		return
	}
	metrics.IncShiftWrite(db.ActionDeleted)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *HTTPServer) validateShift(w http.ResponseWriter, r *http.Request, id string) {
	metrics.IncHTTP("shift_validate")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	shift, err := s.store.GetShift(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load shift")
		return
	}
	if shift == nil {
		writeError(w, http.StatusNotFound, "shift not found")
		return
	}

	validation, err := s.validate(r, shift)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to validate shift")
		return
	}
	writeJSON(w, http.StatusOK, validation)
}

func (s *HTTPServer) shiftHistory(w http.ResponseWriter, r *http.Request, id string) {
	metrics.IncHTTP("shift_history")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	entries, err := s.store.ListShiftHistory(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": entries})
}

func (s *HTTPServer) offerShift(w http.ResponseWriter, r *http.Request, id string) {
	metrics.IncHTTP("shift_offer")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	shift, err := s.store.GetShift(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load shift")
		return
	}
	if shift == nil {
		writeError(w, http.StatusNotFound, "shift not found")
		return
	}
	if shift.IsAudit {
		writeError(w, http.StatusBadRequest, "audit-plan shifts cannot be offered")
		return
	}

	if err := s.store.SetOffered(r.Context(), id, true, actor(r)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "shift not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to offer shift")
		return
	}
	metrics.IncShiftWrite(db.ActionOffered)

	shift.IsOffered = true
	s.publishShiftEvent(r, events.TypeShiftOffered, shift)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ClaimRequest is the body for POST /api/shifts/{id}/claim.
type ClaimRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (s *HTTPServer) claimShift(w http.ResponseWriter, r *http.Request, id string) {
	metrics.IncHTTP("shift_claim")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EmployeeID == "" {
		writeError(w, http.StatusBadRequest, "employee_id is required")
		return
	}

	claimed, err := s.store.ClaimShift(r.Context(), id, req.EmployeeID, actor(r))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "shift not found")
			return
		}
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	metrics.IncShiftWrite(db.ActionClaimed)
	s.publishShiftEvent(r, events.TypeShiftClaimed, claimed)

	writeJSON(w, http.StatusOK, claimed)
}

// handleMarket serves GET /api/market: the shifts currently offered.
func (s *HTTPServer) handleMarket(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("market")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	shifts, err := s.store.ListOfferedShifts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list offers")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"shifts": shifts})
}

// validate runs the rule checks against the previous day's shift.
func (s *HTTPServer) validate(r *http.Request, shift *model.Shift) (model.ValidationResult, error) {
	date, err := parseDate(shift.Date)
	if err != nil {
		return model.ValidationResult{}, err
	}
	prevDate := schedule.FormatDate(date.AddDate(0, 0, -1))
	prev, err := s.store.GetShiftForDay(r.Context(), shift.EmployeeID, prevDate, shift.IsAudit)
	if err != nil {
		return model.ValidationResult{}, err
	}
	return schedule.ValidateShiftRules(shift, prev, s.cfg.Rules), nil
}

// afterWrite mirrors live writes into the audit plan and raises a coverage
// alert for uncovered weekdays.
func (s *HTTPServer) afterWrite(r *http.Request, shift *model.Shift) {
	ctx := r.Context()

	if !shift.IsAudit {
		if err := s.store.UpsertAuditCopy(ctx, shift); err != nil {
			s.logger.Error().Err(err).Str("shift", shift.ID).Msg("mirror to audit plan")
		}
	}

	if s.bus == nil || shift.IsWeekend {
		// Weekend coverage is not alerted; the analyzer itself stays
		// weekend-agnostic and the suppression lives here.
		return
	}

	date, err := parseDate(shift.Date)
	if err != nil {
		return
	}
	dayShifts, err := s.store.ListShiftsForDate(ctx, shift.Date, shift.IsAudit)
	if err != nil {
		return
	}
	if !schedule.IsShopCovered(dayShifts, date, s.cfg.Policy) {
		payload, _ := json.Marshal(notify.CoverageEvent{Date: shift.Date})
		s.bus.Publish(events.Event{Type: events.TypeCoverageGap, Payload: payload})
	}
}

func (s *HTTPServer) publishShiftEvent(r *http.Request, eventType string, shift *model.Shift) {
	if s.bus == nil {
		return
	}
	name := ""
	if employee, err := s.store.GetEmployee(r.Context(), shift.EmployeeID); err == nil && employee != nil {
		name = employee.Name
	}
	payload, _ := json.Marshal(notify.ShiftEvent{
		ShiftID:       shift.ID,
		EmployeeName:  name,
		Date:          shift.Date,
		ConfirmedType: shift.ConfirmedType,
		StartTime:     shift.StartTime,
		EndTime:       shift.EndTime,
	})
	s.bus.Publish(events.Event{Type: eventType, Payload: payload})
}
