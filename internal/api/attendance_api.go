package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"shiftmaster/internal/db"
	"shiftmaster/internal/metrics"
	"shiftmaster/internal/model"
	"shiftmaster/internal/schedule"
)

// Upload cap for attendance-sheet photos.
const maxScanImageBytes = 10 << 20

// ScanResponse is the result of POST /api/attendance/scan.
type ScanResponse struct {
	Records []model.ScannedRecord      `json:"records"`
	Items   []model.ReconciliationItem `json:"items"`
}

// handleAttendanceScan accepts a multipart photo of an attendance sheet,
// extracts its records and reconciles them against the live plan. Nothing
// is written; the caller reviews the items and posts the confirmed ones to
// /api/attendance/apply.
func (s *HTTPServer) handleAttendanceScan(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("attendance_scan")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.scanner == nil {
		writeError(w, http.StatusServiceUnavailable, "attendance scanning is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxScanImageBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(io.LimitReader(file, maxScanImageBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image")
		return
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	records, err := s.scanner.Extract(r.Context(), imageData, mimeType)
	if err != nil {
		metrics.IncScan("error")
		s.logger.Error().Err(err).Msg("attendance extraction")
		writeError(w, http.StatusBadGateway, "attendance extraction failed")
		return
	}
	metrics.IncScan("ok")

	items, err := s.reconcile(r, records)
	if err != nil {
		s.logger.Error().Err(err).Msg("reconcile records")
		writeError(w, http.StatusInternalServerError, "failed to reconcile records")
		return
	}
	for _, item := range items {
		metrics.IncReconciliation(item.Status)
	}

	writeJSON(w, http.StatusOK, ScanResponse{Records: records, Items: items})
}

// reconcile matches scanned records against the live plan of the months the
// records fall into.
func (s *HTTPServer) reconcile(r *http.Request, records []model.ScannedRecord) ([]model.ReconciliationItem, error) {
	months := map[string]bool{}
	for _, rec := range records {
		if len(rec.Date) >= 7 {
			months[rec.Date[:7]] = true
		}
	}

	var shifts []*model.Shift
	for month := range months {
		monthShifts, err := s.store.ListShiftsForMonth(r.Context(), month, "", false)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, monthShifts...)
	}

	employees, err := s.store.ListEmployees(r.Context())
	if err != nil {
		return nil, err
	}
	nameToID := make(map[string]string, len(employees))
	for _, e := range employees {
		nameToID[strings.ToLower(strings.TrimSpace(e.Name))] = e.ID
	}

	return schedule.ReconcileRecords(records, shifts, nameToID, s.cfg.RoundingTolerance), nil
}

// ApplyRequest is the body for POST /api/attendance/apply.
type ApplyRequest struct {
	Items []ApplyItem `json:"items"`
}

// ApplyItem is one confirmed reconciliation result.
type ApplyItem struct {
	ShiftID string         `json:"shift_id"`
	Final   model.TimePair `json:"final"`
}

// handleAttendanceApply writes confirmed final times back to the shifts.
func (s *HTTPServer) handleAttendanceApply(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("attendance_apply")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	applied := 0
	for _, item := range req.Items {
		shift, err := s.store.GetShift(r.Context(), item.ShiftID)
		if err != nil || shift == nil {
			continue
		}
		shift.StartTime = schedule.ParseSmartTime(item.Final.Start)
		shift.EndTime = schedule.ParseSmartTime(item.Final.End)
		shift.Note = fmt.Sprintf("Imported from attendance scan (%s)", schedule.FormatDate(timeNow()))
		if err := s.store.UpdateShift(r.Context(), shift, actor(r)); err != nil {
			s.logger.Error().Err(err).Str("shift", item.ShiftID).Msg("apply scan result")
			continue
		}
		metrics.IncShiftWrite(db.ActionUpdated)
		applied++
	}

	writeJSON(w, http.StatusOK, map[string]any{"applied": applied})
}
