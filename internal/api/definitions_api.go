package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"shiftmaster/internal/metrics"
	"shiftmaster/internal/model"
	"shiftmaster/internal/schedule"
)

// handleDefinitions serves GET /api/definitions: the effective shift-type
// catalogue (built-ins overlaid with custom definitions).
func (s *HTTPServer) handleDefinitions(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("definitions")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defs, err := s.store.ListDefinitions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list definitions")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"definitions": defs})
}

// DefinitionRequest is the body for PUT /api/definitions/{code}.
type DefinitionRequest struct {
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	BreakDuration int    `json:"break_duration"`
}

// handleDefinitionByCode serves PUT /api/definitions/{code}: create or
// override a shift-type definition. Reserved leave codes are refused.
func (s *HTTPServer) handleDefinitionByCode(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("definition_put")
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	code := strings.TrimPrefix(r.URL.Path, "/api/definitions/")
	if code == "" || strings.Contains(code, "/") {
		writeError(w, http.StatusBadRequest, "invalid path")
		return
	}
	if model.IsLeaveCode(code) {
		writeError(w, http.StatusBadRequest, "reserved codes cannot be redefined")
		return
	}

	var req DefinitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	def := model.ShiftDefinition{
		Code:          code,
		StartTime:     schedule.ParseSmartTime(req.StartTime),
		EndTime:       schedule.ParseSmartTime(req.EndTime),
		BreakDuration: req.BreakDuration,
	}
	if def.StartTime == "" || def.EndTime == "" || def.BreakDuration < 0 {
		writeError(w, http.StatusBadRequest, "start_time, end_time and a non-negative break are required")
		return
	}

	if err := s.store.PutDefinition(r.Context(), def); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store definition")
		return
	}
	writeJSON(w, http.StatusOK, def)
}
