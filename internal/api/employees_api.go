package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"shiftmaster/internal/metrics"
	"shiftmaster/internal/model"
)

// CreateEmployeeRequest is the body for POST /api/employees.
type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	Role       string  `json:"role,omitempty"`
	Email      string  `json:"email,omitempty"`
	WeeklyFund float64 `json:"weekly_fund,omitempty"`
}

// UpdateEmployeeRequest is the body for PATCH /api/employees/{id}.
// Pointer fields distinguish "leave unchanged" from an explicit value.
type UpdateEmployeeRequest struct {
	Name       *string  `json:"name,omitempty"`
	Role       *string  `json:"role,omitempty"`
	Email      *string  `json:"email,omitempty"`
	WeeklyFund *float64 `json:"weekly_fund,omitempty"`
}

// handleEmployees serves GET (list) and POST (create) /api/employees.
func (s *HTTPServer) handleEmployees(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("employees")
	switch r.Method {
	case http.MethodGet:
		employees, err := s.store.ListEmployees(r.Context())
		if err != nil {
			s.logger.Error().Err(err).Msg("list employees")
			writeError(w, http.StatusInternalServerError, "failed to list employees")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"employees": employees})

	case http.MethodPost:
		var req CreateEmployeeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}
		if req.Role == "" {
			req.Role = model.RoleEmployee
		}
		if req.Role != model.RoleAdmin && req.Role != model.RoleEmployee {
			writeError(w, http.StatusBadRequest, "role must be admin or employee")
			return
		}
		if req.WeeklyFund <= 0 {
			req.WeeklyFund = s.cfg.DefaultWeeklyFund
		}

		employee := &model.Employee{
			ID:         uuid.NewString(),
			Name:       req.Name,
			Role:       req.Role,
			Email:      req.Email,
			WeeklyFund: req.WeeklyFund,
		}
		if err := s.store.CreateEmployee(r.Context(), employee); err != nil {
			s.logger.Error().Err(err).Msg("create employee")
			writeError(w, http.StatusInternalServerError, "failed to create employee")
			return
		}
		writeJSON(w, http.StatusCreated, employee)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleEmployeeByID serves PATCH /api/employees/{id}.
func (s *HTTPServer) handleEmployeeByID(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("employee")
	if r.Method != http.MethodPatch {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/employees/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "invalid path")
		return
	}

	employee, err := s.store.GetEmployee(r.Context(), id)
	if err != nil {
		s.logger.Error().Err(err).Msg("get employee")
		writeError(w, http.StatusInternalServerError, "failed to load employee")
		return
	}
	if employee == nil {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}

	var req UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Role != nil {
		if *req.Role != model.RoleAdmin && *req.Role != model.RoleEmployee {
			writeError(w, http.StatusBadRequest, "role must be admin or employee")
			return
		}
		employee.Role = *req.Role
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.WeeklyFund != nil {
		if *req.WeeklyFund <= 0 {
			writeError(w, http.StatusBadRequest, "weekly_fund must be positive")
			return
		}
		employee.WeeklyFund = *req.WeeklyFund
	}

	if err := s.store.UpdateEmployee(r.Context(), employee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "employee not found")
			return
		}
		s.logger.Error().Err(err).Msg("update employee")
		writeError(w, http.StatusInternalServerError, "failed to update employee")
		return
	}
	writeJSON(w, http.StatusOK, employee)
}
