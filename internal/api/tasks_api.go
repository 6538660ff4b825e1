package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"shiftmaster/internal/metrics"
	"shiftmaster/internal/model"
)

// CreateTaskRequest is the body for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	AssigneeID  string `json:"assignee_id,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateTaskRequest is the body for PATCH /api/tasks/{id}.
// Pointer fields distinguish "leave unchanged" from an explicit value.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// handleTasks serves GET (board, optionally ?status=) and POST (create)
// /api/tasks.
func (s *HTTPServer) handleTasks(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("tasks")
	switch r.Method {
	case http.MethodGet:
		status := r.URL.Query().Get("status")
		if status != "" && !model.ValidTaskStatus(status) {
			writeError(w, http.StatusBadRequest, "status must be todo, in-progress or done")
			return
		}
		tasks, err := s.store.ListTasks(r.Context(), status)
		if err != nil {
			s.logger.Error().Err(err).Msg("list tasks")
			writeError(w, http.StatusInternalServerError, "failed to list tasks")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})

	case http.MethodPost:
		var req CreateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Title == "" {
			writeError(w, http.StatusBadRequest, "title is required")
			return
		}
		if req.Priority == "" {
			req.Priority = model.PriorityMedium
		}
		if !model.ValidTaskPriority(req.Priority) {
			writeError(w, http.StatusBadRequest, "priority must be low, medium or high")
			return
		}
		if req.DueDate != "" {
			if _, err := parseDate(req.DueDate); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}

		task := &model.Task{
			Title:       req.Title,
			Description: req.Description,
			Status:      model.TaskTodo,
			Priority:    req.Priority,
			AssigneeID:  req.AssigneeID,
			CreatedBy:   actor(r).Email,
			DueDate:     req.DueDate,
			Notes:       req.Notes,
		}
		if err := s.store.CreateTask(r.Context(), task); err != nil {
			s.logger.Error().Err(err).Msg("create task")
			writeError(w, http.StatusInternalServerError, "failed to create task")
			return
		}
		writeJSON(w, http.StatusCreated, task)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleTaskByID serves PATCH and DELETE /api/tasks/{id}.
func (s *HTTPServer) handleTaskByID(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("task")

	id := strings.TrimPrefix(r.URL.Path, "/api/tasks/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "invalid path")
		return
	}

	switch r.Method {
	case http.MethodPatch:
		task, err := s.store.GetTask(r.Context(), id)
		if err != nil {
			s.logger.Error().Err(err).Msg("get task")
			writeError(w, http.StatusInternalServerError, "failed to load task")
			return
		}
		if task == nil {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}

		var req UpdateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Title != nil {
			if *req.Title == "" {
				writeError(w, http.StatusBadRequest, "title cannot be empty")
				return
			}
			task.Title = *req.Title
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.Status != nil {
			if !model.ValidTaskStatus(*req.Status) {
				writeError(w, http.StatusBadRequest, "status must be todo, in-progress or done")
				return
			}
			task.Status = *req.Status
		}
		if req.Priority != nil {
			if !model.ValidTaskPriority(*req.Priority) {
				writeError(w, http.StatusBadRequest, "priority must be low, medium or high")
				return
			}
			task.Priority = *req.Priority
		}
		if req.AssigneeID != nil {
			task.AssigneeID = *req.AssigneeID
		}
		if req.DueDate != nil {
			if *req.DueDate != "" {
				if _, err := parseDate(*req.DueDate); err != nil {
					writeError(w, http.StatusBadRequest, err.Error())
					return
				}
			}
			task.DueDate = *req.DueDate
		}
		if req.Notes != nil {
			task.Notes = *req.Notes
		}

		if err := s.store.UpdateTask(r.Context(), task); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "task not found")
				return
			}
			s.logger.Error().Err(err).Msg("update task")
			writeError(w, http.StatusInternalServerError, "failed to update task")
			return
		}
		writeJSON(w, http.StatusOK, task)

	case http.MethodDelete:
		if err := s.store.DeleteTask(r.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "task not found")
				return
			}
			s.logger.Error().Err(err).Msg("delete task")
			writeError(w, http.StatusInternalServerError, "failed to delete task")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
