package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftmaster/internal/model"
)

func decodeTask(t *testing.T, data []byte) model.Task {
	t.Helper()
	var task model.Task
	require.NoError(t, json.Unmarshal(data, &task))
	return task
}

func TestTaskCreateDefaults(t *testing.T) {
	server, _ := setupServer(t)
	handler := server.Handler()

	rec := doJSON(t, handler, http.MethodPost, "/api/tasks", CreateTaskRequest{
		Title: "Order till rolls",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	task := decodeTask(t, rec.Body.Bytes())
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, model.TaskTodo, task.Status)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Equal(t, "petr@example.com", task.CreatedBy)

	rec = doJSON(t, handler, http.MethodPost, "/api/tasks", CreateTaskRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/tasks", CreateTaskRequest{
		Title: "x", Priority: "urgent",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskBoardFlow(t *testing.T) {
	server, _ := setupServer(t)
	handler := server.Handler()

	rec := doJSON(t, handler, http.MethodPost, "/api/tasks", CreateTaskRequest{
		Title: "Stocktake", Priority: model.PriorityHigh, AssigneeID: "e1", DueDate: "2025-06-15",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	taskID := decodeTask(t, rec.Body.Bytes()).ID

	rec = doJSON(t, handler, http.MethodPost, "/api/tasks", CreateTaskRequest{
		Title: "Clean the back room",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Move the first task across the board.
	status := model.TaskInProgress
	rec = doJSON(t, handler, http.MethodPatch, "/api/tasks/"+taskID, UpdateTaskRequest{
		Status: &status,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, model.TaskInProgress, decodeTask(t, rec.Body.Bytes()).Status)

	rec = doJSON(t, handler, http.MethodGet, "/api/tasks?status=in-progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Tasks []model.Task `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Tasks, 1)
	assert.Equal(t, taskID, listing.Tasks[0].ID)

	rec = doJSON(t, handler, http.MethodGet, "/api/tasks?status=blocked", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	bad := "parked"
	rec = doJSON(t, handler, http.MethodPatch, "/api/tasks/"+taskID, UpdateTaskRequest{
		Status: &bad,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, handler, http.MethodDelete, "/api/tasks/"+taskID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodDelete, "/api/tasks/"+taskID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
