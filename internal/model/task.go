package model

import "time"

// Task statuses, the three columns of the team task board.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in-progress"
	TaskDone       = "done"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidTaskStatus reports whether s is one of the board columns.
func ValidTaskStatus(s string) bool {
	return s == TaskTodo || s == TaskInProgress || s == TaskDone
}

// ValidTaskPriority reports whether p is a known priority.
func ValidTaskPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task is one card on the team task board, optionally assigned to an
// employee.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	AssigneeID  string    `json:"assignee_id,omitempty"`
	CreatedBy   string    `json:"created_by"`
	DueDate     string    `json:"due_date,omitempty"` // YYYY-MM-DD
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
