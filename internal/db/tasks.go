package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"shiftmaster/internal/model"
)

// CreateTask inserts a new task board card. A missing id gets a fresh UUID.
func (db *DB) CreateTask(ctx context.Context, t *model.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, description, status, priority, assignee_id,
		 created_by, due_date, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, t.Status, t.Priority, t.AssigneeID,
		t.CreatedBy, t.DueDate, t.Notes,
	)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// GetTask returns one task by id, or nil when absent.
func (db *DB) GetTask(ctx context.Context, id string) (*model.Task, error) {
	row := db.QueryRowContext(ctx, selectTask+` WHERE id = ?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// ListTasks returns the board, optionally filtered by status, newest first.
func (db *DB) ListTasks(ctx context.Context, status string) ([]*model.Task, error) {
	query := selectTask
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// UpdateTask rewrites a task's mutable fields.
func (db *DB) UpdateTask(ctx context.Context, t *model.Task) error {
	res, err := db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, status = ?, priority = ?,
		 assignee_id = ?, due_date = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		t.Title, t.Description, t.Status, t.Priority, t.AssigneeID, t.DueDate, t.Notes, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteTask removes a task board card.
func (db *DB) DeleteTask(ctx context.Context, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const selectTask = `SELECT id, title, description, status, priority, assignee_id,
	created_by, due_date, notes, created_at, updated_at
	FROM tasks`

func scanTask(row rowScanner) (*model.Task, error) {
	var t model.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&t.AssigneeID, &t.CreatedBy, &t.DueDate, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
