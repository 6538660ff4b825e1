package db

import (
	"context"
	"database/sql"
	"fmt"

	"shiftmaster/internal/model"
)

// CreateEmployee inserts a new employee.
func (db *DB) CreateEmployee(ctx context.Context, e *model.Employee) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO employees (id, name, role, email, weekly_fund) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Role, e.Email, e.WeeklyFund,
	)
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// GetEmployee returns one employee by id, or nil when absent.
func (db *DB) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, name, role, email, weekly_fund, created_at, updated_at
		 FROM employees WHERE id = ?`, id)

	e, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// ListEmployees returns all employees ordered by name.
func (db *DB) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, role, email, weekly_fund, created_at, updated_at
		 FROM employees ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []*model.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// UpdateEmployee updates name, role, email and weekly fund.
func (db *DB) UpdateEmployee(ctx context.Context, e *model.Employee) error {
	res, err := db.ExecContext(ctx,
		`UPDATE employees SET name = ?, role = ?, email = ?, weekly_fund = ?,
		 updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		e.Name, e.Role, e.Email, e.WeeklyFund, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*model.Employee, error) {
	var e model.Employee
	var email sql.NullString
	if err := row.Scan(&e.ID, &e.Name, &e.Role, &email, &e.WeeklyFund, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Email = email.String
	return &e, nil
}
