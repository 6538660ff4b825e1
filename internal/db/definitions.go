package db

import (
	"context"
	"fmt"

	"shiftmaster/internal/model"
	"shiftmaster/internal/schedule"
)

// SeedBuiltinDefinitions inserts the built-in shift-type catalogue where
// missing. Custom overrides of builtin codes survive restarts: existing
// rows are left alone.
func (db *DB) SeedBuiltinDefinitions(ctx context.Context) error {
	for _, def := range schedule.BuiltinDefinitions {
		_, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO shift_definitions (code, start_time, end_time, break_duration, is_builtin)
			 VALUES (?, ?, ?, ?, 1)`,
			def.Code, def.StartTime, def.EndTime, def.BreakDuration,
		)
		if err != nil {
			return fmt.Errorf("seed definition %s: %w", def.Code, err)
		}
	}
	return nil
}

// ListDefinitions returns the effective shift-type catalogue.
func (db *DB) ListDefinitions(ctx context.Context) ([]model.ShiftDefinition, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT code, start_time, end_time, break_duration, is_builtin
		 FROM shift_definitions ORDER BY is_builtin DESC, code`)
	if err != nil {
		return nil, fmt.Errorf("list definitions: %w", err)
	}
	defer rows.Close()

	var defs []model.ShiftDefinition
	for rows.Next() {
		var d model.ShiftDefinition
		if err := rows.Scan(&d.Code, &d.StartTime, &d.EndTime, &d.BreakDuration, &d.IsBuiltin); err != nil {
			return nil, fmt.Errorf("scan definition: %w", err)
		}
		defs = append(defs, d)
	}
	return defs, rows.Err()
}

// PutDefinition creates or overrides a shift-type definition. Reserved
// leave codes cannot be redefined.
func (db *DB) PutDefinition(ctx context.Context, d model.ShiftDefinition) error {
	if model.IsLeaveCode(d.Code) {
		return fmt.Errorf("code %s is reserved", d.Code)
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO shift_definitions (code, start_time, end_time, break_duration, is_builtin)
		 VALUES (?, ?, ?, ?, 0)
		 ON CONFLICT(code) DO UPDATE SET
		 start_time = excluded.start_time,
		 end_time = excluded.end_time,
		 break_duration = excluded.break_duration,
		 updated_at = CURRENT_TIMESTAMP`,
		d.Code, d.StartTime, d.EndTime, d.BreakDuration,
	)
	if err != nil {
		return fmt.Errorf("put definition: %w", err)
	}
	return nil
}
