package db

import (
	"context"
	"fmt"

	"shiftmaster/internal/model"
)

// ListShiftHistory returns the edit trail for one shift, oldest first.
func (db *DB) ListShiftHistory(ctx context.Context, shiftID string) ([]model.ShiftHistoryEntry, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, shift_id, user_id, user_email, action, prev_state, created_at
		 FROM shift_history WHERE shift_id = ? ORDER BY id`,
		shiftID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []model.ShiftHistoryEntry
	for rows.Next() {
		var e model.ShiftHistoryEntry
		if err := rows.Scan(&e.ID, &e.ShiftID, &e.UserID, &e.UserEmail, &e.Action, &e.PrevState, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
