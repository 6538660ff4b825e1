package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"shiftmaster/internal/model"
)

// History actions recorded on shift writes.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionOffered = "offered"
	ActionClaimed = "claimed"
	ActionDeleted = "deleted"
)

// Actor identifies who performed a write, for the history trail.
type Actor struct {
	UserID string
	Email  string
}

// CreateShift inserts a shift and records the creation in the history
// trail within one transaction. A missing id gets a fresh UUID.
func (db *DB) CreateShift(ctx context.Context, s *model.Shift, actor Actor) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO shifts (id, employee_id, date, confirmed_type, start_time, end_time,
		 break_duration, note, is_weekend, is_offered, is_audit, manually_edited)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.EmployeeID, s.Date, s.ConfirmedType, s.StartTime, s.EndTime,
		s.BreakDuration, s.Note, s.IsWeekend, s.IsOffered, s.IsAudit, s.ManuallyEdited,
	)
	if err != nil {
		return fmt.Errorf("create shift: %w", err)
	}

	if err := appendHistory(ctx, tx, s.ID, actor, ActionCreated, nil); err != nil {
		return err
	}
	return tx.Commit()
}

// GetShift returns one shift by id, or nil when absent.
func (db *DB) GetShift(ctx context.Context, id string) (*model.Shift, error) {
	row := db.QueryRowContext(ctx, selectShift+` WHERE id = ?`, id)
	s, err := scanShift(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return s, nil
}

// GetShiftForDay returns the employee's shift on a date within one plan,
// or nil when there is none.
func (db *DB) GetShiftForDay(ctx context.Context, employeeID, date string, audit bool) (*model.Shift, error) {
	row := db.QueryRowContext(ctx,
		selectShift+` WHERE employee_id = ? AND date = ? AND is_audit = ?`,
		employeeID, date, audit)
	s, err := scanShift(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get shift for day: %w", err)
	}
	return s, nil
}

// ListShiftsForMonth returns shifts in a month (YYYY-MM) of one plan,
// optionally filtered by employee, ordered by date.
func (db *DB) ListShiftsForMonth(ctx context.Context, month, employeeID string, audit bool) ([]*model.Shift, error) {
	query := selectShift + ` WHERE date LIKE ? AND is_audit = ?`
	args := []any{month + "-%", audit}
	if employeeID != "" {
		query += ` AND employee_id = ?`
		args = append(args, employeeID)
	}
	query += ` ORDER BY date, employee_id`
	return db.listShifts(ctx, query, args...)
}

// ListShiftsForDate returns all shifts of one plan on a date.
func (db *DB) ListShiftsForDate(ctx context.Context, date string, audit bool) ([]*model.Shift, error) {
	return db.listShifts(ctx,
		selectShift+` WHERE date = ? AND is_audit = ? ORDER BY employee_id`,
		date, audit)
}

// ListOfferedShifts returns the live-plan shifts currently on the swap market.
func (db *DB) ListOfferedShifts(ctx context.Context) ([]*model.Shift, error) {
	return db.listShifts(ctx,
		selectShift+` WHERE is_offered = 1 AND is_audit = 0 ORDER BY date`)
}

// UpdateShift rewrites a shift's mutable fields, snapshotting the previous
// state into the history trail in the same transaction.
func (db *DB) UpdateShift(ctx context.Context, s *model.Shift, actor Actor) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	prev, err := getShiftTx(ctx, tx, s.ID)
	if err != nil {
		return err
	}
	if prev == nil {
		return sql.ErrNoRows
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE shifts SET confirmed_type = ?, start_time = ?, end_time = ?,
		 break_duration = ?, note = ?, is_offered = ?, manually_edited = ?,
		 updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		s.ConfirmedType, s.StartTime, s.EndTime, s.BreakDuration, s.Note,
		s.IsOffered, s.ManuallyEdited, s.ID,
	)
	if err != nil {
		return fmt.Errorf("update shift: %w", err)
	}

	if err := appendHistory(ctx, tx, s.ID, actor, ActionUpdated, prev); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteShift removes a shift, keeping its trail with a final deletion entry.
func (db *DB) DeleteShift(ctx context.Context, id string, actor Actor) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	prev, err := getShiftTx(ctx, tx, id)
	if err != nil {
		return err
	}
	if prev == nil {
		return sql.ErrNoRows
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	if err := appendHistory(ctx, tx, id, actor, ActionDeleted, prev); err != nil {
		return err
	}
	return tx.Commit()
}

// SetOffered flips the swap-market flag on a live shift.
func (db *DB) SetOffered(ctx context.Context, id string, offered bool, actor Actor) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	prev, err := getShiftTx(ctx, tx, id)
	if err != nil {
		return err
	}
	if prev == nil {
		return sql.ErrNoRows
	}
	if prev.IsAudit {
		return fmt.Errorf("audit-plan shifts cannot be offered")
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE shifts SET is_offered = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		offered, id); err != nil {
		return fmt.Errorf("offer shift: %w", err)
	}
	if err := appendHistory(ctx, tx, id, actor, ActionOffered, prev); err != nil {
		return err
	}
	return tx.Commit()
}

// ClaimShift reassigns an offered shift to the claiming employee. The old
// record is removed and a fresh one created under a new id, so the original
// owner's trail stays attached to the original id.
func (db *DB) ClaimShift(ctx context.Context, id, newEmployeeID string, actor Actor) (*model.Shift, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	prev, err := getShiftTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, sql.ErrNoRows
	}
	if prev.IsAudit {
		return nil, fmt.Errorf("audit-plan shifts cannot be claimed")
	}
	if !prev.IsOffered {
		return nil, fmt.Errorf("shift %s is not offered", id)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("claim shift: %w", err)
	}

	claimed := *prev
	claimed.ID = uuid.NewString()
	claimed.EmployeeID = newEmployeeID
	claimed.IsOffered = false

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO shifts (id, employee_id, date, confirmed_type, start_time, end_time,
		 break_duration, note, is_weekend, is_offered, is_audit, manually_edited)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0)`,
		claimed.ID, claimed.EmployeeID, claimed.Date, claimed.ConfirmedType,
		claimed.StartTime, claimed.EndTime, claimed.BreakDuration, claimed.Note,
		claimed.IsWeekend, claimed.IsOffered, claimed.IsAudit,
	); err != nil {
		return nil, fmt.Errorf("claim shift: %w", err)
	}

	if err := appendHistory(ctx, tx, claimed.ID, actor, ActionClaimed, prev); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &claimed, nil
}

// UpsertAuditCopy mirrors a live-plan write into the authoritative audit
// plan. A copy an admin has edited directly carries manually_edited and is
// left untouched; the live plan and the audit plan diverge from that point.
func (db *DB) UpsertAuditCopy(ctx context.Context, s *model.Shift) error {
	copyShift := *s
	copyShift.ID = uuid.NewString()
	copyShift.IsAudit = true
	copyShift.IsOffered = false

	_, err := db.ExecContext(ctx,
		`INSERT INTO shifts (id, employee_id, date, confirmed_type, start_time, end_time,
		 break_duration, note, is_weekend, is_offered, is_audit, manually_edited)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 1, 0)
		 ON CONFLICT(employee_id, date, is_audit) DO UPDATE SET
		 confirmed_type = excluded.confirmed_type,
		 start_time = excluded.start_time,
		 end_time = excluded.end_time,
		 break_duration = excluded.break_duration,
		 note = excluded.note,
		 updated_at = CURRENT_TIMESTAMP
		 WHERE shifts.manually_edited = 0`,
		copyShift.ID, copyShift.EmployeeID, copyShift.Date, copyShift.ConfirmedType,
		copyShift.StartTime, copyShift.EndTime, copyShift.BreakDuration,
		copyShift.Note, copyShift.IsWeekend,
	)
	if err != nil {
		return fmt.Errorf("upsert audit copy: %w", err)
	}
	return nil
}

const selectShift = `SELECT id, employee_id, date, confirmed_type, start_time, end_time,
	break_duration, note, is_weekend, is_offered, is_audit, manually_edited,
	created_at, updated_at
	FROM shifts`

func (db *DB) listShifts(ctx context.Context, query string, args ...any) ([]*model.Shift, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []*model.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func getShiftTx(ctx context.Context, tx *sql.Tx, id string) (*model.Shift, error) {
	row := tx.QueryRowContext(ctx, selectShift+` WHERE id = ?`, id)
	s, err := scanShift(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return s, nil
}

func scanShift(row rowScanner) (*model.Shift, error) {
	var s model.Shift
	err := row.Scan(&s.ID, &s.EmployeeID, &s.Date, &s.ConfirmedType, &s.StartTime,
		&s.EndTime, &s.BreakDuration, &s.Note, &s.IsWeekend, &s.IsOffered,
		&s.IsAudit, &s.ManuallyEdited, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func appendHistory(ctx context.Context, tx *sql.Tx, shiftID string, actor Actor, action string, prev *model.Shift) error {
	prevState := ""
	if prev != nil {
		data, err := json.Marshal(prev)
		if err != nil {
			return fmt.Errorf("marshal prev state: %w", err)
		}
		prevState = string(data)
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO shift_history (shift_id, user_id, user_email, action, prev_state)
		 VALUES (?, ?, ?, ?, ?)`,
		shiftID, actor.UserID, actor.Email, action, prevState,
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}
