package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftmaster/internal/model"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, database.CreateEmployee(context.Background(), &model.Employee{
		ID: "e1", Name: "Jana", Role: model.RoleEmployee, WeeklyFund: 40,
	}))
	require.NoError(t, database.CreateEmployee(context.Background(), &model.Employee{
		ID: "e2", Name: "Petr", Role: model.RoleAdmin, WeeklyFund: 40,
	}))
	return database
}

var testActor = Actor{UserID: "e2", Email: "petr@example.com"}

func TestShiftLifecycle(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	shift := &model.Shift{
		EmployeeID:    "e1",
		Date:          "2025-06-02",
		ConfirmedType: "C",
		StartTime:     "09:00",
		EndTime:       "19:00",
		BreakDuration: 30,
	}
	require.NoError(t, database.CreateShift(ctx, shift, testActor))
	require.NotEmpty(t, shift.ID)

	got, err := database.GetShift(ctx, shift.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "C", got.ConfirmedType)

	got.EndTime = "18:00"
	require.NoError(t, database.UpdateShift(ctx, got, testActor))

	history, err := database.ListShiftHistory(ctx, shift.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, ActionCreated, history[0].Action)
	assert.Equal(t, ActionUpdated, history[1].Action)
	assert.Contains(t, history[1].PrevState, `"19:00"`)

	require.NoError(t, database.DeleteShift(ctx, shift.ID, testActor))
	gone, err := database.GetShift(ctx, shift.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// The trail outlives the shift.
	history, err = database.ListShiftHistory(ctx, shift.ID)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestUpdateMissingShift(t *testing.T) {
	database := newTestDB(t)
	err := database.UpdateShift(context.Background(), &model.Shift{ID: "nope"}, testActor)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListShiftsForMonth(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	for _, date := range []string{"2025-06-02", "2025-06-03", "2025-07-01"} {
		require.NoError(t, database.CreateShift(ctx, &model.Shift{
			EmployeeID: "e1", Date: date, ConfirmedType: "C",
		}, testActor))
	}
	require.NoError(t, database.CreateShift(ctx, &model.Shift{
		EmployeeID: "e2", Date: "2025-06-02", ConfirmedType: "O",
	}, testActor))

	all, err := database.ListShiftsForMonth(ctx, "2025-06", "", false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := database.ListShiftsForMonth(ctx, "2025-06", "e1", false)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestClaimShift(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	shift := &model.Shift{EmployeeID: "e1", Date: "2025-06-02", ConfirmedType: "C", StartTime: "09:00", EndTime: "18:00"}
	require.NoError(t, database.CreateShift(ctx, shift, testActor))

	// Claiming an unoffered shift fails.
	_, err := database.ClaimShift(ctx, shift.ID, "e2", testActor)
	assert.Error(t, err)

	require.NoError(t, database.SetOffered(ctx, shift.ID, true, testActor))

	offered, err := database.ListOfferedShifts(ctx)
	require.NoError(t, err)
	require.Len(t, offered, 1)

	claimed, err := database.ClaimShift(ctx, shift.ID, "e2", testActor)
	require.NoError(t, err)
	assert.Equal(t, "e2", claimed.EmployeeID)
	assert.NotEqual(t, shift.ID, claimed.ID)
	assert.False(t, claimed.IsOffered)

	old, err := database.GetShift(ctx, shift.ID)
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestUpsertAuditCopy(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	live := &model.Shift{EmployeeID: "e1", Date: "2025-06-02", ConfirmedType: "C", StartTime: "09:00", EndTime: "18:00"}
	require.NoError(t, database.CreateShift(ctx, live, testActor))
	require.NoError(t, database.UpsertAuditCopy(ctx, live))

	// A second mirror of the same day updates in place.
	live.EndTime = "19:00"
	require.NoError(t, database.UpsertAuditCopy(ctx, live))

	auditShifts, err := database.ListShiftsForMonth(ctx, "2025-06", "e1", true)
	require.NoError(t, err)
	require.Len(t, auditShifts, 1)
	assert.Equal(t, "19:00", auditShifts[0].EndTime)
	assert.True(t, auditShifts[0].IsAudit)

	// Once an admin writes the audit copy directly, the mirror leaves it
	// alone.
	edited := auditShifts[0]
	edited.ConfirmedType = "R"
	edited.ManuallyEdited = true
	require.NoError(t, database.UpdateShift(ctx, edited, testActor))

	live.ConfirmedType = "O"
	require.NoError(t, database.UpsertAuditCopy(ctx, live))

	auditShifts, err = database.ListShiftsForMonth(ctx, "2025-06", "e1", true)
	require.NoError(t, err)
	require.Len(t, auditShifts, 1)
	assert.Equal(t, "R", auditShifts[0].ConfirmedType)
	assert.True(t, auditShifts[0].ManuallyEdited)
}

func TestAuditShiftsStayOffMarket(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	audit := &model.Shift{
		EmployeeID: "e1", Date: "2025-06-02", ConfirmedType: "C",
		StartTime: "09:00", EndTime: "18:00", IsAudit: true,
	}
	require.NoError(t, database.CreateShift(ctx, audit, testActor))

	err := database.SetOffered(ctx, audit.ID, true, testActor)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audit-plan")

	_, err = database.ClaimShift(ctx, audit.ID, "e2", testActor)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audit-plan")
}

func TestDefinitions(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.SeedBuiltinDefinitions(ctx))
	defs, err := database.ListDefinitions(ctx)
	require.NoError(t, err)
	assert.Len(t, defs, 11)

	// Custom code.
	require.NoError(t, database.PutDefinition(ctx, model.ShiftDefinition{
		Code: "X", StartTime: "10:00", EndTime: "16:00", BreakDuration: 15,
	}))

	// Override of a builtin survives reseeding.
	require.NoError(t, database.PutDefinition(ctx, model.ShiftDefinition{
		Code: "R", StartTime: "08:00", EndTime: "12:30",
	}))
	require.NoError(t, database.SeedBuiltinDefinitions(ctx))

	defs, err = database.ListDefinitions(ctx)
	require.NoError(t, err)
	assert.Len(t, defs, 12)
	for _, d := range defs {
		if d.Code == "R" {
			assert.Equal(t, "08:00", d.StartTime)
		}
	}

	// Reserved codes cannot be redefined.
	assert.Error(t, database.PutDefinition(ctx, model.ShiftDefinition{Code: "OFF"}))
}
