// Package api exposes the roster over HTTP/JSON. Handlers validate input,
// call the store and the schedule engine, and map failures to status codes;
// authentication sits in front of the service and only reaches us as the
// X-User-ID / X-User-Email headers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"shiftmaster/internal/db"
	"shiftmaster/internal/events"
	"shiftmaster/internal/model"
	"shiftmaster/internal/schedule"
)

// AttendanceScanner extracts attendance records from a sheet photo.
type AttendanceScanner interface {
	Extract(ctx context.Context, imageData []byte, mimeType string) ([]model.ScannedRecord, error)
}

// Config carries the engine parameters the handlers need.
type Config struct {
	Policy            schedule.DayPolicy
	Rules             schedule.RuleConfig
	RoundingTolerance int
	DefaultWeeklyFund float64
}

// HTTPServer serves the roster API.
type HTTPServer struct {
	store   *db.DB
	scanner AttendanceScanner // nil disables the attendance endpoints
	bus     *events.EventBus
	cfg     Config
	logger  zerolog.Logger
}

// NewHTTPServer wires the API against its collaborators.
func NewHTTPServer(store *db.DB, scanner AttendanceScanner, bus *events.EventBus, cfg Config, logger zerolog.Logger) *HTTPServer {
	if cfg.RoundingTolerance <= 0 {
		cfg.RoundingTolerance = schedule.DefaultRoundingTolerance
	}
	if cfg.DefaultWeeklyFund <= 0 {
		cfg.DefaultWeeklyFund = 40
	}
	return &HTTPServer{
		store:   store,
		scanner: scanner,
		bus:     bus,
		cfg:     cfg,
		logger:  logger.With().Str("component", "api").Logger(),
	}
}

// Handler builds the route table.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/employees", s.handleEmployees)
	mux.HandleFunc("/api/employees/", s.handleEmployeeByID)
	mux.HandleFunc("/api/shifts", s.handleShifts)
	mux.HandleFunc("/api/shifts/", s.handleShiftByID)
	mux.HandleFunc("/api/market", s.handleMarket)
	mux.HandleFunc("/api/tasks", s.handleTasks)
	mux.HandleFunc("/api/tasks/", s.handleTaskByID)
	mux.HandleFunc("/api/coverage", s.handleCoverage)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/definitions", s.handleDefinitions)
	mux.HandleFunc("/api/definitions/", s.handleDefinitionByCode)
	mux.HandleFunc("/api/attendance/scan", s.handleAttendanceScan)
	mux.HandleFunc("/api/attendance/apply", s.handleAttendanceApply)
	mux.HandleFunc("/api/export/timesheet", s.handleExportTimesheet)
	mux.HandleFunc("/api/export/summary", s.handleExportSummary)
	mux.HandleFunc("/api/export/calendar", s.handleExportCalendar)
	return mux
}

// Start runs the server until ctx is cancelled.
func (s *HTTPServer) Start(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info().Int("port", port).Msg("API server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// timeNow is swapped out in tests.
var timeNow = time.Now

// actor reads the acting user from the proxy-injected headers.
func actor(r *http.Request) db.Actor {
	return db.Actor{
		UserID: r.Header.Get("X-User-ID"),
		Email:  r.Header.Get("X-User-Email"),
	}
}

func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(schedule.DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format; expected YYYY-MM-DD")
	}
	return t, nil
}

func parseMonth(value string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month format; expected YYYY-MM")
	}
	return t.Year(), t.Month(), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
