package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  path: "+filepath.Join(dir, "test.db")+"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.InDelta(t, 40, cfg.Stats.DefaultWeeklyFund, 1e-9)
	assert.Equal(t, 15, cfg.RoundingTolerance())
}

func TestLoadEnvExpansion(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "secret-key")
	path := writeConfig(t, "gemini:\n  api_key: ${TEST_GEMINI_KEY}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", cfg.Gemini.APIKey)
}

func TestDayPolicyOverride(t *testing.T) {
	path := writeConfig(t, `
schedule:
  long_days: ["Tuesday", "Thursday"]
  long_close: "20:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	policy, err := cfg.DayPolicy()
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Tuesday, time.Thursday}, policy.LongDays)
	assert.Equal(t, "20:00", policy.LongClose)
	// Unset fields keep their defaults.
	assert.Equal(t, "09:00", policy.OpeningTime)
	assert.Equal(t, "18:00", policy.StandardClose)
}

func TestDayPolicyRejectsUnknownWeekday(t *testing.T) {
	path := writeConfig(t, "schedule:\n  long_days: [\"Funday\"]\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.DayPolicy()
	assert.Error(t, err)
}

func TestRuleConfigOverride(t *testing.T) {
	path := writeConfig(t, "rules:\n  min_rest_minutes: 720\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	rules := cfg.RuleConfig()
	assert.Equal(t, 720, rules.MinRestMinutes)
	assert.Equal(t, 360, rules.BreakRequiredAfterMinutes)
	assert.Equal(t, 30, rules.MinBreakMinutes)
}
