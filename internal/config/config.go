package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"shiftmaster/internal/schedule"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Redis struct {
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Gemini struct {
		APIKey          string `yaml:"api_key"`
		Model           string `yaml:"model"`
		CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	} `yaml:"gemini"`

	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   int64  `yaml:"chat_id"`
	} `yaml:"telegram"`

	Schedule struct {
		LongDays           []string `yaml:"long_days"`
		OpeningTime        string   `yaml:"opening_time"`
		StandardClose      string   `yaml:"standard_close"`
		LongClose          string   `yaml:"long_close"`
		AfternoonStart     string   `yaml:"afternoon_start"`
		LongAfternoonStart string   `yaml:"long_afternoon_start"`
	} `yaml:"schedule"`

	Rules struct {
		BreakRequiredAfterMinutes int `yaml:"break_required_after_minutes"`
		MinBreakMinutes           int `yaml:"min_break_minutes"`
		MinRestMinutes            int `yaml:"min_rest_minutes"`
	} `yaml:"rules"`

	Attendance struct {
		RoundingToleranceMinutes int `yaml:"rounding_tolerance_minutes"`
	} `yaml:"attendance"`

	Stats struct {
		DefaultWeeklyFund float64 `yaml:"default_weekly_fund"`
	} `yaml:"stats"`

	Monitoring struct {
		HealthCheckPort   int  `yaml:"health_check_port"`
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port"`
	} `yaml:"monitoring"`
}

// Load reads the YAML config at path, falling back to configs/config.yaml.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "configs/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/shiftmaster.db"
	}
	if cfg.Stats.DefaultWeeklyFund <= 0 {
		cfg.Stats.DefaultWeeklyFund = 40
	}

	if err = os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DayPolicy builds the schedule policy, filling unset fields from the
// defaults so partial configs stay valid.
func (c *Config) DayPolicy() (schedule.DayPolicy, error) {
	policy := schedule.DefaultDayPolicy()
	if len(c.Schedule.LongDays) > 0 {
		days := make([]time.Weekday, 0, len(c.Schedule.LongDays))
		for _, name := range c.Schedule.LongDays {
			d, err := parseWeekday(name)
			if err != nil {
				return schedule.DayPolicy{}, err
			}
			days = append(days, d)
		}
		policy.LongDays = days
	}
	if c.Schedule.OpeningTime != "" {
		policy.OpeningTime = c.Schedule.OpeningTime
	}
	if c.Schedule.StandardClose != "" {
		policy.StandardClose = c.Schedule.StandardClose
	}
	if c.Schedule.LongClose != "" {
		policy.LongClose = c.Schedule.LongClose
	}
	if c.Schedule.AfternoonStart != "" {
		policy.AfternoonStart = c.Schedule.AfternoonStart
	}
	if c.Schedule.LongAfternoonStart != "" {
		policy.LongAfternoonStart = c.Schedule.LongAfternoonStart
	}
	return policy, nil
}

// RuleConfig builds the validator thresholds, defaulting unset values.
func (c *Config) RuleConfig() schedule.RuleConfig {
	rules := schedule.DefaultRuleConfig()
	if c.Rules.BreakRequiredAfterMinutes > 0 {
		rules.BreakRequiredAfterMinutes = c.Rules.BreakRequiredAfterMinutes
	}
	if c.Rules.MinBreakMinutes > 0 {
		rules.MinBreakMinutes = c.Rules.MinBreakMinutes
	}
	if c.Rules.MinRestMinutes > 0 {
		rules.MinRestMinutes = c.Rules.MinRestMinutes
	}
	return rules
}

// RoundingTolerance returns the attendance rounding window in minutes.
func (c *Config) RoundingTolerance() int {
	if c.Attendance.RoundingToleranceMinutes > 0 {
		return c.Attendance.RoundingToleranceMinutes
	}
	return schedule.DefaultRoundingTolerance
}

// ScannerCacheTTL returns how long extraction results stay cached.
func (c *Config) ScannerCacheTTL() time.Duration {
	if c.Gemini.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Gemini.CacheTTLSeconds) * time.Second
}

func parseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if name == d.String() {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}
