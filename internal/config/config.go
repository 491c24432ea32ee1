// Package config resolves tally settings from defaults, an optional YAML
// file, a .env file and TALLY_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/tally/internal/stats"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Backend string

const (
	BackendCSV    Backend = "csv"
	BackendSQLite Backend = "sqlite"
)

type Config struct {
	Backend      Backend `yaml:"backend"`
	LogFile      string  `yaml:"log_file"`
	DBPath       string  `yaml:"db_path"`
	StreakAnchor string  `yaml:"streak_anchor"`
	TodayGrace   bool    `yaml:"today_grace"`
	DailyTarget  int     `yaml:"daily_target"`
	LogUseCases  bool    `yaml:"log_use_cases"`
}

// Default returns settings rooted at dataDir (usually ~/.tally).
func Default(dataDir string) Config {
	return Config{
		Backend:      BackendCSV,
		LogFile:      filepath.Join(dataDir, "tasks.csv"),
		DBPath:       filepath.Join(dataDir, "tally.db"),
		StreakAnchor: string(stats.AnchorToday),
		TodayGrace:   true,
		DailyTarget:  1,
	}
}

// Load builds the effective configuration. getenv is injectable for tests;
// pass os.Getenv in production.
func Load(getenv func(string) string) (Config, error) {
	dataDir := getenv("TALLY_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tally")
	}
	cfg := Default(dataDir)

	path := getenv("TALLY_CONFIG")
	if path == "" {
		path = filepath.Join(dataDir, "config.yaml")
	}
	if err := cfg.mergeFile(path); err != nil {
		return Config{}, err
	}

	if err := cfg.mergeEnv(getenv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// LoadDotEnv copies variables from a .env file into the process
// environment without overriding ones already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) error {
	if v := getenv("TALLY_BACKEND"); v != "" {
		c.Backend = Backend(v)
	}
	if v := getenv("TALLY_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := getenv("TALLY_DB"); v != "" {
		c.DBPath = v
	}
	if v := getenv("TALLY_STREAK_ANCHOR"); v != "" {
		c.StreakAnchor = v
	}
	if v := getenv("TALLY_STREAK_GRACE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TALLY_STREAK_GRACE: %w", err)
		}
		c.TodayGrace = b
	}
	if v := getenv("TALLY_DAILY_TARGET"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TALLY_DAILY_TARGET: %w", err)
		}
		c.DailyTarget = n
	}
	if v := getenv("TALLY_LOG_USE_CASES"); v != "" {
		c.LogUseCases, _ = strconv.ParseBool(v)
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendCSV, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendCSV, BackendSQLite)
	}
	if _, err := stats.ParseStreakAnchor(c.StreakAnchor); err != nil {
		return err
	}
	if c.DailyTarget <= 0 {
		return fmt.Errorf("daily_target must be positive, got %d", c.DailyTarget)
	}
	return nil
}

// StreakPolicy converts the streak settings. Call after Validate.
func (c Config) StreakPolicy() stats.StreakPolicy {
	anchor, _ := stats.ParseStreakAnchor(c.StreakAnchor)
	return stats.StreakPolicy{Anchor: anchor, TodayGrace: c.TodayGrace}
}
