package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	Storage struct {
		Driver     string `yaml:"driver"`
		SQLitePath string `yaml:"sqlite_path"`
		FileDir    string `yaml:"file_dir"`
	} `yaml:"storage"`
	History struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"history"`
	Schedule struct {
		IncomeSpec   string `yaml:"income_spec"`
		SnapshotCron string `yaml:"snapshot_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Game struct {
		DevMode bool `yaml:"dev_mode"`
	} `yaml:"game"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults fill whatever is left empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v, ok := os.LookupEnv("HISTORY_PATH"); ok {
		cfg.History.SQLitePath = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("DEV_MODE"); v != "" {
		if dev, err := strconv.ParseBool(v); err == nil {
			cfg.Game.DevMode = dev
		}
	}

	// Defaults
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverSQLite
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "data/bubbles.db"
	}
	if cfg.Storage.FileDir == "" {
		cfg.Storage.FileDir = "data/save"
	}
	if _, set := os.LookupEnv("HISTORY_PATH"); !set && cfg.History.SQLitePath == "" {
		cfg.History.SQLitePath = "data/history.db"
	}
	if cfg.Schedule.IncomeSpec == "" {
		cfg.Schedule.IncomeSpec = "@every 1s"
	}
	if cfg.Schedule.SnapshotCron == "" {
		cfg.Schedule.SnapshotCron = "0 */5 * * * *"
	}

	return cfg, nil
}

var specParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required for the sqlite driver")
		}
	case DriverFile:
		if c.Storage.FileDir == "" {
			return fmt.Errorf("storage.file_dir is required for the file driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("storage.driver %q is not one of sqlite, file, memory", c.Storage.Driver)
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	if _, err := specParser.Parse(c.Schedule.IncomeSpec); err != nil {
		return fmt.Errorf("schedule.income_spec: %w", err)
	}
	if _, err := specParser.Parse(c.Schedule.SnapshotCron); err != nil {
		return fmt.Errorf("schedule.snapshot_cron: %w", err)
	}
	return nil
}
