package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	AppEnv   string         `mapstructure:"app_env"`
	Database DatabaseConfig `mapstructure:"database"`
	Backup   BackupConfig   `mapstructure:"backup"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Report   ReportConfig   `mapstructure:"report"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type BackupConfig struct {
	Dir      string        `mapstructure:"dir"`
	Interval time.Duration `mapstructure:"interval"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ReportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

// LoadConfigFromEnv builds a config entirely from environment variables,
// used when no config file is present next to the binary.
func LoadConfigFromEnv() *Config {
	return &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Database: DatabaseConfig{
			Path: getEnv("CASHBOOK_DB_PATH", "cashbook.db"),
		},
		Backup: BackupConfig{
			Dir:      getEnv("CASHBOOK_BACKUP_DIR", "backups"),
			Interval: time.Hour,
		},
		Logging: LoggingConfig{
			Level:  getEnv("CASHBOOK_LOG_LEVEL", "info"),
			Format: getEnv("CASHBOOK_LOG_FORMAT", "text"),
		},
		Report: ReportConfig{
			OutputDir: getEnv("CASHBOOK_REPORT_DIR", "reports"),
		},
	}
}

func (c *Config) Validate() error {
	var errs []string

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("database config: %v", err))
	}

	if err := c.Backup.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("backup config: %v", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

func (c *BackupConfig) Validate() error {
	if c.Dir == "" {
		return errors.New("dir is required")
	}
	if c.Interval <= 0 {
		return errors.New("interval must be positive")
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Level)
	}
	switch c.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.Format)
	}
	return nil
}
