package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/codecommenter/internal/lang"
	"github.com/blackwell-systems/codecommenter/internal/suggest"
)

// Config is the top-level codecommenter configuration.
type Config struct {
	Analysis Analysis `mapstructure:"analysis"`
	Output   Output   `mapstructure:"output"`
	Server   Server   `mapstructure:"server"`
	Scan     Scan     `mapstructure:"scan"`
	Watch    Watch    `mapstructure:"watch"`
	Log      Log      `mapstructure:"log"`
}

// Analysis controls the engine boundary.
type Analysis struct {
	Latency   time.Duration `mapstructure:"latency"`
	Numbering string        `mapstructure:"numbering"`
	Language  string        `mapstructure:"language"`
}

// Output defines terminal output preferences.
type Output struct {
	Color     bool   `mapstructure:"color"`
	Highlight bool   `mapstructure:"highlight"`
	Style     string `mapstructure:"style"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string `mapstructure:"addr"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

// Scan configures directory scans.
type Scan struct {
	Workers      int      `mapstructure:"workers"`
	MaxFileBytes int64    `mapstructure:"max_file_bytes"`
	Extensions   []string `mapstructure:"extensions"`
}

// Watch configures the file watcher.
type Watch struct {
	Interval time.Duration `mapstructure:"interval"`
}

// Log configures logging.
type Log struct {
	Level string `mapstructure:"level"`
}

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("invalid config")

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location),
// applies environment overrides and defaults, and validates the result.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("analysis.latency", DefaultAnalysis.Latency)
	v.SetDefault("analysis.numbering", DefaultAnalysis.Numbering)
	v.SetDefault("analysis.language", DefaultAnalysis.Language)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.highlight", DefaultOutput.Highlight)
	v.SetDefault("output.style", DefaultOutput.Style)
	v.SetDefault("server.addr", DefaultServer.Addr)
	v.SetDefault("server.max_body_bytes", DefaultServer.MaxBodyBytes)
	v.SetDefault("scan.workers", DefaultScan.Workers)
	v.SetDefault("scan.max_file_bytes", DefaultScan.MaxFileBytes)
	v.SetDefault("scan.extensions", DefaultScan.Extensions)
	v.SetDefault("watch.interval", DefaultWatch.Interval)
	v.SetDefault("log.level", DefaultLog.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.SetConfigFile(filepath.Join(ConfigDir(), DefaultConfigFile))
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be expressed as viper defaults.
func (c *Config) Validate() error {
	if c.Analysis.Latency < 0 {
		return fmt.Errorf("%w: analysis.latency must not be negative, got %s", ErrInvalid, c.Analysis.Latency)
	}
	if _, err := suggest.ParseNumbering(c.Analysis.Numbering); err != nil {
		return fmt.Errorf("%w: analysis.numbering: %w", ErrInvalid, err)
	}
	if c.Analysis.Language != "" {
		if _, err := lang.ParseLabel(c.Analysis.Language); err != nil {
			return fmt.Errorf("%w: analysis.language: %w", ErrInvalid, err)
		}
	}
	if c.Scan.Workers < 1 {
		return fmt.Errorf("%w: scan.workers must be at least 1, got %d", ErrInvalid, c.Scan.Workers)
	}
	if c.Watch.Interval <= 0 {
		return fmt.Errorf("%w: watch.interval must be positive, got %s", ErrInvalid, c.Watch.Interval)
	}
	return nil
}

// Numbering returns the parsed suggestion numbering policy.
func (c *Config) Numbering() suggest.Numbering {
	n, err := suggest.ParseNumbering(c.Analysis.Numbering)
	if err != nil {
		return suggest.NumberingFixed
	}
	return n
}

// Language returns the configured language override, or "" for automatic
// classification.
func (c *Config) Language() lang.Label {
	if c.Analysis.Language == "" {
		return ""
	}
	l, err := lang.ParseLabel(c.Analysis.Language)
	if err != nil {
		return ""
	}
	return l
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
