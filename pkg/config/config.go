package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ehsaniara/fmjob/pkg/constants"
	"github.com/ehsaniara/fmjob/pkg/errors"
	"github.com/ehsaniara/fmjob/pkg/logger"
	"github.com/ehsaniara/fmjob/pkg/semver"
)

// Config holds the complete fmjob runtime configuration
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Pool     PoolConfig     `yaml:"pool" json:"pool"`
	Loop     LoopConfig     `yaml:"loop" json:"loop"`
	Jobs     JobsConfig     `yaml:"jobs" json:"jobs"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging"`
	Settings SettingsConfig `yaml:"settings" json:"settings"`
}

// PoolConfig sizes the worker pool used by RunAsync jobs
type PoolConfig struct {
	Size        int           `yaml:"size" json:"size"`
	StopTimeout time.Duration `yaml:"stop_timeout" json:"stop_timeout"`
}

// LoopConfig tunes the owner event loop
type LoopConfig struct {
	MaxPendingWarn int `yaml:"max_pending_warn" json:"max_pending_warn"`
}

type JobsConfig struct {
	DefaultTimeout time.Duration `yaml:"default_timeout" json:"default_timeout"` // zero means no deadline
	OnError        string        `yaml:"on_error" json:"on_error"`               // ask, continue or abort
}

type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Output string `yaml:"output" json:"output"` // stderr, stdout or a file path
}

// SettingsConfig points at the persisted user settings file
type SettingsConfig struct {
	Path string `yaml:"path" json:"path"`
}

// DefaultConfig provides sensible defaults
var DefaultConfig = Config{
	Version: "1.0",
	Pool: PoolConfig{
		Size:        4,
		StopTimeout: 10 * time.Second,
	},
	Loop: LoopConfig{
		MaxPendingWarn: 1024,
	},
	Jobs: JobsConfig{
		DefaultTimeout: 0,
		OnError:        "ask",
	},
	Logging: LoggingConfig{
		Level:  "INFO",
		Format: "text",
		Output: "stderr",
	},
	Settings: SettingsConfig{
		Path: DefaultSettingsPath(),
	},
}

// SupportedMajor is the configuration file format this build reads.
const SupportedMajor = 1

var validOnError = map[string]bool{"ask": true, "continue": true, "abort": true}

// DefaultSettingsPath is $XDG_CONFIG_HOME/fmjob/settings.yml, falling back to
// ~/.config.
func DefaultSettingsPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "fmjob", constants.SettingsFileName)
}

// LoadConfig loads the configuration from path, or from the first file found
// in these locations when path is empty:
//
//  1. Path from FMJOB_CONFIG_PATH environment variable
//  2. ./fmjob.yml
//  3. ~/.config/fmjob/fmjob.yml
//  4. /etc/fmjob/fmjob.yml
//
// Environment overrides (FMJOB_LOG_LEVEL, FMJOB_LOG_FORMAT, FMJOB_POOL_SIZE)
// are applied on top and the result is validated.
// Returns (config, configPath, error) - configPath indicates source of configuration.
func LoadConfig(path string) (*Config, string, error) {
	config := DefaultConfig

	source, err := loadFromFile(&config, path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config file: %w", err)
	}

	if err := applyEnv(&config); err != nil {
		return nil, "", err
	}

	if e := config.Validate(); e != nil {
		return nil, "", fmt.Errorf("configuration validation failed: %w", e)
	}

	return &config, source, nil
}

func loadFromFile(config *Config, explicit string) (string, error) {
	configPaths := []string{
		os.Getenv("FMJOB_CONFIG_PATH"),
		"./" + constants.ConfigFileName,
		filepath.Join(os.Getenv("HOME"), ".config", "fmjob", constants.ConfigFileName),
		filepath.Join("/etc", "fmjob", constants.ConfigFileName),
	}
	if explicit != "" {
		// an explicit path must exist
		configPaths = []string{explicit}
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.WrapFilesystemError(explicit, "stat", err)
		}
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.WrapFilesystemError(path, "read", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return "", fmt.Errorf("failed to parse config file %s: %w", path, err)
		}

		return path, nil
	}

	return "built-in defaults (no config file found)", nil
}

func applyEnv(config *Config) error {
	if val := os.Getenv("FMJOB_LOG_LEVEL"); val != "" {
		config.Logging.Level = val
	}
	if val := os.Getenv("FMJOB_LOG_FORMAT"); val != "" {
		config.Logging.Format = val
	}
	if val := os.Getenv("FMJOB_POOL_SIZE"); val != "" {
		size, err := strconv.Atoi(val)
		if err != nil {
			return errors.WrapConfigError("pool", "size", fmt.Errorf("FMJOB_POOL_SIZE=%q: %w", val, errors.ErrInvalidConfig))
		}
		config.Pool.Size = size
	}
	return nil
}

// Validate returns an error describing the first invalid field.
func (c *Config) Validate() error {
	if c.Version != "" {
		v, err := semver.Parse(c.Version)
		if err != nil {
			return errors.WrapConfigError("config", "version", fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err))
		}
		if v.Major() != SupportedMajor {
			return errors.WrapConfigError("config", "version", fmt.Errorf("%w: unsupported version %s (want %d.x)", errors.ErrInvalidConfig, v, SupportedMajor))
		}
	}
	if c.Pool.Size < 0 {
		return errors.WrapConfigError("pool", "size", fmt.Errorf("%w: %d", errors.ErrInvalidConfig, c.Pool.Size))
	}
	if c.Pool.StopTimeout < 0 {
		return errors.WrapConfigError("pool", "stop_timeout", fmt.Errorf("%w: %s", errors.ErrInvalidConfig, c.Pool.StopTimeout))
	}
	if c.Loop.MaxPendingWarn < 0 {
		return errors.WrapConfigError("loop", "max_pending_warn", fmt.Errorf("%w: %d", errors.ErrInvalidConfig, c.Loop.MaxPendingWarn))
	}
	if c.Jobs.DefaultTimeout < 0 {
		return errors.WrapConfigError("jobs", "default_timeout", fmt.Errorf("%w: %s", errors.ErrInvalidConfig, c.Jobs.DefaultTimeout))
	}
	if !validOnError[strings.ToLower(c.Jobs.OnError)] {
		return errors.WrapConfigError("jobs", "on_error", fmt.Errorf("%w: %q", errors.ErrInvalidConfig, c.Jobs.OnError))
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return errors.WrapConfigError("logging", "level", fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return errors.WrapConfigError("logging", "format", fmt.Errorf("%w: %q", errors.ErrInvalidConfig, c.Logging.Format))
	}

	return nil
}

// LoggerConfig turns the logging section into a logger.Config. A file output
// is opened for appending; the returned closer must be closed when done.
func (c *Config) LoggerConfig() (logger.Config, io.Closer, error) {
	level, err := logger.ParseLevel(c.Logging.Level)
	if err != nil {
		return logger.Config{}, nil, errors.WrapConfigError("logging", "level", err)
	}

	cfg := logger.Config{Level: level, Format: strings.ToLower(c.Logging.Format)}
	switch c.Logging.Output {
	case "", "stderr":
		cfg.Output = os.Stderr
	case "stdout":
		cfg.Output = os.Stdout
	default:
		f, err := os.OpenFile(c.Logging.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, constants.DefaultFileMode)
		if err != nil {
			return logger.Config{}, nil, errors.WrapFilesystemError(c.Logging.Output, "open", err)
		}
		cfg.Output = f
		return cfg, f, nil
	}
	return cfg, nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
