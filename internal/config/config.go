// ABOUTME: Productivity configuration management backed by viper.
// ABOUTME: Handles YAML config files, PRODUCTIVITY_* env overrides, and path defaults.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/productivity/internal/storage"
	"github.com/spf13/viper"
)

const envPrefix = "PRODUCTIVITY"

// Defaults for keys that are not set in the file or environment.
const (
	DefaultLogLevel    = "info"
	DefaultListLimit   = 20
	DefaultMoodHistory = 30
)

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`

	// File is where log lines are written. Defaults to productivity.log in DataDir.
	File string `mapstructure:"file" yaml:"file,omitempty"`
}

// Config stores productivity tool configuration.
type Config struct {
	// DataDir is the root directory for data storage.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/productivity.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir,omitempty"`

	// DBPath overrides the SQLite database location inside DataDir.
	DBPath string `mapstructure:"db_path" yaml:"db_path,omitempty"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// ListLimit caps rows printed by list commands.
	ListLimit int `mapstructure:"list_limit" yaml:"list_limit"`

	// MoodHistory is how many mood entries `mood list` shows by default.
	MoodHistory int `mapstructure:"mood_history" yaml:"mood_history"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Log:         LogConfig{Level: DefaultLogLevel},
		ListLimit:   DefaultListLimit,
		MoodHistory: DefaultMoodHistory,
	}
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDBPath returns the database file path.
func (c *Config) GetDBPath() string {
	if c.DBPath != "" {
		return ExpandPath(c.DBPath)
	}
	if c.DataDir == "" {
		return storage.DefaultDBPath()
	}
	return filepath.Join(c.GetDataDir(), "productivity.db")
}

// GetLogFile returns the log file path.
func (c *Config) GetLogFile() string {
	if c.Log.File != "" {
		return ExpandPath(c.Log.File)
	}
	return filepath.Join(c.GetDataDir(), "productivity.log")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// DefaultPath returns the config file path following XDG spec.
func DefaultPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "productivity", "config.yaml")
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults make every key known to viper, which lets env vars
	// override keys that are absent from the file.
	v.SetDefault("data_dir", "")
	v.SetDefault("db_path", "")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("list_limit", DefaultListLimit)
	v.SetDefault("mood_history", DefaultMoodHistory)
	return v
}

// Load reads config from path. A missing file yields the defaults,
// still subject to environment overrides.
func Load(path string) (*Config, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = DefaultListLimit
	}
	if cfg.MoodHistory <= 0 {
		cfg.MoodHistory = DefaultMoodHistory
	}
	return cfg, nil
}

// Save writes config to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("data_dir", c.DataDir)
	v.Set("db_path", c.DBPath)
	v.Set("log.level", c.Log.Level)
	v.Set("log.file", c.Log.File)
	v.Set("list_limit", c.ListLimit)
	v.Set("mood_history", c.MoodHistory)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return os.Chmod(path, 0600)
}
