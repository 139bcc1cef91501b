// Package config resolves the configuration directory, the backing data file
// and user settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "taskman"

	// EnvPrefix is the prefix for environment overrides (TASKMAN_DATA_FILE, ...).
	EnvPrefix = "TASKMAN"

	// ConfigName is the config file name without extension.
	ConfigName = "config"

	// DataFile is the default backing file name.
	DataFile = "tasks.json"

	// HistoryFile is the readline history file name.
	HistoryFile = "history"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// DataFile is the absolute path of the JSON backing file.
	DataFile string

	// Debug enables debug logging.
	Debug bool

	// Color enables colored output.
	Color bool

	// History enables the persistent line-editor history.
	History bool
}

// New creates a Config rooted at dir with default settings.
// If dir is empty, DefaultConfigDir is used.
func New(dir string) *Config {
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:      dir,
		DataFile: filepath.Join(dir, DataFile),
		Color:    true,
		History:  true,
	}
}

// Load reads config.yaml from dir (optional) and applies TASKMAN_* environment
// overrides. If dir is empty, DefaultConfigDir is used.
func Load(dir string) (*Config, error) {
	cfg := New(dir)

	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cfg.Dir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_file", cfg.DataFile)
	v.SetDefault("debug", cfg.Debug)
	v.SetDefault("color", cfg.Color)
	v.SetDefault("history", cfg.History)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	dataFile := strings.TrimSpace(v.GetString("data_file"))
	if dataFile == "" {
		return nil, fmt.Errorf("invalid config: data_file is empty")
	}
	if !filepath.IsAbs(dataFile) {
		dataFile = filepath.Join(cfg.Dir, dataFile)
	}

	cfg.DataFile = dataFile
	cfg.Debug = v.GetBool("debug")
	cfg.Color = v.GetBool("color")
	cfg.History = v.GetBool("history")
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses TASKMAN_CONFIG_DIR, then XDG_CONFIG_HOME, then $HOME/.config.
func DefaultConfigDir() string {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// HistoryPath returns the path to the line-editor history file.
// Empty when history is disabled.
func (c *Config) HistoryPath() string {
	if !c.History {
		return ""
	}
	return filepath.Join(c.Dir, HistoryFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
