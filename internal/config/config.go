package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/idilsaglam/packlist/internal/model"
)

// EnvPrefix prefixes environment overrides, e.g. PACKLIST_UI_THEME.
const EnvPrefix = "PACKLIST"

// Config holds all application configuration
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	Theme       string `mapstructure:"theme"`        // classic, neon or mono
	DefaultSort string `mapstructure:"default_sort"` // input, description or packed
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:       "classic",
			DefaultSort: model.SortInput.String(),
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "info",
		},
	}
}

// SortMode parses UI.DefaultSort.
func (c *Config) SortMode() (model.SortMode, error) {
	return model.ParseSortMode(c.UI.DefaultSort)
}

func stateHome() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

func defaultLogPath() string {
	return filepath.Join(stateHome(), "packlist", "packlist.log")
}

// DefaultConfigDir returns the directory searched for config.yaml.
func DefaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "packlist")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "packlist")
}

// Load reads configuration from path, or from config.yaml in the default
// config dir and the working directory when path is empty. A missing file is
// not an error. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("ui.theme", cfg.UI.Theme)
	v.SetDefault("ui.default_sort", cfg.UI.DefaultSort)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if _, err := cfg.SortMode(); err != nil {
		return nil, fmt.Errorf("ui.default_sort: %w", err)
	}
	return cfg, nil
}
