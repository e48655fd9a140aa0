package store

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where the journal lives and how chatty the app is.
type Config interface {
	BasePath() string
	LogLevel() slog.Level
}

// ConfigPathEnv overrides the directory searched for a .moodymap config file.
const ConfigPathEnv = "MOODYMAP_CONFIG_PATH"

// LoadConfig reads .moodymap.yaml from $MOODYMAP_CONFIG_PATH or the working
// directory, with MOODYMAP_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.moodymap.db")
	v.SetDefault("log_level", "warn")
	v.SetConfigName(".moodymap") // .yaml is implicit
	v.SetEnvPrefix("MOODYMAP")
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(v.GetString("log_level")))); err != nil {
		return nil, fmt.Errorf("store: log_level: %w", err)
	}

	cfg := &fileConfig{Path: path, Level: level, File: v.ConfigFileUsed()}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("store: config: %w", err)
	}
	return cfg, nil
}

type fileConfig struct {
	Path  string     `json:"path"`
	Level slog.Level `json:"log_level"`
	File  string     `json:"-"`
}

// Validate validates the store configuration.
func (f *fileConfig) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Path, validation.Required),
	)
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) LogLevel() slog.Level {
	return f.Level
}

// ConfigFile reports the config file that was read, if any.
func ConfigFile(cfg Config) string {
	if f, ok := cfg.(*fileConfig); ok {
		return f.File
	}
	return ""
}
