// Package config holds application constants and loads the optional config
// file. Precedence is flags, then BREATHE_* environment variables, then the
// file, then built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyTechnique     = "technique"
	KeyMinutes       = "minutes"
	KeyHaptics       = "haptics"
	KeyFrameInterval = "frame_interval"
	KeyDBPath        = "db_path"
	KeyLogFile       = "log_file"
)

// Config is the resolved startup configuration.
type Config struct {
	Technique     string
	Minutes       int
	Haptics       bool
	FrameInterval time.Duration
	DBPath        string
	LogFile       string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Technique:     DefaultTechnique,
		Minutes:       DefaultSessionMinutes,
		Haptics:       true,
		FrameInterval: FrameInterval,
	}
}

// SetDefaults registers built-in defaults and env binding on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyTechnique, d.Technique)
	v.SetDefault(KeyMinutes, d.Minutes)
	v.SetDefault(KeyHaptics, d.Haptics)
	v.SetDefault(KeyFrameInterval, d.FrameInterval)
	v.SetDefault(KeyDBPath, "")
	v.SetDefault(KeyLogFile, "")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load reads the config file at path into v. A missing file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Technique:     strings.TrimSpace(v.GetString(KeyTechnique)),
		Minutes:       v.GetInt(KeyMinutes),
		Haptics:       v.GetBool(KeyHaptics),
		FrameInterval: v.GetDuration(KeyFrameInterval),
		DBPath:        strings.TrimSpace(v.GetString(KeyDBPath)),
		LogFile:       strings.TrimSpace(v.GetString(KeyLogFile)),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that would break a session.
func (c Config) Validate() error {
	if c.Technique == "" {
		return errors.New("config: technique is empty")
	}
	if c.Minutes <= 0 {
		return fmt.Errorf("config: minutes must be positive, got %d", c.Minutes)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("config: frame_interval must be positive, got %s", c.FrameInterval)
	}
	return nil
}

// fileConfig is the on-disk shape; durations are written as strings.
type fileConfig struct {
	Technique     string `toml:"technique"`
	Minutes       int    `toml:"minutes"`
	Haptics       bool   `toml:"haptics"`
	FrameInterval string `toml:"frame_interval"`
	DBPath        string `toml:"db_path,omitempty"`
	LogFile       string `toml:"log_file,omitempty"`
}

// Write saves cfg to path as TOML, creating parent directories.
func Write(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := toml.Marshal(fileConfig{
		Technique:     cfg.Technique,
		Minutes:       cfg.Minutes,
		Haptics:       cfg.Haptics,
		FrameInterval: cfg.FrameInterval.String(),
		DBPath:        cfg.DBPath,
		LogFile:       cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
