package config

import (
	"errors"
	"ewansgame/internal/util"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config provides configuration for the score keeper
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log" envconfig:"log"`
	// Color is one of auto, always or never
	Color             string `yaml:"color" envconfig:"color"`
	ShowRunningScores bool   `yaml:"showRunningScores" envconfig:"show_running_scores"`
}

var config Config

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	cfg := Config{
		Color:             ColorAuto,
		ShowRunningScores: false,
	}
	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing or empty config file is not an error, the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("EWAN_CONFIG_FILE", "ewansgame.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		// an empty file has no overrides
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("ewan", &cfg); err != nil {
		return err
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.New("color must be one of auto, always or never")
	}

	cfg.loaded = true
	config = cfg
	return nil
}
