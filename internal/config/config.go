package config

import (
	"errors"
	"fmt"

	"string-matcher/internal/types"

	"github.com/BurntSushi/toml"
)

// DefaultProgressInterval is the number of attempts between progress lines
const DefaultProgressInterval = 1_000_000

// ErrInvalidConfig is returned when a config value is out of range
var ErrInvalidConfig = errors.New("invalid config")

// LoadConfig loads configuration from a TOML file
func LoadConfig(configPath string) (*types.Config, error) {
	config := &types.Config{}
	md, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), configPath)
	}

	ApplyDefaults(config)
	return config, nil
}

// Default returns the configuration used when no file is given
func Default() *types.Config {
	config := &types.Config{}
	ApplyDefaults(config)
	return config
}

// ApplyDefaults sets default values for anything not specified
func ApplyDefaults(config *types.Config) {
	if config.Match.Mode == "" {
		config.Match.Mode = types.TargetModeSingle.String()
	}

	if config.Match.ProgressInterval == 0 {
		config.Match.ProgressInterval = DefaultProgressInterval
	}

	if config.Log.Level == "" {
		config.Log.Level = "warn"
	}

	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
}

// Validate checks values that flags or the file may have set
func Validate(config *types.Config) error {
	if _, ok := types.ParseTargetMode(config.Match.Mode); !ok {
		return fmt.Errorf("%w: mode must be 'single' or 'words', got %q", ErrInvalidConfig, config.Match.Mode)
	}

	if config.Match.ProgressInterval == 0 {
		return fmt.Errorf("%w: progress interval must be positive", ErrInvalidConfig)
	}

	switch config.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level must be 'debug', 'info', 'warn' or 'error', got %q", ErrInvalidConfig, config.Log.Level)
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format must be 'text' or 'json', got %q", ErrInvalidConfig, config.Log.Format)
	}

	return nil
}
