package types

import "time"

// TargetMode defines how the input string is turned into targets
type TargetMode int

const (
	TargetModeSingle TargetMode = iota
	TargetModeWords
)

// String returns the config spelling of the mode
func (m TargetMode) String() string {
	switch m {
	case TargetModeSingle:
		return "single"
	case TargetModeWords:
		return "words"
	default:
		return "unknown"
	}
}

// ParseTargetMode maps a config value to a TargetMode
func ParseTargetMode(s string) (TargetMode, bool) {
	switch s {
	case "", "single":
		return TargetModeSingle, true
	case "words":
		return TargetModeWords, true
	default:
		return TargetModeSingle, false
	}
}

// Result represents the outcome of a finished match run
type Result struct {
	Target   string
	Match    string
	Attempts uint64
	Elapsed  time.Duration
	Found    bool
}

// Config represents the application configuration
type Config struct {
	Match struct {
		Mode             string `toml:"mode"`
		Pattern          string `toml:"pattern"`
		ProgressInterval uint64 `toml:"progress_interval"`
	} `toml:"match"`

	Output struct {
		Banner      bool `toml:"banner"`
		PauseOnExit bool `toml:"pause_on_exit"`
	} `toml:"output"`

	Log struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
	} `toml:"log"`
}
