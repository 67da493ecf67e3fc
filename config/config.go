// Package config loads runtime settings
// Precedence: built-in defaults, then the YAML file, then NETRUNNER_* environment variables;
// CLI flags are applied last by the command layer
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/netrunner/constants"
)

// Environment variable names
const (
	EnvDebug      = "NETRUNNER_DEBUG"
	EnvPrefs      = "NETRUNNER_PREFS"
	EnvSampleRate = "NETRUNNER_SAMPLE_RATE"
	EnvAudio      = "NETRUNNER_AUDIO"
)

// Audio holds output device settings
type Audio struct {
	// Device false skips opening the output device entirely
	Device       bool `yaml:"device"`
	SampleRate   int  `yaml:"sample_rate"`
	BufferMillis int  `yaml:"buffer_ms"`
}

// UI holds terminal presentation settings
type UI struct {
	Color       bool `yaml:"color"`
	FrameMillis int  `yaml:"frame_ms"`
}

// Config is the merged runtime configuration
type Config struct {
	Debug     bool   `yaml:"debug"`
	LogDir    string `yaml:"log_dir"`
	PrefsPath string `yaml:"prefs_path"` // Empty selects the user config dir
	Locale    string `yaml:"locale"`     // Path to a .po catalog; empty keeps English
	Audio     Audio  `yaml:"audio"`
	UI        UI     `yaml:"ui"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LogDir: "logs",
		Audio: Audio{
			Device:       true,
			SampleRate:   constants.AudioSampleRate,
			BufferMillis: int(constants.AudioBufferDuration / time.Millisecond),
		},
		UI: UI{
			Color:       true,
			FrameMillis: int(constants.FrameUpdateInterval / time.Millisecond),
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the environment
// An empty path skips the file; a named file that does not exist is an error
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables read through lookup
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}

	if v, ok := lookup(EnvPrefs); ok && v != "" {
		c.PrefsPath = v
	}

	if v, ok := lookup(EnvSampleRate); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSampleRate, err)
		}
		c.Audio.SampleRate = n
	}

	if v, ok := lookup(EnvAudio); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudio, err)
		}
		c.Audio.Device = b
	}
	return nil
}

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate rejects settings the runtime cannot honour
func (c *Config) Validate() error {
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate must be positive, got %d", ErrInvalid, c.Audio.SampleRate)
	}
	if c.Audio.BufferMillis <= 0 {
		return fmt.Errorf("%w: audio.buffer_ms must be positive, got %d", ErrInvalid, c.Audio.BufferMillis)
	}
	if c.UI.FrameMillis <= 0 {
		return fmt.Errorf("%w: ui.frame_ms must be positive, got %d", ErrInvalid, c.UI.FrameMillis)
	}
	if c.LogDir == "" {
		return fmt.Errorf("%w: log_dir must not be empty", ErrInvalid)
	}
	return nil
}

// BufferDuration returns the audio buffer as a duration
func (a Audio) BufferDuration() time.Duration {
	return time.Duration(a.BufferMillis) * time.Millisecond
}

// FrameInterval returns the render interval as a duration
func (u UI) FrameInterval() time.Duration {
	return time.Duration(u.FrameMillis) * time.Millisecond
}
