// Package config handles configuration loading and validation for zellij-namer.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Get.
const (
	EnvCooldownMs = "OPENCODE_ZELLIJ_COOLDOWN_MS"
	EnvDebounceMs = "OPENCODE_ZELLIJ_DEBOUNCE_MS"
	EnvMaxSignals = "OPENCODE_ZELLIJ_MAX_SIGNALS"
	EnvModel      = "OPENCODE_ZELLIJ_MODEL"
)

// Defaults used when a parameter is absent or unusable.
const (
	DefaultCooldownMs  = 300000
	DefaultDebounceMs  = 5000
	DefaultMaxSignals  = 25
	DefaultModel       = "gemini-3-flash-preview"
	DefaultMultiplexer = MultiplexerZellij
)

// Supported multiplexers.
const (
	MultiplexerZellij = "zellij"
	MultiplexerTmux   = "tmux"
)

// Config holds the resolved naming parameters.
type Config struct {
	CooldownMs  int      `yaml:"cooldown_ms" json:"cooldown_ms"`
	DebounceMs  int      `yaml:"debounce_ms" json:"debounce_ms"`
	MaxSignals  int      `yaml:"max_signals" json:"max_signals"`
	Model       string   `yaml:"model" json:"model"`
	Multiplexer string   `yaml:"multiplexer" json:"multiplexer"`
	TmuxTarget  string   `yaml:"tmux_target,omitempty" json:"tmux_target,omitempty"` // empty = current tmux session
	Tag         string   `yaml:"tag,omitempty" json:"tag,omitempty"`                 // fixed tag appended to every name
	Ignore      []string `yaml:"ignore,omitempty" json:"ignore,omitempty"`           // glob patterns for signals to drop
}

// Source looks up raw configuration values by key.
type Source interface {
	Lookup(key string) (string, bool)
}

// EnvSource reads from the process environment.
type EnvSource struct{}

// Lookup implements Source.
func (EnvSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapSource is a Source backed by a map, mostly useful in tests.
type MapSource map[string]string

// Lookup implements Source.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// DefaultConfig returns a Config with every parameter at its default.
func DefaultConfig() Config {
	return Config{
		CooldownMs:  DefaultCooldownMs,
		DebounceMs:  DefaultDebounceMs,
		MaxSignals:  DefaultMaxSignals,
		Model:       DefaultModel,
		Multiplexer: DefaultMultiplexer,
	}
}

// Get resolves the four OPENCODE_ZELLIJ_* parameters from src, substituting
// defaults for anything absent or unusable. Nothing is cached; every call
// reflects the current state of src.
func Get(src Source) Config {
	cfg := DefaultConfig()
	cfg.applySource(src)
	return cfg
}

// Load reads the optional YAML file at path, overlays values from src and
// fills the remaining gaps with defaults. A missing file is not an error.
func Load(path string, src Source) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applySource(src)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Cooldown is the minimum time between two renames.
func (c Config) Cooldown() time.Duration {
	return time.Duration(c.CooldownMs) * time.Millisecond
}

// Debounce is the quiet period after the last signal before a rename.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// applySource overrides fields with usable values from src.
func (c *Config) applySource(src Source) {
	if src == nil {
		return
	}
	if v, ok := lookupPositive(src, EnvCooldownMs); ok {
		c.CooldownMs = v
	}
	if v, ok := lookupPositive(src, EnvDebounceMs); ok {
		c.DebounceMs = v
	}
	if v, ok := lookupPositive(src, EnvMaxSignals); ok {
		c.MaxSignals = v
	}
	if v, ok := src.Lookup(EnvModel); ok && strings.TrimSpace(v) != "" {
		c.Model = strings.TrimSpace(v)
	}
}

// applyDefaults replaces zero or negative values left by the config file.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.CooldownMs <= 0 {
		c.CooldownMs = defaults.CooldownMs
	}
	if c.DebounceMs <= 0 {
		c.DebounceMs = defaults.DebounceMs
	}
	if c.MaxSignals <= 0 {
		c.MaxSignals = defaults.MaxSignals
	}
	if strings.TrimSpace(c.Model) == "" {
		c.Model = defaults.Model
	}
	if c.Multiplexer == "" {
		c.Multiplexer = defaults.Multiplexer
	}
}

// lookupPositive parses a numeric value from src. Values that are missing,
// not numbers, infinite, below 1 or above math.MaxInt32 are rejected.
func lookupPositive(src Source, key string) (int, bool) {
	raw, ok := src.Lookup(key)
	if !ok {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	if f < 1 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
