package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.CooldownMs < 0 {
		errs = errs.Append("cooldown_ms", fmt.Errorf("must not be negative"))
	}
	if c.DebounceMs < 0 {
		errs = errs.Append("debounce_ms", fmt.Errorf("must not be negative"))
	}
	if c.MaxSignals < 1 {
		errs = errs.Append("max_signals", fmt.Errorf("must be at least 1"))
	}
	if c.Model == "" {
		errs = errs.Append("model", fmt.Errorf("cannot be empty"))
	}

	switch c.Multiplexer {
	case MultiplexerZellij:
		if c.TmuxTarget != "" {
			errs = errs.Append("tmux_target", fmt.Errorf("only valid with multiplexer %q", MultiplexerTmux))
		}
	case MultiplexerTmux:
	default:
		errs = errs.Append("multiplexer", fmt.Errorf("must be %q or %q, got %q", MultiplexerZellij, MultiplexerTmux, c.Multiplexer))
	}

	for i, p := range c.Ignore {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("ignore[%d]", i), fmt.Errorf("invalid glob %q", p))
		}
	}

	return errs.ToError()
}

// ValidateDeep runs Validate and additionally checks that the config file,
// when given, is a readable regular file.
func (c *Config) ValidateDeep(configPath string) error {
	return criterio.ValidateStruct(
		c.Validate(),
		validateConfigFile(configPath),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}
