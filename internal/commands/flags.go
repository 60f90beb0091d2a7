package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/zellij-namer/internal/core/config"
	"github.com/colonyops/zellij-namer/pkg/executil"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Exec runs multiplexer commands
	Exec executil.Executor

	// Available reports whether a multiplexer binary is on PATH. nil skips
	// the check.
	Available func(cmd string) bool
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "zellij-namer", "config.yaml")
}
