package mux

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/colonyops/zellij-namer/pkg/executil"
)

// Zellij renames zellij sessions with `zellij action rename-session`.
type Zellij struct {
	exec executil.Executor
}

// NewZellij creates a Zellij renamer with the given executor.
func NewZellij(exec executil.Executor) *Zellij {
	return &Zellij{exec: exec}
}

func (z *Zellij) Kind() string { return "zellij" }

func (z *Zellij) Inside() bool { return insideZellij() }

// Current reads the session name zellij exports to its panes.
func (z *Zellij) Current(ctx context.Context) (string, error) {
	name := strings.TrimSpace(os.Getenv("ZELLIJ_SESSION_NAME"))
	if name == "" {
		return "", fmt.Errorf("zellij: ZELLIJ_SESSION_NAME is not set")
	}
	return name, nil
}

func (z *Zellij) Rename(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("zellij: session name is required")
	}
	if _, err := z.exec.Run(ctx, "zellij", "action", "rename-session", name); err != nil {
		return fmt.Errorf("zellij rename-session: %w", err)
	}
	return nil
}

// insideZellij reports whether the current process is running inside zellij.
var insideZellij = func() bool {
	return strings.TrimSpace(os.Getenv("ZELLIJ")) != ""
}
