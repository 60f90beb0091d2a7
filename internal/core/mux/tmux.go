package mux

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/colonyops/zellij-namer/pkg/executil"
)

// Tmux renames tmux sessions with `tmux rename-session`.
type Tmux struct {
	exec   executil.Executor
	target string // empty = the client's current session
}

// NewTmux creates a Tmux renamer. When target is empty tmux resolves the
// session from the calling client.
func NewTmux(exec executil.Executor, target string) *Tmux {
	return &Tmux{exec: exec, target: target}
}

func (t *Tmux) Kind() string { return "tmux" }

func (t *Tmux) Inside() bool { return insideTmux() }

func (t *Tmux) Current(ctx context.Context) (string, error) {
	args := []string{"display-message", "-p"}
	if t.target != "" {
		args = append(args, "-t", t.target)
	}
	args = append(args, "#S")

	out, err := t.exec.Run(ctx, "tmux", args...)
	if err != nil {
		return "", fmt.Errorf("tmux display-message: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (t *Tmux) Rename(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("tmux: session name is required")
	}

	args := []string{"rename-session"}
	if t.target != "" {
		args = append(args, "-t", t.target)
	}
	args = append(args, name)

	if _, err := t.exec.Run(ctx, "tmux", args...); err != nil {
		return fmt.Errorf("tmux rename-session: %w", err)
	}

	// A renamed session no longer answers to its old name.
	if t.target != "" {
		t.target = name
	}
	return nil
}

// insideTmux reports whether the current process is running inside tmux.
var insideTmux = func() bool {
	return strings.TrimSpace(os.Getenv("TMUX")) != ""
}
