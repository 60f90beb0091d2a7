// Package mux renames terminal multiplexer sessions by shelling out to the
// multiplexer's CLI.
package mux

import (
	"context"
	"fmt"

	"github.com/colonyops/zellij-namer/pkg/executil"
)

// Renamer renames the session the current process runs in.
type Renamer interface {
	// Kind returns the multiplexer name ("zellij" or "tmux").
	Kind() string
	// Inside reports whether the process runs inside a session of this multiplexer.
	Inside() bool
	// Current returns the current session name.
	Current(ctx context.Context) (string, error)
	// Rename sets the session name.
	Rename(ctx context.Context, name string) error
}

// New returns the Renamer for kind. target is only used by tmux.
func New(kind string, exec executil.Executor, target string) (Renamer, error) {
	switch kind {
	case "zellij":
		return NewZellij(exec), nil
	case "tmux":
		return NewTmux(exec, target), nil
	default:
		return nil, fmt.Errorf("unsupported multiplexer %q", kind)
	}
}
