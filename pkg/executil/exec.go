// Package executil runs external programs such as zellij and tmux.
package executil

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const maxStderrLen = 500

// limitedWriter caps writes to a bytes.Buffer at a maximum byte count.
// Bytes beyond the limit are silently discarded.
type limitedWriter struct {
	buf *bytes.Buffer
	n   int64
	max int64
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.n >= w.max {
		return len(p), nil
	}
	origLen := len(p)
	if remaining := w.max - w.n; int64(origLen) > remaining {
		p = p[:remaining]
	}
	n, err := w.buf.Write(p)
	w.n += int64(n)
	if err != nil {
		return n, err
	}
	return origLen, nil
}

// Executor runs a program and returns its standard output.
type Executor interface {
	Run(ctx context.Context, cmd string, args ...string) ([]byte, error)
}

// RealExecutor runs programs on the host.
type RealExecutor struct{}

// Run executes cmd and returns stdout. On failure the first 500 bytes of
// stderr are folded into the error; the *exec.ExitError stays reachable
// through errors.As.
func (e *RealExecutor) Run(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer

	c := exec.CommandContext(ctx, cmd, args...)
	c.Stderr = &limitedWriter{buf: &stderr, max: maxStderrLen}

	out, err := c.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return out, fmt.Errorf("exec %s: %s: %w", cmd, msg, err)
		}
		return out, fmt.Errorf("exec %s: %w", cmd, err)
	}
	return out, nil
}

// Available reports whether cmd can be found on PATH.
func Available(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
