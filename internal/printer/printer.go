// Package printer writes styled, human oriented command output.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

type ctxKey struct{}

// Printer prefixes messages with a colored status marker. Colors are only
// emitted when the underlying writer is a terminal.
type Printer struct {
	out io.Writer

	success lipgloss.Style
	info    lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	key     lipgloss.Style
}

// New creates a Printer writing to out.
func New(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)

	return &Printer{
		out:     out,
		success: r.NewStyle().Foreground(lipgloss.Color("#9ece6a")).Bold(true),
		info:    r.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("#e0af68")).Bold(true),
		err:     r.NewStyle().Foreground(lipgloss.Color("#f7768e")).Bold(true),
		key:     r.NewStyle().Foreground(lipgloss.Color("#565f89")).Width(10),
	}
}

// NewContext stores p in ctx.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(marker lipgloss.Style, symbol, format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", marker.Render(symbol), fmt.Sprintf(format, args...))
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Successf(format string, args ...any) { p.line(p.success, "✔", format, args...) }
func (p *Printer) Infof(format string, args ...any)    { p.line(p.info, "•", format, args...) }
func (p *Printer) Warnf(format string, args ...any)    { p.line(p.warn, "!", format, args...) }
func (p *Printer) Errorf(format string, args ...any)   { p.line(p.err, "✘", format, args...) }

// KV writes an aligned "key value" line.
func (p *Printer) KV(key, value string) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.key.Render(key), value)
}
