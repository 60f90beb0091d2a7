package signals

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter drops signals that match any of a set of glob patterns, such as
// "**/node_modules/**" or "*.lock". A signal is ignored when the whole
// signal or any whitespace separated field of it matches.
type Filter struct {
	patterns []string
}

// NewFilter validates patterns and returns a Filter. Empty patterns are skipped.
func NewFilter(patterns []string) (*Filter, error) {
	f := &Filter{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q", p)
		}
		f.patterns = append(f.patterns, p)
	}
	return f, nil
}

// Ignored reports whether signal should be dropped. A nil Filter ignores nothing.
func (f *Filter) Ignored(signal string) bool {
	if f == nil || len(f.patterns) == 0 {
		return false
	}

	signal = strings.TrimSpace(signal)
	candidates := append([]string{signal}, strings.Fields(signal)...)

	for _, p := range f.patterns {
		for _, c := range candidates {
			if ok, _ := doublestar.Match(p, c); ok {
				return true
			}
		}
	}
	return false
}
