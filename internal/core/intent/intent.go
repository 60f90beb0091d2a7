// Package intent classifies recent activity signals into a coarse work intent.
package intent

import (
	"fmt"
	"regexp"
	"strings"
)

// Intent is the inferred purpose of the current work.
type Intent string

const (
	Test     Intent = "test"
	Debug    Intent = "debug"
	Fix      Intent = "fix"
	Refactor Intent = "refactor"
	Doc      Intent = "doc"
	Review   Intent = "review"
	Ops      Intent = "ops"
	Spike    Intent = "spike"
	Feat     Intent = "feat"
)

// rule pairs a keyword pattern with the intent it selects.
type rule struct {
	intent  Intent
	pattern *regexp.Regexp
}

// rules are evaluated top to bottom and the first match wins. The order is
// the tie-break policy: "run tests for the bug" is a test, not a fix.
var rules = []rule{
	{Test, regexp.MustCompile(`\b(test|spec|jest|mocha|pytest|vitest)\b`)},
	{Debug, regexp.MustCompile(`\b(debug|breakpoint|trace|inspect|why)\b`)},
	{Fix, regexp.MustCompile(`\b(fix|bug|patch|hotfix|issue|broken)\b`)},
	{Refactor, regexp.MustCompile(`\b(refactor|cleanup|reorganize|restructure)\b`)},
	{Doc, regexp.MustCompile(`\b(doc|readme|documentation)\b|\.md`)},
	{Review, regexp.MustCompile(`\b(review|pr|pull.?request|merge)\b`)},
	{Ops, regexp.MustCompile(`\b(docker|k8s|kubernetes|terraform|ansible|deploy|ci|cd)\b`)},
	{Spike, regexp.MustCompile(`\b(spike|explore|experiment|poc|prototype)\b`)},
}

// Match describes which rule classified a set of signals.
type Match struct {
	Intent  Intent `json:"intent"`
	Keyword string `json:"keyword,omitempty"` // empty when falling back to Feat
}

// Infer returns the intent for the given signals. It never fails: text that
// matches no rule is Feat.
func Infer(signals []string) Intent {
	return Explain(signals).Intent
}

// Explain is Infer with the matched keyword attached.
func Explain(signals []string) Match {
	text := strings.ToLower(strings.Join(signals, " "))

	for _, r := range rules {
		if kw := r.pattern.FindString(text); kw != "" {
			return Match{Intent: r.intent, Keyword: kw}
		}
	}

	return Match{Intent: Feat}
}

// All returns every intent in rule order, with Feat last.
func All() []Intent {
	out := make([]Intent, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.intent)
	}
	return append(out, Feat)
}

// Parse validates a user supplied intent name.
func Parse(s string) (Intent, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, in := range All() {
		if string(in) == s {
			return in, nil
		}
	}
	return "", fmt.Errorf("unknown intent %q", s)
}

// IsValid reports whether i is one of the known intents.
func (i Intent) IsValid() bool {
	_, err := Parse(string(i))
	return err == nil
}

func (i Intent) String() string {
	return string(i)
}
