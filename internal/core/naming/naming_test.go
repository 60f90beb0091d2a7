package naming

import (
	"strings"
	"testing"

	"github.com/colonyops/zellij-namer/internal/core/intent"
	"github.com/colonyops/zellij-namer/internal/core/manifest"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "collapses dash runs", input: "my---app", want: "my-app"},
		{name: "strips outer dashes", input: "-myapp-", want: "myapp"},
		{name: "lowercases", input: "MyApp", want: "myapp"},
		{name: "replaces punctuation", input: "My App!", want: "my-app"},
		{name: "keeps digits", input: "app2go", want: "app2go"},
		{name: "underscores and dots", input: "foo_bar.baz", want: "foo-bar-baz"},
		{name: "unicode becomes dash", input: "café", want: "caf"},
		{name: "empty", input: "", want: ""},
		{name: "only symbols", input: "!!!", want: ""},
		{name: "single dash", input: "-", want: ""},
		{name: "scope marker", input: "@org/pkg", want: "org-pkg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitize_Properties(t *testing.T) {
	inputs := []string{
		"", "-", "--a--", "Hello, World!", "ÜBER straße", "a/b/c", "  spaced  out  ",
		"feature/JIRA-123_fix", "\xff\xfe bytes", "emoji 🚀 launch", strings.Repeat("x-", 40),
	}

	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "idempotent for %q", in)
		assert.LessOrEqual(t, len(once), len(in), "bounded for %q", in)
		assert.NotContains(t, once, "--")
		assert.False(t, strings.HasPrefix(once, "-"), "leading dash for %q", in)
		assert.False(t, strings.HasSuffix(once, "-"), "trailing dash for %q", in)
	}
}

func TestBuildSessionName(t *testing.T) {
	tests := []struct {
		name    string
		project string
		intent  intent.Intent
		tag     string
		want    string
	}{
		{name: "sanitizes project", project: "My App!", intent: intent.Feat, want: "my-app-feat"},
		{name: "blank tag ignored", project: "app", intent: intent.Test, tag: "", want: "app-test"},
		{name: "whitespace tag ignored", project: "app", intent: intent.Test, tag: "   ", want: "app-test"},
		{name: "tag appended", project: "app", intent: intent.Fix, tag: "Auth Flow", want: "app-fix-auth-flow"},
		{name: "tag that sanitizes to empty", project: "app", intent: intent.Fix, tag: "!!!", want: "app-fix"},
		{
			name:    "project truncated to 20",
			project: "a-really-long-project-name",
			intent:  intent.Ops,
			want:    "a-really-long-projec-ops",
		},
		{
			name:    "tag truncated to 15",
			project: "app",
			intent:  intent.Doc,
			tag:     "abcdefghijklmnopqrstuvwxyz",
			want:    "app-doc-abcdefghijklmno",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildSessionName(tt.project, tt.intent, tt.tag))
		})
	}
}

func TestBuildSessionName_Bounded(t *testing.T) {
	long := strings.Repeat("z", 200)
	for _, in := range intent.All() {
		got := BuildSessionName(long, in, long)
		assert.LessOrEqual(t, len(got), MaxSessionNameLen)
		assert.True(t, strings.HasPrefix(got, strings.Repeat("z", MaxProjectLen)+"-"+string(in)))
	}

	// Pathological intents are cut at the hard ceiling.
	got := BuildSessionName(long, intent.Intent(strings.Repeat("q", 60)), "tag")
	assert.Len(t, got, MaxSessionNameLen)
}

func TestExtractProjectName(t *testing.T) {
	tests := []struct {
		name string
		path string
		meta *manifest.Package
		want string
	}{
		{name: "scoped package", path: "/path", meta: &manifest.Package{Name: "@org/my-package"}, want: "my-package"},
		{name: "plain package", path: "/path", meta: &manifest.Package{Name: "My_Lib"}, want: "my-lib"},
		{name: "scope without slash", path: "/path", meta: &manifest.Package{Name: "@solo"}, want: "solo"},
		{name: "empty name falls back to path", path: "/home/me/Cool App", meta: &manifest.Package{}, want: "cool-app"},
		{name: "no manifest", path: "/home/me/zellij-namer", want: "zellij-namer"},
		{name: "relative path", path: "repo", want: "repo"},
		{name: "trailing slash", path: "/home/me/", want: "project"},
		{name: "empty path", path: "", want: "project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractProjectName(tt.path, tt.meta))
		})
	}
}
