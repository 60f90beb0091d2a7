package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Ignored(t *testing.T) {
	f, err := NewFilter([]string{"**/node_modules/**", "*.lock", "  "})
	require.NoError(t, err)

	tests := []struct {
		name   string
		signal string
		want   bool
	}{
		{name: "vendored path", signal: "web/node_modules/react/index.js", want: true},
		{name: "lock file", signal: "bun.lock", want: true},
		{name: "field inside command", signal: "cat yarn.lock", want: true},
		{name: "regular command", signal: "go test ./...", want: false},
		{name: "source path", signal: "src/app.ts", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Ignored(tt.signal))
		})
	}
}

func TestFilter_Nil(t *testing.T) {
	var f *Filter
	assert.False(t, f.Ignored("anything"))

	empty, err := NewFilter(nil)
	require.NoError(t, err)
	assert.False(t, empty.Ignored("anything"))
}

func TestNewFilter_InvalidPattern(t *testing.T) {
	_, err := NewFilter([]string{"[unclosed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ignore pattern")
}
