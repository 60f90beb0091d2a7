package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_PlainOutputForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("renamed to %s", "app-test")
	p.Errorf("failed")
	p.Printf("plain %d", 1)

	assert.Equal(t, "✔ renamed to app-test\n✘ failed\nplain 1\n", buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPrinter_KV(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).KV("intent", "test")

	assert.Equal(t, "intent     test\n", buf.String())
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))
	assert.NotNil(t, Ctx(context.Background()))
}
