package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSession(t *testing.T) {
	ctx := WithSession(context.Background(), "app-test")
	assert.Equal(t, "app-test", GetSession(ctx))
}

func TestWithProject(t *testing.T) {
	ctx := WithProject(context.Background(), "app")
	assert.Equal(t, "app", GetProject(ctx))
}

func TestGetters_NotPresent(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetSession(ctx))
	assert.Empty(t, GetProject(ctx))
}
