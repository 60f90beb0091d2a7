package namer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/colonyops/zellij-namer/internal/core/intent"
	"github.com/colonyops/zellij-namer/internal/core/mux"
	"github.com/colonyops/zellij-namer/internal/core/signals"
	"github.com/colonyops/zellij-namer/pkg/executil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ now time.Time }

func newClock() *clock {
	return &clock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time          { return c.now }
func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// renames returns the names passed to `zellij action rename-session`.
func renames(rec *executil.RecordingExecutor) []string {
	var out []string
	for _, c := range rec.Commands {
		if len(c.Args) == 3 && c.Args[1] == "rename-session" {
			out = append(out, c.Args[2])
		}
	}
	return out
}

func newService(t *testing.T, opts Options) (*Service, *executil.RecordingExecutor, *clock) {
	t.Helper()
	clk := newClock()
	rec := &executil.RecordingExecutor{}
	if opts.Project == "" {
		opts.Project = "app"
	}
	if opts.MaxSignals == 0 {
		opts.MaxSignals = signals.DefaultCapacity
	}
	opts.Now = clk.Now
	return New(opts, mux.NewZellij(rec)), rec, clk
}

func TestService_Suggest(t *testing.T) {
	svc, _, _ := newService(t, Options{Project: "My App!"})

	name, in := svc.Suggest()
	assert.Equal(t, "my-app-feat", name)
	assert.Equal(t, intent.Feat, in)

	svc.Observe("bun test")
	svc.Observe("jest --watch")

	name, in = svc.Suggest()
	assert.Equal(t, "my-app-test", name)
	assert.Equal(t, intent.Test, in)
}

func TestService_FixedIntentAndTag(t *testing.T) {
	svc, _, _ := newService(t, Options{Intent: intent.Review, Tag: "PR 42"})
	svc.Observe("go test ./...")

	name, in := svc.Suggest()
	assert.Equal(t, "app-review-pr-42", name)
	assert.Equal(t, intent.Review, in)
}

func TestService_Observe(t *testing.T) {
	filter, err := signals.NewFilter([]string{"**/node_modules/**"})
	require.NoError(t, err)

	svc, _, _ := newService(t, Options{MaxSignals: 2, Filter: filter})

	assert.False(t, svc.Observe("   "))
	assert.False(t, svc.Observe("web/node_modules/x/index.js"))
	assert.True(t, svc.Observe("a"))
	assert.True(t, svc.Observe("b"))
	assert.True(t, svc.Observe("c"))

	assert.Equal(t, []string{"b", "c"}, svc.Signals())
}

func TestService_Tick_Debounce(t *testing.T) {
	svc, rec, clk := newService(t, Options{Debounce: 5 * time.Second, Cooldown: time.Minute})
	ctx := context.Background()

	svc.Observe("fix login bug")

	res, err := svc.Tick(ctx)
	require.NoError(t, err)
	assert.False(t, res.Renamed, "still inside debounce window")
	assert.Empty(t, rec.Commands)

	clk.Advance(5 * time.Second)

	res, err = svc.Tick(ctx)
	require.NoError(t, err)
	assert.True(t, res.Renamed)
	assert.Equal(t, "app-fix", res.Name)
	assert.Equal(t, []string{"app-fix"}, renames(rec))
	assert.Equal(t, "app-fix", svc.Applied())
}

func TestService_Tick_Cooldown(t *testing.T) {
	svc, rec, clk := newService(t, Options{Cooldown: time.Minute})
	ctx := context.Background()

	svc.Observe("fix bug")
	_, err := svc.Tick(ctx)
	require.NoError(t, err)

	clk.Advance(10 * time.Second)
	svc.Observe("go test ./...")

	res, err := svc.Tick(ctx)
	require.NoError(t, err)
	assert.False(t, res.Renamed, "cooldown not elapsed")
	assert.Equal(t, "app-test", res.Name)

	clk.Advance(time.Minute)

	res, err = svc.Tick(ctx)
	require.NoError(t, err)
	assert.True(t, res.Renamed)
	assert.Equal(t, []string{"app-fix", "app-test"}, renames(rec))
}

func TestService_Tick_SkipsUnchangedName(t *testing.T) {
	svc, rec, clk := newService(t, Options{Current: "app-feat"})
	ctx := context.Background()

	svc.Observe("add avatars")

	res, err := svc.Tick(ctx)
	require.NoError(t, err)
	assert.False(t, res.Renamed)
	assert.Empty(t, rec.Commands)

	// Nothing new: no work even after time passes.
	clk.Advance(time.Hour)
	res, err = svc.Tick(ctx)
	require.NoError(t, err)
	assert.False(t, res.Renamed)
}

func TestService_Tick_RetriesAfterFailure(t *testing.T) {
	clk := newClock()
	rec := &executil.RecordingExecutor{
		Errors: map[string]error{"zellij": fmt.Errorf("not in a session")},
	}
	svc := New(Options{Project: "app", MaxSignals: 5, Now: clk.Now}, mux.NewZellij(rec))
	ctx := context.Background()

	svc.Observe("deploy")

	_, err := svc.Tick(ctx)
	require.Error(t, err)
	assert.Empty(t, svc.Applied())

	rec.Errors = nil
	res, err := svc.Tick(ctx)
	require.NoError(t, err)
	assert.True(t, res.Renamed)
	assert.Equal(t, "app-ops", svc.Applied())
	assert.Len(t, rec.Commands, 2)
}

func TestService_Tick_FailureWaitsOutCooldown(t *testing.T) {
	clk := newClock()
	rec := &executil.RecordingExecutor{
		Errors: map[string]error{"zellij": fmt.Errorf("not in a session")},
	}
	svc := New(Options{Project: "app", MaxSignals: 5, Cooldown: time.Minute, Now: clk.Now}, mux.NewZellij(rec))
	ctx := context.Background()

	svc.Observe("deploy")

	_, err := svc.Tick(ctx)
	require.Error(t, err)
	require.Len(t, rec.Commands, 1)

	// Further ticks inside the cooldown do not hit the multiplexer again.
	clk.Advance(time.Second)
	res, err := svc.Tick(ctx)
	require.NoError(t, err)
	assert.True(t, res.CoolingDown)
	assert.Len(t, rec.Commands, 1)

	rec.Errors = nil
	clk.Advance(time.Minute)

	res, err = svc.Tick(ctx)
	require.NoError(t, err)
	assert.True(t, res.Renamed)
	assert.Len(t, rec.Commands, 2)
}

func TestService_Flush(t *testing.T) {
	t.Run("skips debounce", func(t *testing.T) {
		svc, rec, _ := newService(t, Options{Debounce: 5 * time.Second, Cooldown: time.Minute})
		ctx := context.Background()

		svc.Observe("fix flaky login")

		res, err := svc.Tick(ctx)
		require.NoError(t, err)
		assert.False(t, res.Renamed)

		res, err = svc.Flush(ctx)
		require.NoError(t, err)
		assert.True(t, res.Renamed)
		assert.Equal(t, []string{"app-fix"}, renames(rec))
	})

	t.Run("respects cooldown", func(t *testing.T) {
		svc, rec, clk := newService(t, Options{Cooldown: time.Minute})
		ctx := context.Background()

		svc.Observe("fix bug")
		_, err := svc.Tick(ctx)
		require.NoError(t, err)

		clk.Advance(time.Second)
		svc.Observe("go test ./...")

		res, err := svc.Flush(ctx)
		require.NoError(t, err)
		assert.False(t, res.Renamed)
		assert.True(t, res.CoolingDown)
		assert.Equal(t, []string{"app-fix"}, renames(rec))
	})

	t.Run("nothing pending", func(t *testing.T) {
		svc, rec, _ := newService(t, Options{})

		res, err := svc.Flush(context.Background())
		require.NoError(t, err)
		assert.False(t, res.Renamed)
		assert.Empty(t, rec.Commands)
	})
}
