// Package namer keeps a session name in sync with recent activity. It owns
// the signal buffer for one multiplexer session and decides when a rename is
// due.
package namer

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/colonyops/zellij-namer/internal/core/intent"
	"github.com/colonyops/zellij-namer/internal/core/logging"
	"github.com/colonyops/zellij-namer/internal/core/mux"
	"github.com/colonyops/zellij-namer/internal/core/naming"
	"github.com/colonyops/zellij-namer/internal/core/signals"
	"github.com/rs/zerolog"
)

// Options configures a Service.
type Options struct {
	Project    string        // sanitized project name
	Tag        string        // optional tag appended to the name
	Intent     intent.Intent // fixed intent; empty means infer from signals
	MaxSignals int
	Cooldown   time.Duration // minimum time between renames
	Debounce   time.Duration // quiet period after the last signal
	Filter     *signals.Filter
	Current    string           // name the session has before the first rename
	Now        func() time.Time // defaults to time.Now
}

// Result describes the outcome of a Tick.
type Result struct {
	Name        string
	Intent      intent.Intent
	Renamed     bool
	CoolingDown bool // a rename is pending but the cooldown has not elapsed
}

// Service buffers signals and renames the session through a mux.Renamer.
// It is safe for concurrent use.
type Service struct {
	mu      sync.Mutex
	opts    Options
	buf     *signals.Buffer
	renamer mux.Renamer
	log     zerolog.Logger

	lastSignal  time.Time
	lastAttempt time.Time // last rename attempt, successful or not
	applied     string
	pending     bool
}

// New creates a Service.
func New(opts Options, renamer mux.Renamer) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Service{
		opts:    opts,
		buf:     signals.NewBuffer(opts.MaxSignals),
		renamer: renamer,
		log:     logging.Component("namer"),
		applied: opts.Current,
	}
}

// Observe buffers a signal. Blank and ignored signals are dropped and
// reported as false.
func (s *Service) Observe(signal string) bool {
	if strings.TrimSpace(signal) == "" || s.opts.Filter.Ignored(signal) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Add(signal)
	s.lastSignal = s.opts.Now()
	s.pending = true
	return true
}

// Signals returns a copy of the buffered signals, oldest first.
func (s *Service) Signals() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Items()
}

// Suggest returns the name the session would get right now.
func (s *Service) Suggest() (string, intent.Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggest()
}

func (s *Service) suggest() (string, intent.Intent) {
	in := s.opts.Intent
	if in == "" {
		in = intent.Infer(s.buf.Items())
	}
	return naming.BuildSessionName(s.opts.Project, in, s.opts.Tag), in
}

// Tick renames the session when new signals have arrived, the debounce
// window since the last signal has passed, the cooldown since the last
// rename attempt has passed, and the suggested name differs from the applied
// one. A failed rename leaves the signals pending; the retry waits out the
// cooldown like any other attempt.
func (s *Service) Tick(ctx context.Context) (Result, error) {
	return s.evaluate(ctx, false)
}

// Flush is Tick without the debounce window. It is used when no more
// signals can arrive, so waiting for a quiet period is pointless.
func (s *Service) Flush(ctx context.Context) (Result, error) {
	return s.evaluate(ctx, true)
}

func (s *Service) evaluate(ctx context.Context, skipDebounce bool) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, in := s.suggest()
	res := Result{Name: name, Intent: in}

	if !s.pending {
		return res, nil
	}

	now := s.opts.Now()
	if !skipDebounce && now.Sub(s.lastSignal) < s.opts.Debounce {
		return res, nil
	}
	if !s.lastAttempt.IsZero() && now.Sub(s.lastAttempt) < s.opts.Cooldown {
		res.CoolingDown = true
		return res, nil
	}

	s.pending = false
	if name == s.applied {
		return res, nil
	}

	s.lastAttempt = now

	ctx = logging.WithSession(logging.WithProject(ctx, s.opts.Project), name)
	if err := s.renamer.Rename(ctx, name); err != nil {
		s.pending = true
		s.log.Error().Ctx(ctx).Err(err).
			Str("multiplexer", s.renamer.Kind()).
			Dur("retry_in", s.opts.Cooldown).
			Msg("rename failed")
		return res, err
	}

	s.log.Info().Ctx(ctx).
		Str("from", s.applied).
		Str("intent", string(in)).
		Int("signals", s.buf.Len()).
		Msg("session renamed")

	s.applied = name
	res.Renamed = true
	return res, nil
}

// Applied returns the last name the service set, or Options.Current.
func (s *Service) Applied() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}
