package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/colonyops/zellij-namer/internal/core/intent"
	"github.com/colonyops/zellij-namer/internal/core/logging"
	"github.com/colonyops/zellij-namer/internal/core/signals"
	"github.com/colonyops/zellij-namer/internal/namer"
	"github.com/colonyops/zellij-namer/internal/printer"
	"github.com/colonyops/zellij-namer/pkg/iojson"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

type WatchCmd struct {
	flags *Flags

	// Stdin overrides os.Stdin, for tests.
	Stdin io.Reader

	// flags
	dir         string
	tag         string
	intent      string
	multiplexer string
	interval    time.Duration
	force       bool
	jsonOutput  bool
}

// NewWatchCmd creates a new watch command
func NewWatchCmd(flags *Flags) *WatchCmd {
	return &WatchCmd{flags: flags}
}

// Register adds the watch command to the application
func (cmd *WatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "watch",
		Usage:     "Rename the session continuously from signals on stdin",
		UsageText: "some-producer | zellij-namer watch [options]",
		Description: `Reads one signal per line from stdin and keeps the session name up to date.

A rename happens once no signal has arrived for debounce_ms, at most once per
cooldown_ms, and only when the name actually changes. The command exits when
stdin is closed.`,
		Flags: append(nameFlags(&cmd.dir, &cmd.tag, &cmd.intent),
			&cli.StringFlag{
				Name:        "multiplexer",
				Aliases:     []string{"m"},
				Usage:       "multiplexer to rename (zellij, tmux)",
				Destination: &cmd.multiplexer,
			},
			&cli.DurationFlag{
				Name:        "interval",
				Usage:       "how often pending signals are evaluated",
				Value:       time.Second,
				Destination: &cmd.interval,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "run even when no session is detected",
				Destination: &cmd.force,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print every rename as a JSON line",
				Destination: &cmd.jsonOutput,
			},
		),
		Action: cmd.run,
	})

	return app
}

// watchEvent is the JSON line written for every rename.
type watchEvent struct {
	Time   time.Time     `json:"time"`
	Name   string        `json:"name"`
	Intent intent.Intent `json:"intent"`
}

func (cmd *WatchCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	p := printer.Ctx(ctx)
	log := logging.Component("watch")

	project, err := resolveProject(cmd.dir)
	if err != nil {
		return err
	}

	var fixed intent.Intent
	if cmd.intent != "" {
		if fixed, err = intent.Parse(cmd.intent); err != nil {
			return err
		}
	}

	filter, err := signals.NewFilter(cfg.Ignore)
	if err != nil {
		return err
	}

	renamer, err := newRenamer(cmd.flags, cmd.multiplexer, cmd.force)
	if err != nil {
		return err
	}

	current, err := renamer.Current(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("could not read current session name")
	}

	tag := cmd.tag
	if tag == "" {
		tag = cfg.Tag
	}

	svc := namer.New(namer.Options{
		Project:    project,
		Tag:        tag,
		Intent:     fixed,
		MaxSignals: cfg.MaxSignals,
		Cooldown:   cfg.Cooldown(),
		Debounce:   cfg.Debounce(),
		Filter:     filter,
		Current:    current,
	}, renamer)

	stdin := cmd.Stdin
	if stdin == nil {
		stdin = os.Stdin
		if term.IsTerminal(int(os.Stdin.Fd())) {
			p.Infof("reading signals from the terminal, one per line (Ctrl-D to stop)")
		}
	}

	ctx = logging.WithProject(ctx, project)
	log.Info().Ctx(ctx).
		Str("multiplexer", renamer.Kind()).
		Dur("cooldown", cfg.Cooldown()).
		Dur("debounce", cfg.Debounce()).
		Msg("watching signals")

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	interval := cmd.interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	report := func(res namer.Result, err error) {
		if err != nil {
			p.Warnf("rename failed, retrying in %s: %v", cfg.Cooldown(), err)
			return
		}
		if !res.Renamed {
			return
		}
		if cmd.jsonOutput {
			_ = iojson.WriteLine(c.Root().Writer, watchEvent{Time: time.Now(), Name: res.Name, Intent: res.Intent})
			return
		}
		p.Successf("renamed session to %s", res.Name)
	}

	// No more signals can arrive once stdin closes, so the debounce window
	// is skipped for the last evaluation.
	flush := func() {
		res, err := svc.Flush(ctx)
		report(res, err)
		if err == nil && res.CoolingDown {
			p.Warnf("cooldown active, %s was not applied", res.Name)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				flush()
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read signals: %w", err)
					}
				default:
				}
				return nil
			}
			if svc.Observe(line) {
				log.Debug().Str("signal", signals.Truncate(line)).Msg("signal observed")
			}
		case <-ticker.C:
			report(svc.Tick(ctx))
		}
	}
}
