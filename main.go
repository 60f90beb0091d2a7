package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/zellij-namer/internal/commands"
	"github.com/colonyops/zellij-namer/internal/core/config"
	"github.com/colonyops/zellij-namer/internal/printer"
	"github.com/colonyops/zellij-namer/pkg/executil"
	"github.com/colonyops/zellij-namer/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() falls back
	// to runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "zellij-namer",
		Usage:     "Name terminal multiplexer sessions after what you are doing",
		UsageText: "zellij-namer [global options] command [command options]",
		Description: `zellij-namer turns recent activity (commands, file paths, chat lines) into a
session name of the form <project>-<intent>[-<tag>], for example "my-app-test".

The project comes from package.json or the directory name. The intent is one of
test, debug, fix, refactor, doc, review, ops, spike or feat, chosen by keyword.

Tunables are read from OPENCODE_ZELLIJ_COOLDOWN_MS, OPENCODE_ZELLIJ_DEBOUNCE_MS,
OPENCODE_ZELLIJ_MAX_SIGNALS and OPENCODE_ZELLIJ_MODEL, over an optional YAML config file.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("ZELLIJ_NAMER_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("ZELLIJ_NAMER_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("ZELLIJ_NAMER_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, config.EnvSource{})
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			flags.Config = cfg
			flags.Exec = &executil.RealExecutor{}
			flags.Available = executil.Available

			ctx = printer.NewContext(ctx, printer.New(os.Stderr))

			log.Debug().
				Str("config", flags.ConfigPath).
				Int("max_signals", cfg.MaxSignals).
				Str("multiplexer", cfg.Multiplexer).
				Msg("configuration loaded")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewNameCmd(flags).Register(app)
	app = commands.NewIntentCmd(flags).Register(app)
	app = commands.NewRenameCmd(flags).Register(app)
	app = commands.NewWatchCmd(flags).Register(app)
	app = commands.NewConfigCmd(flags).Register(app)

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	stop()
	os.Exit(exitCode)
}
