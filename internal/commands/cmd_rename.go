package commands

import (
	"context"

	"github.com/colonyops/zellij-namer/internal/core/logging"
	"github.com/colonyops/zellij-namer/internal/printer"
	"github.com/colonyops/zellij-namer/pkg/iojson"
	"github.com/urfave/cli/v3"
)

type RenameCmd struct {
	flags  *Flags
	reader iojson.FileReader[[]string]

	// flags
	dir         string
	tag         string
	intent      string
	multiplexer string
	dryRun      bool
	force       bool
}

// NewRenameCmd creates a new rename command
func NewRenameCmd(flags *Flags) *RenameCmd {
	return &RenameCmd{flags: flags}
}

// Register adds the rename command to the application
func (cmd *RenameCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rename",
		Usage:     "Rename the current multiplexer session",
		UsageText: "zellij-namer rename [options] [signal...]",
		Description: `Computes the session name the same way as 'name' and applies it to the
session this process runs in.

The multiplexer comes from the config file (zellij by default) or --multiplexer.
Outside of a session the command fails unless --force is given.`,
		Flags: append(nameFlags(&cmd.dir, &cmd.tag, &cmd.intent),
			cmd.reader.Flag(),
			&cli.StringFlag{
				Name:        "multiplexer",
				Aliases:     []string{"m"},
				Usage:       "multiplexer to rename (zellij, tmux)",
				Destination: &cmd.multiplexer,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "print the name without renaming",
				Destination: &cmd.dryRun,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "rename even when no session is detected",
				Destination: &cmd.force,
			},
		),
		Action: cmd.run,
	})

	return app
}

func (cmd *RenameCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	raw, err := collectSignals(c, &cmd.reader)
	if err != nil {
		return err
	}

	res, err := resolveName(cmd.flags.Config, nameRequest{Dir: cmd.dir, Tag: cmd.tag, Intent: cmd.intent}, raw)
	if err != nil {
		return err
	}

	if cmd.dryRun {
		p.Infof("would rename session to %s", res.Name)
		return nil
	}

	renamer, err := newRenamer(cmd.flags, cmd.multiplexer, cmd.force)
	if err != nil {
		return err
	}

	ctx = logging.WithSession(logging.WithProject(ctx, res.Project), res.Name)
	log := logging.Component("rename")

	if err := renamer.Rename(ctx, res.Name); err != nil {
		return err
	}

	log.Info().Ctx(ctx).Str("intent", string(res.Intent)).Msg("session renamed")
	p.Successf("renamed %s session to %s", renamer.Kind(), res.Name)
	return nil
}
