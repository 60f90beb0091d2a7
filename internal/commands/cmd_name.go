package commands

import (
	"context"
	"fmt"

	"github.com/colonyops/zellij-namer/pkg/iojson"
	"github.com/urfave/cli/v3"
)

type NameCmd struct {
	flags  *Flags
	reader iojson.FileReader[[]string]

	// flags
	dir        string
	tag        string
	intent     string
	jsonOutput bool
}

// NewNameCmd creates a new name command
func NewNameCmd(flags *Flags) *NameCmd {
	return &NameCmd{flags: flags}
}

// Register adds the name command to the application
func (cmd *NameCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "name",
		Usage:     "Print the session name for the current project and signals",
		UsageText: "zellij-namer name [options] [signal...]",
		Description: `Builds "<project>-<intent>[-<tag>]" from the project in --dir and the given signals.

Signals are taken from the arguments, or read as a JSON array of strings from
--file or piped stdin. Only the most recent max_signals signals are considered.

Example:
  zellij-namer name "bun test" "jest --watch"   # my-app-test`,
		Flags: append(nameFlags(&cmd.dir, &cmd.tag, &cmd.intent),
			cmd.reader.Flag(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		),
		Action: cmd.run,
	})

	return app
}

func (cmd *NameCmd) run(ctx context.Context, c *cli.Command) error {
	raw, err := collectSignals(c, &cmd.reader)
	if err != nil {
		return err
	}

	res, err := resolveName(cmd.flags.Config, nameRequest{Dir: cmd.dir, Tag: cmd.tag, Intent: cmd.intent}, raw)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, res)
	}

	_, err = fmt.Fprintln(out, res.Name)
	return err
}

// nameFlags are the flags shared by commands that build a session name.
func nameFlags(dir, tag, in *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Aliases:     []string{"d"},
			Usage:       "project directory (defaults to the working directory)",
			Destination: dir,
		},
		&cli.StringFlag{
			Name:        "tag",
			Aliases:     []string{"t"},
			Usage:       "tag appended to the name (overrides the config tag)",
			Destination: tag,
		},
		&cli.StringFlag{
			Name:        "intent",
			Usage:       "use this intent instead of inferring one",
			Destination: in,
		},
	}
}
