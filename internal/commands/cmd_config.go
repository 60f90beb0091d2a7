package commands

import (
	"context"
	"errors"

	"github.com/colonyops/zellij-namer/internal/printer"
	"github.com/colonyops/zellij-namer/pkg/iojson"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

type ConfigCmd struct {
	flags  *Flags
	format string
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	formatFlag := &cli.StringFlag{
		Name:        "format",
		Usage:       "output format (yaml, json)",
		Value:       "yaml",
		Destination: &cmd.format,
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "show",
				Usage:       "Print the resolved configuration",
				UsageText:   "zellij-namer config show [--format yaml|json]",
				Description: `Prints the configuration after merging the config file, OPENCODE_ZELLIJ_* environment
variables and defaults.

Numeric environment values are parsed as numbers and truncated to whole
milliseconds. A value below 1 or above 2147483647 (the int32 ceiling) is
ignored and the default is shown instead.`,
				Flags:       []cli.Flag{formatFlag},
				Action:      cmd.runShow,
			},
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "zellij-namer config validate",
				Description: "Validates the configuration file, checking numeric ranges, the multiplexer and ignore globs.",
				Action:      cmd.runValidate,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runShow(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer

	if cmd.format == "json" {
		return iojson.WriteWith(out, c.Root().ErrWriter, cmd.flags.Config)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cmd.flags.Config); err != nil {
		return err
	}
	return enc.Close()
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	p := printer.New(c.Root().Writer)

	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)
	if err == nil {
		p.Successf("Configuration is valid")
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			p.Errorf("%s: %v", fe.Field, fe.Err)
		}
	} else {
		p.Errorf("%v", err)
	}

	return cli.Exit("", 1)
}
