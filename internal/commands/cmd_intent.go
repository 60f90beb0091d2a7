package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/colonyops/zellij-namer/internal/core/intent"
	"github.com/colonyops/zellij-namer/internal/printer"
	"github.com/colonyops/zellij-namer/pkg/iojson"
	"github.com/urfave/cli/v3"
)

type IntentCmd struct {
	flags  *Flags
	reader iojson.FileReader[[]string]

	// flags
	explain    bool
	jsonOutput bool
}

// NewIntentCmd creates a new intent command
func NewIntentCmd(flags *Flags) *IntentCmd {
	return &IntentCmd{flags: flags}
}

// Register adds the intent command to the application
func (cmd *IntentCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "intent",
		Usage:     "Print the intent inferred from signals",
		UsageText: "zellij-namer intent [--explain] [signal...]",
		Description: `Classifies signals into one of: test, debug, fix, refactor, doc, review, ops, spike, feat.

Keyword groups are checked in that order and the first group with a match wins;
feat is used when nothing matches. --explain shows the keyword that decided.`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
			&cli.BoolFlag{
				Name:        "explain",
				Usage:       "show the matching keyword and the signals considered",
				Destination: &cmd.explain,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *IntentCmd) run(ctx context.Context, c *cli.Command) error {
	raw, err := collectSignals(c, &cmd.reader)
	if err != nil {
		return err
	}

	recent, err := bufferSignals(cmd.flags.Config, raw)
	if err != nil {
		return err
	}

	match := intent.Explain(recent)

	out := c.Root().Writer
	switch {
	case cmd.jsonOutput:
		return iojson.WriteWith(out, c.Root().ErrWriter, intentOutput{
			Intent:  match.Intent,
			Keyword: match.Keyword,
			Signals: recent,
		})
	case cmd.explain:
		keyword := match.Keyword
		if keyword == "" {
			keyword = "(none, fallback)"
		}
		p := printer.New(out)
		p.KV("intent", string(match.Intent))
		p.KV("keyword", keyword)
		p.KV("signals", strconv.Itoa(len(recent)))
		for _, sig := range recent {
			p.Printf("  %s", sig)
		}
		return nil
	default:
		_, err = fmt.Fprintln(out, match.Intent)
		return err
	}
}

type intentOutput struct {
	Intent  intent.Intent `json:"intent"`
	Keyword string        `json:"keyword,omitempty"`
	Signals []string      `json:"signals"`
}
