package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/colonyops/zellij-namer/internal/core/config"
	"github.com/colonyops/zellij-namer/internal/core/intent"
	"github.com/colonyops/zellij-namer/internal/core/manifest"
	"github.com/colonyops/zellij-namer/internal/core/mux"
	"github.com/colonyops/zellij-namer/internal/core/naming"
	"github.com/colonyops/zellij-namer/internal/core/signals"
	"github.com/colonyops/zellij-namer/pkg/iojson"
	"github.com/urfave/cli/v3"
)

// nameRequest carries the per-invocation inputs shared by name, intent and rename.
type nameRequest struct {
	Dir    string // project directory, empty = cwd
	Tag    string // empty = config tag
	Intent string // empty = infer
}

// nameResult is the JSON output of the naming commands.
type nameResult struct {
	Project string        `json:"project"`
	Intent  intent.Intent `json:"intent"`
	Keyword string        `json:"keyword,omitempty"`
	Tag     string        `json:"tag,omitempty"`
	Name    string        `json:"name"`
	Signals []string      `json:"signals"`
}

// resolveName runs the full naming pipeline for one invocation.
func resolveName(cfg *config.Config, req nameRequest, raw []string) (nameResult, error) {
	project, err := resolveProject(req.Dir)
	if err != nil {
		return nameResult{}, err
	}

	recent, err := bufferSignals(cfg, raw)
	if err != nil {
		return nameResult{}, err
	}

	match := intent.Explain(recent)
	if req.Intent != "" {
		in, err := intent.Parse(req.Intent)
		if err != nil {
			return nameResult{}, err
		}
		match = intent.Match{Intent: in}
	}

	tag := req.Tag
	if tag == "" {
		tag = cfg.Tag
	}

	return nameResult{
		Project: project,
		Intent:  match.Intent,
		Keyword: match.Keyword,
		Tag:     tag,
		Name:    naming.BuildSessionName(project, match.Intent, tag),
		Signals: recent,
	}, nil
}

// resolveProject derives the project name from the manifest in dir, falling
// back to the directory name.
func resolveProject(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	meta, err := manifest.Read(abs)
	if err != nil {
		return "", err
	}

	return naming.ExtractProjectName(filepath.ToSlash(abs), meta), nil
}

// bufferSignals drops blank and ignored signals and keeps the most recent
// cfg.MaxSignals of the rest.
func bufferSignals(cfg *config.Config, raw []string) ([]string, error) {
	filter, err := signals.NewFilter(cfg.Ignore)
	if err != nil {
		return nil, err
	}

	var recent []string
	for _, s := range raw {
		if strings.TrimSpace(s) == "" || filter.Ignored(s) {
			continue
		}
		recent = signals.AddSignal(recent, s, cfg.MaxSignals)
	}
	return recent, nil
}

// collectSignals returns the positional arguments, or a JSON array of
// signals read from --file or piped stdin when there are none.
func collectSignals(c *cli.Command, reader *iojson.FileReader[[]string]) ([]string, error) {
	if c.Args().Len() > 0 {
		return c.Args().Slice(), nil
	}

	sigs, err := reader.Read()
	if errors.Is(err, iojson.ErrNoInput) || errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read signals: %w", err)
	}
	return sigs, nil
}

// newRenamer returns the Renamer for the configured multiplexer, or override
// when set. Unless force is given the process must run inside a session.
func newRenamer(flags *Flags, override string, force bool) (mux.Renamer, error) {
	kind := flags.Config.Multiplexer
	if override != "" {
		kind = override
	}

	renamer, err := mux.New(kind, flags.Exec, flags.Config.TmuxTarget)
	if err != nil {
		return nil, err
	}

	if flags.Available != nil && !flags.Available(renamer.Kind()) {
		return nil, fmt.Errorf("%s not found on PATH", renamer.Kind())
	}

	if !renamer.Inside() && !force {
		return nil, fmt.Errorf("not inside a %s session (use --force to try anyway)", renamer.Kind())
	}

	return renamer, nil
}
