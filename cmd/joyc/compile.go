package main

import (
	"fmt"
	"os"

	"github.com/eyelash/joy/internal/config"
	"github.com/eyelash/joy/internal/diag"
	"github.com/eyelash/joy/internal/diagfmt"
	"github.com/eyelash/joy/internal/pipeline"
	"github.com/eyelash/joy/internal/ui"
)

// sharedFlags are the options every pipeline-driving subcommand exposes.
type sharedFlags struct {
	color          string
	maxDiagnostics int
	configPath     string
}

func addSharedFlags(cmd cobraFlagSet, f *sharedFlags) {
	cmd.StringVar(&f.color, "color", "auto", "colorize diagnostics (auto|on|off)")
	cmd.IntVar(&f.maxDiagnostics, "max-diagnostics", 0, "limit the number of diagnostics printed (0 = unlimited)")
	cmd.StringVar(&f.configPath, "config", "", "path to a joy.toml settings file (defaults to the file next to the source)")
}

// cobraFlagSet is satisfied by *pflag.FlagSet, narrowed to what this
// package needs so addSharedFlags stays a single call site for every
// subcommand that embeds sharedFlags.
type cobraFlagSet interface {
	StringVar(p *string, name string, value string, usage string)
	IntVar(p *int, name string, value int, usage string)
}

// resolvedConfig merges joy.toml (or the --config override) with CLI
// flags, flags always winning over the config file, and the config file
// winning over computed defaults.
type resolvedConfig struct {
	color            bool
	maxDiagnostics   int
	warningsAsErrors bool
	output           string
}

func resolve(sourcePath string, f sharedFlags) (resolvedConfig, error) {
	var cfg config.Config
	var err error
	if f.configPath != "" {
		cfg, err = config.Load(f.configPath)
	} else {
		cfg, err = config.LoadForSource(sourcePath)
	}
	if err != nil {
		return resolvedConfig{}, err
	}

	colorMode := f.color
	if colorMode == "auto" && cfg.Diagnostics.Color != "" {
		colorMode = cfg.Diagnostics.Color
	}

	maxDiag := f.maxDiagnostics
	if maxDiag == 0 {
		maxDiag = cfg.Diagnostics.MaxDiagnostics
	}

	return resolvedConfig{
		color:            resolveColor(colorMode),
		maxDiagnostics:   maxDiag,
		warningsAsErrors: cfg.Diagnostics.WarningsAsErrors,
		output:           cfg.Build.Output,
	}, nil
}

// runPipeline executes one compilation, optionally through the Bubble Tea
// progress UI, prints diagnostics, and reports whether the run should be
// treated as failed (errors, or warnings when warnings-as-errors is set).
func runPipeline(sourcePath string, rc resolvedConfig, showUI bool) (pipeline.Result, bool) {
	var res pipeline.Result
	if showUI {
		res, _ = pipeline.RunWithUI(pipeline.Options{SourcePath: sourcePath}, func(events <-chan pipeline.Event) error {
			return ui.Run(fmt.Sprintf("joyc: %s", sourcePath), events)
		})
	} else {
		res = pipeline.Run(pipeline.Options{SourcePath: sourcePath}, nil)
	}

	items := res.Bag.Items()
	if len(items) > 0 && res.Files != nil {
		fmt.Fprint(os.Stderr, diagfmt.Render(res.Files, items, diagfmt.Options{
			Color:          rc.color,
			MaxDiagnostics: rc.maxDiagnostics,
		}))
	}

	failed := res.Bag.HasErrors()
	if rc.warningsAsErrors && hasAnyDiagnostic(res.Bag) {
		failed = true
	}
	return res, failed
}

func hasAnyDiagnostic(bag *diag.Bag) bool {
	return bag.Len() > 0
}
