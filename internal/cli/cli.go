// Package cli wires the command-line surface to the runner and renderer.
package cli

import (
	"context"
	"io"
	"log/slog"

	urfave "github.com/urfave/cli/v3"

	"github.com/Jarred-Sumner/cpu/internal/config"
	"github.com/Jarred-Sumner/cpu/internal/report"
	"github.com/Jarred-Sumner/cpu/internal/runner"
	"github.com/Jarred-Sumner/cpu/internal/sysinfo"
	"github.com/Jarred-Sumner/cpu/internal/usage"
	"github.com/Jarred-Sumner/cpu/internal/version"
)

// App is the top-level command. The child's exit code is held back from the
// urfave error path so help and version keep their zero exits; callers read
// it with ExitCode after Run returns.
type App struct {
	out       io.Writer
	log       *slog.Logger
	cfg       config.Config
	autoColor bool
	root      *urfave.Command
	code      int
}

// New builds the app. autoColor is the terminal's styling capability, used
// when the config asks for "auto".
func New(out io.Writer, logger *slog.Logger, cfg config.Config, autoColor bool) *App {
	app := &App{
		out:       out,
		log:       logger,
		cfg:       cfg,
		autoColor: autoColor,
	}
	app.root = &urfave.Command{
		Name:            "cpu",
		Usage:           "run a command and report its wall, CPU and memory usage",
		UsageText:       "cpu [-v|--verbose] <command> [args...]",
		Version:         version.String(),
		Writer:          out,
		HideHelpCommand: true,
		Flags: []urfave.Flag{
			&urfave.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Value:   cfg.Verbose,
				Usage:   "show detailed metrics after the summary",
			},
		},
		Action: app.action,
	}
	return app
}

// Run parses args and executes the command.
func (a *App) Run(ctx context.Context, args []string) error {
	return a.root.Run(ctx, args)
}

// ExitCode returns the code the tool should exit with: the child's own exit
// status, or 0 for help/version invocations.
func (a *App) ExitCode() int {
	return a.code
}

func (a *App) action(ctx context.Context, cmd *urfave.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return urfave.ShowAppHelp(cmd)
	}

	sys := report.SystemContext{
		TotalMemory:  sysinfo.TotalMemory(),
		ColorEnabled: a.colorEnabled(),
	}
	opts := report.Options{Verbose: cmd.Bool("verbose")}

	sess := runner.New(args[0], args[1:], func(snap usage.Snapshot) {
		report.Render(a.out, snap, sys, opts)
	}, a.log)
	a.code = sess.Run(ctx)
	return nil
}

func (a *App) colorEnabled() bool {
	switch a.cfg.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return a.autoColor
}
