package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/Jarred-Sumner/cpu/internal/cli"
	"github.com/Jarred-Sumner/cpu/internal/config"
	"github.com/Jarred-Sumner/cpu/internal/term"
	"github.com/Jarred-Sumner/cpu/internal/xdg"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   slog.LevelWarn,
		NoColor: !term.SupportsColor(os.Stderr),
	}))

	cfg, err := config.Load(xdg.NewDirs())
	if err != nil {
		logger.Warn("ignoring config file", "err", err)
	}

	app := cli.New(os.Stdout, logger, cfg, term.SupportsColor(os.Stdout))
	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Error("cpu failed", "err", err)
		os.Exit(1)
	}
	os.Exit(app.ExitCode())
}
