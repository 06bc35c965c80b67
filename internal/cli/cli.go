// Package cli builds the compatscan root command.
package cli

import (
	"context"
	"fmt"

	"compatscan/internal/commands/analyze"
	"compatscan/internal/commands/libraries"
	"compatscan/internal/commands/runtimes"
	"compatscan/internal/config"
	"compatscan/internal/console"
	"compatscan/internal/printer"
	"compatscan/internal/tui"
	"compatscan/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command, configuring all subcommands
// and flags for the compatscan cli. A bare invocation runs the analysis,
// so the root command carries the analyze flags as well.
func New(cfg *config.Config) *urfavecli.Command {
	flags := []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "steam-path",
			Aliases: []string{"s"},
			Usage:   "Steam installation root (skips auto-detection)",
		},
		&urfavecli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored output",
			Destination: &noColorFlag,
		},
	}
	flags = append(flags, analyze.Flags()...)

	return &urfavecli.Command{
		Name:                  "compatscan",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Inventory Steam compatdata directories across libraries",
		EnableShellCompletion: true,
		Flags:                 flags,
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			noColor := noColorFlag || !tui.IsTTY()
			console.SetNoColor(noColor)
			printer.SetNoColor(noColor)

			if path := cmd.String("steam-path"); path != "" {
				cfg.SteamPath = path
			}
			if err := cfg.Validate(); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return analyze.RunAnalyze(ctx, cmd, cfg)
		},
		Commands: []*urfavecli.Command{
			analyze.Run(cfg),
			libraries.Run(cfg),
			runtimes.Run(cfg),
		},
	}
}
