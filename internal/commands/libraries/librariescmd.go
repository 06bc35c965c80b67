// Package libraries implements the compatscan libraries command, which
// lists the discovered Steam libraries and their installed-app counts.
package libraries

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"compatscan/internal/config"
	"compatscan/internal/core"
	"compatscan/internal/printer"
	"compatscan/internal/steam"
	"github.com/urfave/cli/v3"
)

// Run returns the "libraries" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "libraries",
		Aliases: []string{"libs"},
		Usage:   "List discovered Steam libraries and their installed apps",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json",
				Value:   "text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runLibraries(ctx, cmd, cfg)
		},
	}
}

func runLibraries(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	svc := steam.NewService(core.NewOSFileSystem())

	root, err := steam.ResolveRoot(ctx, svc, cfg.SteamPath)
	if err != nil {
		return err
	}

	libraries, err := svc.Libraries(ctx, root)
	if err != nil {
		return err
	}

	if cmd.String("format") == "json" {
		return printJSON(root, libraries)
	}
	printText(root, libraries)
	return nil
}

func printText(root string, libraries []steam.Library) {
	fmt.Printf("Steam root: %s\n\n", printer.Accent(root))
	for _, lib := range libraries {
		fmt.Printf("%s\n", printer.Bold(lib.Path))
		printer.PrintFaint(fmt.Sprintf("  %d installed apps", len(lib.InstalledApps)))
	}
	fmt.Printf("\n%d libraries total.\n", len(libraries))
}

func printJSON(root string, libraries []steam.Library) error {
	type jsonLibrary struct {
		Path          string   `json:"path"`
		InstalledApps []uint32 `json:"installed_apps"`
	}

	output := struct {
		SteamRoot string        `json:"steam_root"`
		Libraries []jsonLibrary `json:"libraries"`
	}{
		SteamRoot: root,
		Libraries: make([]jsonLibrary, len(libraries)),
	}

	for i, lib := range libraries {
		apps := make([]uint32, 0, len(lib.InstalledApps))
		for id := range lib.InstalledApps {
			apps = append(apps, id)
		}
		sort.Slice(apps, func(a, b int) bool { return apps[a] < apps[b] })
		output.Libraries[i] = jsonLibrary{Path: lib.Path, InstalledApps: apps}
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format libraries as JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
