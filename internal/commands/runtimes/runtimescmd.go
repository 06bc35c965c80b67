// Package runtimes implements the compatscan runtimes command, an offline
// report of the known compatibility runtimes present on disk.
package runtimes

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"compatscan/internal/catalog"
	"compatscan/internal/config"
	"compatscan/internal/core"
	"compatscan/internal/printer"
	"compatscan/internal/steam"
	"github.com/urfave/cli/v3"
)

// RuntimeStatus describes one known runtime and whether a compatdata
// directory for it exists in any discovered library.
type RuntimeStatus struct {
	AppID   uint32 `json:"appid"`
	Name    string `json:"name"`
	Present bool   `json:"present"`
	Path    string `json:"path,omitempty"`
}

// Run returns the "runtimes" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "runtimes",
		Usage: "Report known compatibility runtimes found on disk",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Include known runtimes with no compatdata directory",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runRuntimes(ctx, cmd, cfg)
		},
	}
}

func runRuntimes(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	svc := steam.NewService(core.NewOSFileSystem())
	client := catalog.New(nil, cfg.CatalogURL, cfg.Runtimes)

	root, err := steam.ResolveRoot(ctx, svc, cfg.SteamPath)
	if err != nil {
		return err
	}

	libraries, err := svc.Libraries(ctx, root)
	if err != nil {
		return err
	}

	statuses := CollectStatuses(ctx, svc, client, libraries)
	if !cmd.Bool("all") {
		statuses = presentOnly(statuses)
	}

	if cmd.String("format") == "json" {
		return printJSON(statuses)
	}
	printText(statuses)
	return nil
}

// CollectStatuses resolves the on-disk presence of every known runtime.
// No network requests are made; everything comes from the runtime table
// and the compatdata directory listings.
func CollectStatuses(ctx context.Context, svc *steam.Service, client *catalog.Client, libraries []steam.Library) []RuntimeStatus {
	paths := make(map[uint32]string)
	for _, lib := range libraries {
		for _, entry := range svc.ScanCompatData(ctx, lib.Path) {
			if _, ok := paths[entry.AppID]; !ok {
				paths[entry.AppID] = entry.Path
			}
		}
	}

	known := client.Runtimes()
	statuses := make([]RuntimeStatus, 0, len(known))
	for id, name := range known {
		status := RuntimeStatus{AppID: id, Name: name}
		if path, ok := paths[id]; ok {
			status.Present = true
			status.Path = path
		}
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(a, b int) bool { return statuses[a].AppID < statuses[b].AppID })
	return statuses
}

func presentOnly(statuses []RuntimeStatus) []RuntimeStatus {
	var found []RuntimeStatus
	for _, s := range statuses {
		if s.Present {
			found = append(found, s)
		}
	}
	return found
}

func printText(statuses []RuntimeStatus) {
	if len(statuses) == 0 {
		fmt.Println("No known compatibility runtimes found.")
		return
	}
	for _, s := range statuses {
		marker := printer.Faint("absent")
		if s.Present {
			marker = printer.Success("present")
		}
		fmt.Printf("%-40s | AppID: %s | %s\n",
			printer.Info(s.Name), printer.Accent(fmt.Sprintf("%d", s.AppID)), marker)
		if s.Path != "" {
			printer.PrintFaint("  " + s.Path)
		}
	}
}

func printJSON(statuses []RuntimeStatus) error {
	data, err := json.MarshalIndent(statuses, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format runtimes as JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
