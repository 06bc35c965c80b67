package analyze

import (
	"context"
	"fmt"
	"time"

	"compatscan/internal/catalog"
	"compatscan/internal/config"
	"compatscan/internal/core"
	"compatscan/internal/printer"
	"compatscan/internal/steam"
	"compatscan/internal/tui"
	"github.com/urfave/cli/v3"
)

// confirmThreshold is the entry count above which an interactive run asks
// before issuing that many sequential store requests.
const confirmThreshold = 25

// Run returns the "analyze" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"scan"},
		Usage:   "Analyze compatdata directories across all Steam libraries",
		UsageText: `compatscan analyze [options]

Discovers the Steam installation and every library it declares, lists the
per-application compatdata directories left behind by compatibility
runtimes, and annotates each with its display name and installed state.`,
		Flags: Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return RunAnalyze(ctx, cmd, cfg)
		},
	}
}

// Flags returns the analyze flag set. The root command shares it so that a
// bare "compatscan" invocation behaves like "compatscan analyze".
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: text, json, table",
			Value:   "text",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Only show the summary line",
		},
		&cli.BoolFlag{
			Name:  "offline",
			Usage: "Skip store lookups (known runtimes still resolve)",
		},
		&cli.BoolFlag{
			Name:  "no-interactive",
			Usage: "Skip interactive prompts",
		},
		&cli.DurationFlag{
			Name:  "delay",
			Usage: "Pause between store lookups",
		},
	}
}

// RunAnalyze executes the analyze command.
func RunAnalyze(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	fs := core.NewOSFileSystem()
	svc := steam.NewService(fs)
	client := catalog.New(nil, cfg.CatalogURL, cfg.Runtimes)

	opts := optionsFromCmd(cmd, cfg)
	return runAnalysis(ctx, svc, client, cfg, opts)
}

// options collects the per-run knobs of the analysis.
type options struct {
	format  OutputFormat
	quiet   bool
	offline bool
	prompt  Prompter // nil disables the confirm prompt
	delay   time.Duration
}

func optionsFromCmd(cmd *cli.Command, cfg *config.Config) options {
	opts := options{
		format:  ParseOutputFormat(cmd.String("format")),
		quiet:   cmd.Bool("quiet"),
		offline: cmd.Bool("offline"),
		delay:   cfg.RequestDelay,
	}
	if d := cmd.Duration("delay"); d > 0 {
		opts.delay = d
	}
	if !cmd.Bool("no-interactive") && tui.IsInteractive() {
		opts.prompt = NewPrompter()
	}
	return opts
}

func runAnalysis(ctx context.Context, svc *steam.Service, client *catalog.Client, cfg *config.Config, opts options) error {
	root, err := steam.ResolveRoot(ctx, svc, cfg.SteamPath)
	if err != nil {
		return err
	}

	streaming := opts.format == FormatText && !opts.quiet

	var onEntry func(Entry)
	if streaming {
		onEntry = func(e Entry) { fmt.Println(EntryLine(e)) }
	}

	report, err := buildReport(ctx, svc, client, root, opts, onEntry)
	if err != nil {
		return err
	}

	if opts.quiet {
		printQuietSummary(report)
		return nil
	}
	if streaming {
		// Entry lines were already streamed; finish with the runtime
		// section and summary.
		fmt.Print(formatTrailer(report))
		return nil
	}
	NewFormatter(opts.format).PrintReport(report)
	return nil
}

// buildReport discovers libraries, scans compatdata and resolves names,
// producing the full report. When onEntry is non-nil it is invoked for each
// entry as it is resolved (the streaming text mode) and the discovery
// progress lines are printed; otherwise the fetch loop runs behind a
// spinner in interactive environments.
func buildReport(ctx context.Context, svc *steam.Service, client *catalog.Client, root string, opts options, onEntry func(Entry)) (*Report, error) {
	streaming := onEntry != nil
	if streaming {
		printer.PrintBold(printer.Success("Steam Compatdata Analyzer"))
		fmt.Printf("Using Steam path: %s\n\n", printer.Accent(root))
	}

	libraries, err := svc.Libraries(ctx, root)
	if err != nil {
		return nil, err
	}
	if streaming {
		fmt.Printf("Found %d Steam libraries.\n", len(libraries))
		for _, lib := range libraries {
			printer.PrintFaint(fmt.Sprintf("  %s (%d installed apps)", lib.Path, len(lib.InstalledApps)))
		}
		fmt.Println()
	}

	installed := steam.MergeInstalled(libraries)

	var pending []steam.CompatEntry
	for _, lib := range libraries {
		pending = append(pending, svc.ScanCompatData(ctx, lib.Path)...)
	}

	if !opts.offline && opts.prompt != nil && len(pending) > confirmThreshold {
		ok, err := opts.prompt.Confirm(
			fmt.Sprintf("Fetch names for %d applications?", len(pending)),
			"One sequential store request per entry, rate limited; this may take a while.",
		)
		if err != nil {
			return nil, err
		}
		if !ok {
			opts.offline = true
		}
	}

	report := &Report{SteamRoot: root}
	for _, lib := range libraries {
		report.LibraryPaths = append(report.LibraryPaths, lib.Path)
	}

	if streaming {
		printer.PrintBold("Analyzing compatdata directories...")
		printer.PrintBold("===================================")
	}

	collect := func() {
		report.Entries = collectEntries(ctx, client, pending, installed, opts, onEntry)
	}
	if streaming || opts.offline {
		collect()
	} else {
		title := fmt.Sprintf("Fetching names for %d applications...", len(pending))
		if err := tui.WithSpinner(ctx, title, collect); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return report, nil
}

// collectEntries resolves every pending compatdata entry, pausing between
// store requests. The pause is context-aware so interrupts are honored
// between requests; cancellation stops the loop early.
func collectEntries(ctx context.Context, client *catalog.Client, pending []steam.CompatEntry, installed map[uint32]struct{}, opts options, onEntry func(Entry)) []Entry {
	entries := make([]Entry, 0, len(pending))

	for _, c := range pending {
		if ctx.Err() != nil {
			break
		}

		_, isInstalled := installed[c.AppID]
		entry := Entry{
			AppID:     c.AppID,
			Path:      c.Path,
			Installed: isInstalled,
		}
		if _, ok := client.RuntimeName(c.AppID); ok {
			entry.Runtime = true
		}

		hitNetwork := false
		if opts.offline && !entry.Runtime {
			entry.Skipped = true
		} else {
			result, err := client.Lookup(ctx, c.AppID)
			if err == nil {
				entry.Fetched = true
				entry.Success = result.Success
				entry.Name = result.Name
			}
			hitNetwork = !result.FromTable
		}

		entries = append(entries, entry)
		if onEntry != nil {
			onEntry(entry)
		}

		// Crude self-imposed rate limit against the store endpoint;
		// table hits and skipped entries cost nothing.
		if hitNetwork {
			if err := sleepCtx(ctx, opts.delay); err != nil {
				break
			}
		}
	}

	return entries
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
