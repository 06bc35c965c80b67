package analyze

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"compatscan/internal/printer"
)

// Formatter handles display of analysis reports.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatReport formats the report for display.
func (f *Formatter) FormatReport(report *Report) string {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(report)
	case FormatTable:
		return f.formatTable(report)
	default:
		return f.formatText(report)
	}
}

// PrintReport prints the formatted report to stdout.
func (f *Formatter) PrintReport(report *Report) {
	fmt.Print(f.FormatReport(report))
}

// EntryLine renders one report entry in the fixed-column report shape.
func EntryLine(e Entry) string {
	return fmt.Sprintf("AppID %s | %-50s | %s",
		printer.Accent(fmt.Sprintf("%7d", e.AppID)),
		entryName(e),
		installedStatus(e),
	)
}

func entryName(e Entry) string {
	switch {
	case e.Skipped:
		return printer.Faint("(lookup skipped)")
	case !e.Fetched:
		return printer.Error("Failed to fetch app info")
	case !e.Success:
		return printer.Error(e.Name)
	case e.Runtime:
		return printer.Info(e.Name)
	default:
		return e.Name
	}
}

func installedStatus(e Entry) string {
	if e.Installed {
		return printer.Success("INSTALLED")
	}
	return printer.Warning("NOT INSTALLED")
}

// formatText renders the full human-readable report: header, entry lines,
// runtime section and summary.
func (f *Formatter) formatText(report *Report) string {
	var sb strings.Builder

	sb.WriteString(printer.Bold(printer.Success("Steam Compatdata Analyzer")))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Using Steam path: %s\n\n", printer.Accent(report.SteamRoot))
	fmt.Fprintf(&sb, "Found %d Steam libraries.\n\n", len(report.LibraryPaths))

	sb.WriteString(printer.Bold("Analyzing compatdata directories..."))
	sb.WriteString("\n")
	sb.WriteString(printer.Bold("==================================="))
	sb.WriteString("\n")
	for _, e := range report.Entries {
		sb.WriteString(EntryLine(e))
		sb.WriteString("\n")
	}

	sb.WriteString(formatTrailer(report))
	return sb.String()
}

// formatTrailer renders everything after the entry lines: the runtimes
// section (when any known runtime was seen) and the closing summary.
func formatTrailer(report *Report) string {
	var sb strings.Builder

	if runtimes := report.RuntimesFound(); len(runtimes) > 0 {
		sb.WriteString("\n")
		sb.WriteString(printer.Bold(printer.Info("Compatibility Runtimes Found:")))
		sb.WriteString("\n")
		sb.WriteString(printer.Bold("============================="))
		sb.WriteString("\n")
		for _, e := range runtimes {
			fmt.Fprintf(&sb, "%-40s | AppID: %s\n",
				printer.Info(e.Name), printer.Accent(fmt.Sprintf("%d", e.AppID)))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(summaryLine(report))
	sb.WriteString("\n")
	sb.WriteString(printer.Bold(printer.Success("Analysis complete!")))
	sb.WriteString("\n")
	return sb.String()
}

// summaryLine returns the one-line run summary.
func summaryLine(report *Report) string {
	installed := report.InstalledCount()
	leftover := len(report.Entries) - installed
	parts := []string{
		fmt.Sprintf("%d compatdata entries", len(report.Entries)),
		fmt.Sprintf("%d installed", installed),
	}
	if leftover > 0 {
		parts = append(parts, printer.Warning(fmt.Sprintf("%d leftover", leftover)))
	}
	if runtimes := report.RuntimesFound(); len(runtimes) > 0 {
		parts = append(parts, fmt.Sprintf("%d runtimes", len(runtimes)))
	}
	return "Found: " + strings.Join(parts, ", ")
}

// printQuietSummary prints a minimal summary of the report.
func printQuietSummary(report *Report) {
	fmt.Printf("Libraries: %d | Entries: %d | Installed: %d | Runtimes: %d\n",
		len(report.LibraryPaths), len(report.Entries),
		report.InstalledCount(), len(report.RuntimesFound()))
}

// formatTable renders the report as fixed-width tables.
func (f *Formatter) formatTable(report *Report) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(printer.Info("Compatdata Analysis"))
	sb.WriteString("\n\n")

	sb.WriteString("Libraries:\n")
	fmt.Fprintf(&sb, "%-50s\n", "PATH")
	sb.WriteString(strings.Repeat("-", 50) + "\n")
	for _, p := range report.LibraryPaths {
		fmt.Fprintf(&sb, "%-50s\n", p)
	}
	sb.WriteString("\n")

	if len(report.Entries) > 0 {
		sb.WriteString("Compatdata Entries:\n")
		fmt.Fprintf(&sb, "%-10s %-40s %-15s %-10s\n", "APPID", "NAME", "STATUS", "RUNTIME")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, e := range report.Entries {
			name := e.Name
			switch {
			case e.Skipped:
				name = "(lookup skipped)"
			case !e.Fetched:
				name = "(fetch failed)"
			}
			status := "leftover"
			if e.Installed {
				status = "installed"
			}
			runtime := ""
			if e.Runtime {
				runtime = "yes"
			}
			fmt.Fprintf(&sb, "%-10d %-40s %-15s %-10s\n", e.AppID, name, status, runtime)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(summaryLine(report))
	sb.WriteString("\n")
	return sb.String()
}

// formatJSON renders the report as JSON.
func (f *Formatter) formatJSON(report *Report) string {
	type jsonEntry struct {
		AppID     uint32 `json:"appid"`
		Name      string `json:"name,omitempty"`
		Path      string `json:"path"`
		Installed bool   `json:"installed"`
		Fetched   bool   `json:"fetched"`
		Skipped   bool   `json:"skipped,omitempty"`
		Success   bool   `json:"success"`
		Runtime   bool   `json:"runtime"`
	}

	output := struct {
		SteamRoot string      `json:"steam_root"`
		Libraries []string    `json:"libraries"`
		Entries   []jsonEntry `json:"entries"`
		Summary   struct {
			EntryCount     int `json:"entry_count"`
			InstalledCount int `json:"installed_count"`
			RuntimeCount   int `json:"runtime_count"`
		} `json:"summary"`
	}{
		SteamRoot: report.SteamRoot,
		Libraries: report.LibraryPaths,
		Entries:   make([]jsonEntry, len(report.Entries)),
	}

	for i, e := range report.Entries {
		output.Entries[i] = jsonEntry{
			AppID:     e.AppID,
			Name:      e.Name,
			Path:      e.Path,
			Installed: e.Installed,
			Fetched:   e.Fetched,
			Skipped:   e.Skipped,
			Success:   e.Success,
			Runtime:   e.Runtime,
		}
	}

	output.Summary.EntryCount = len(report.Entries)
	output.Summary.InstalledCount = report.InstalledCount()
	output.Summary.RuntimeCount = len(report.RuntimesFound())

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
		return ""
	}

	return string(data) + "\n"
}
