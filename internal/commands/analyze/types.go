package analyze

import "compatscan/internal/tui"

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	Confirm(title, description string) (bool, error)
}

// TUIPrompter implements Prompter using the tui package.
type TUIPrompter struct{}

// NewPrompter creates a new TUIPrompter.
func NewPrompter() Prompter {
	return &TUIPrompter{}
}

// Confirm shows a yes/no confirmation prompt.
func (p *TUIPrompter) Confirm(title, description string) (bool, error) {
	return tui.Confirm(title, description)
}

// OutputFormat controls how the report is displayed.
type OutputFormat string

const (
	// FormatText outputs human-readable text, streamed entry by entry.
	FormatText OutputFormat = "text"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON OutputFormat = "json"

	// FormatTable outputs tabular data.
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat converts a string to OutputFormat.
func ParseOutputFormat(s string) OutputFormat {
	switch s {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// Entry is one analyzed compatdata directory.
type Entry struct {
	// AppID is the application the compatdata directory belongs to.
	AppID uint32

	// Path is the compatdata directory location.
	Path string

	// Name is the resolved display name. When the store reported
	// success=false it is "Unknown Application".
	Name string

	// Fetched is true when a name resolution was attempted and produced
	// data; false means the lookup failed outright.
	Fetched bool

	// Skipped is true when no lookup was attempted (offline mode).
	Skipped bool

	// Success mirrors the store's success field; always true for
	// known-runtime table hits.
	Success bool

	// Runtime is true when the app is a known compatibility runtime.
	Runtime bool

	// Installed is true when any discovered library has the app installed.
	Installed bool
}

// Report is the complete analysis result for one run.
type Report struct {
	// SteamRoot is the installation root the run used.
	SteamRoot string

	// LibraryPaths are the discovered library roots, root first.
	LibraryPaths []string

	// Entries are the analyzed compatdata directories across all libraries.
	Entries []Entry
}

// RuntimesFound returns the entries that are known compatibility runtimes.
func (r *Report) RuntimesFound() []Entry {
	var found []Entry
	for _, e := range r.Entries {
		if e.Runtime {
			found = append(found, e)
		}
	}
	return found
}

// InstalledCount returns how many entries belong to installed apps.
func (r *Report) InstalledCount() int {
	n := 0
	for _, e := range r.Entries {
		if e.Installed {
			n++
		}
	}
	return n
}
