package libraries

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"compatscan/internal/steam"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return string(out)
}

func sampleLibraries() []steam.Library {
	return []steam.Library{
		{Path: "/steam", InstalledApps: map[uint32]struct{}{440: {}, 570: {}}},
		{Path: "/mnt/library", InstalledApps: map[uint32]struct{}{620: {}}},
	}
}

func TestPrintText(t *testing.T) {
	out := captureStdout(t, func() {
		printText("/steam", sampleLibraries())
	})

	for _, want := range []string{
		"Steam root: /steam",
		"/mnt/library",
		"2 installed apps",
		"1 installed apps",
		"2 libraries total.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\n%s", want, out)
		}
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureStdout(t, func() {
		if err := printJSON("/steam", sampleLibraries()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	var decoded struct {
		SteamRoot string `json:"steam_root"`
		Libraries []struct {
			Path          string   `json:"path"`
			InstalledApps []uint32 `json:"installed_apps"`
		} `json:"libraries"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	if decoded.SteamRoot != "/steam" {
		t.Errorf("steam_root = %q, want %q", decoded.SteamRoot, "/steam")
	}
	if len(decoded.Libraries) != 2 {
		t.Fatalf("len(libraries) = %d, want 2", len(decoded.Libraries))
	}
	apps := decoded.Libraries[0].InstalledApps
	if len(apps) != 2 || apps[0] != 440 || apps[1] != 570 {
		t.Errorf("installed_apps = %v, want sorted [440 570]", apps)
	}
}
