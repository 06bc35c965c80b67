package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

// chdir switches to a temp dir for the test so loadConfig never sees a
// developer's real .compatscan.yaml.
func chdir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
	return tmp
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := LoadConfigFn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SteamPath != "" {
		t.Errorf("SteamPath = %q, want empty", cfg.SteamPath)
	}
	if cfg.RequestDelay != DefaultRequestDelay {
		t.Errorf("RequestDelay = %v, want %v", cfg.RequestDelay, DefaultRequestDelay)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	chdir(t)

	yaml := `steam-path: /opt/steam
catalog-url: http://localhost:9999
request-delay: 50ms
runtimes:
  1161040: "Proton BattlEye Runtime"
`
	if err := os.WriteFile(ConfigFile, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SteamPath != "/opt/steam" {
		t.Errorf("SteamPath = %q, want %q", cfg.SteamPath, "/opt/steam")
	}
	if cfg.CatalogURL != "http://localhost:9999" {
		t.Errorf("CatalogURL = %q, want %q", cfg.CatalogURL, "http://localhost:9999")
	}
	if cfg.RequestDelay != 50*time.Millisecond {
		t.Errorf("RequestDelay = %v, want 50ms", cfg.RequestDelay)
	}
	if cfg.Runtimes[1161040] != "Proton BattlEye Runtime" {
		t.Errorf("Runtimes = %v, want entry for 1161040", cfg.Runtimes)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	chdir(t)

	if err := os.WriteFile(ConfigFile, []byte("steam-path: /opt/steam\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("COMPATSCAN_STEAM_PATH", "/env/steam")

	cfg, err := LoadConfigFn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SteamPath != "/env/steam" {
		t.Errorf("SteamPath = %q, want env override %q", cfg.SteamPath, "/env/steam")
	}
}

func TestLoadConfig_UnknownKeyRejected(t *testing.T) {
	chdir(t)

	if err := os.WriteFile(ConfigFile, []byte("steam-root: /opt/steam\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfigFn()
	if err == nil {
		t.Fatal("expected strict decode error for unknown key, got nil")
	}
	if !strings.Contains(err.Error(), ConfigFile) {
		t.Errorf("error %q does not name the config file", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{SteamPath: "../steam"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for path traversal, got nil")
	}

	cfg = &Config{SteamPath: "/opt/steam"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
