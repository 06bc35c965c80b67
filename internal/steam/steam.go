package steam

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"compatscan/internal/core"
	"compatscan/internal/vdf"
)

// manifestRelPath is the library manifest location relative to a library root.
const manifestRelPath = "steamapps/libraryfolders.vdf"

// compatDataRelPath is the compatibility-data location relative to a library root.
const compatDataRelPath = "steamapps/compatdata"

// reservedCompatDir is the compatdata directory name Steam reserves for
// non-app state; it is never a valid entry.
const reservedCompatDir = "0"

// Service discovers Steam libraries, installed-app sets and compatibility
// data directories.
type Service struct {
	fs core.FileSystem
}

// NewService creates a discovery Service over the given filesystem.
func NewService(fs core.FileSystem) *Service {
	return &Service{fs: fs}
}

// DetectRoot resolves the Steam installation root under the given home
// directory. The sandboxed Flatpak location is preferred when it exists;
// otherwise the standard location is returned, whether or not it exists
// (a missing root surfaces later as a fatal manifest read error).
func (s *Service) DetectRoot(ctx context.Context, home string) string {
	flatpak := filepath.Join(home, ".var/app/com.valvesoftware.Steam/.local/share/Steam")
	if _, err := s.fs.Stat(ctx, flatpak); err == nil {
		return flatpak
	}
	return filepath.Join(home, ".local/share/Steam")
}

// ResolveRoot picks the Steam root for a run: an explicit override wins,
// otherwise the root is detected under $HOME. An unset HOME with no
// override is fatal for the whole run.
func ResolveRoot(ctx context.Context, svc *Service, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	home, err := core.HomeDir()
	if err != nil {
		return "", err
	}
	return svc.DetectRoot(ctx, home), nil
}

// Libraries returns the root library plus every additional library declared
// in the root's manifest, in manifest order.
//
// A declared path is kept when it exists on disk and differs from the root.
// A failure to read the root manifest is fatal; a failure to read an
// additional library's own manifest degrades that library to an empty
// installed set.
func (s *Service) Libraries(ctx context.Context, root string) ([]Library, error) {
	manifestPath := filepath.Join(root, manifestRelPath)
	data, err := s.fs.ReadFile(ctx, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read library manifest %q: %w", manifestPath, err)
	}

	libraries := []Library{{
		Path:          root,
		InstalledApps: vdf.AppIDs(data),
	}}

	for _, path := range vdf.LibraryPaths(data) {
		if path == root {
			continue
		}
		if _, err := s.fs.Stat(ctx, path); err != nil {
			continue
		}
		libraries = append(libraries, Library{
			Path:          path,
			InstalledApps: s.InstalledApps(ctx, filepath.Join(path, manifestRelPath)),
		})
	}

	return libraries, nil
}

// InstalledApps reads the installed-app ID set from the given manifest.
// A manifest that cannot be read yields an empty set, not an error.
func (s *Service) InstalledApps(ctx context.Context, manifestPath string) map[uint32]struct{} {
	data, err := s.fs.ReadFile(ctx, manifestPath)
	if err != nil {
		return make(map[uint32]struct{})
	}
	return vdf.AppIDs(data)
}

// ScanCompatData lists the compatibility-data directories under the given
// library root. Directory names must parse as a base-10 uint32; the
// reserved name "0" and non-numeric names are skipped. A missing or
// unreadable compatdata directory is the normal "no compatibility data"
// case and yields an empty slice.
func (s *Service) ScanCompatData(ctx context.Context, libraryRoot string) []CompatEntry {
	compatDir := filepath.Join(libraryRoot, compatDataRelPath)

	entries, err := s.fs.ReadDir(ctx, compatDir)
	if err != nil {
		return nil
	}

	var found []CompatEntry
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || name == reservedCompatDir {
			continue
		}
		id, err := strconv.ParseUint(name, 10, 32)
		if err != nil {
			continue
		}
		found = append(found, CompatEntry{
			Path:  filepath.Join(compatDir, name),
			AppID: uint32(id),
		})
	}

	return found
}
