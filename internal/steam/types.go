package steam

// Library is one filesystem root under which Steam installs applications.
// It is created during discovery and not mutated afterwards.
type Library struct {
	// Path is the library root directory.
	Path string

	// InstalledApps is the set of installed application IDs declared by
	// the library's manifest. It may be empty but is never nil.
	InstalledApps map[uint32]struct{}
}

// Installed reports whether the given application is installed in this library.
func (l Library) Installed(appID uint32) bool {
	_, ok := l.InstalledApps[appID]
	return ok
}

// CompatEntry is one discovered compatibility-data directory, named by the
// application ID it belongs to.
type CompatEntry struct {
	// Path is the full path of the compatdata subdirectory.
	Path string

	// AppID is the application ID parsed from the directory name.
	AppID uint32
}

// MergeInstalled returns the union of the installed-app sets of all libraries.
func MergeInstalled(libraries []Library) map[uint32]struct{} {
	all := make(map[uint32]struct{})
	for _, lib := range libraries {
		for id := range lib.InstalledApps {
			all[id] = struct{}{}
		}
	}
	return all
}
