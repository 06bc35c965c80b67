package vdf

import (
	"strconv"
	"strings"
)

// AppIDs extracts the set of application IDs listed in the "apps" section
// of a libraryfolders.vdf manifest.
//
// The format is brace-delimited with one quoted key/value pair per line.
// A single pass tracks whether the scanner is inside the "apps" section:
// a line whose trimmed content is exactly `"apps"` opens it, a lone
// closing brace closes it. Inside the section, the first quoted field of
// each line is taken as the key and kept when it parses as a base-10
// uint32. Everything else is ignored; malformed lines are not an error.
// At most one "apps" section per manifest is assumed.
func AppIDs(data []byte) map[uint32]struct{} {
	apps := make(map[uint32]struct{})
	inApps := false

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == `"apps"` {
			inApps = true
			continue
		}

		if inApps && trimmed == "}" {
			inApps = false
			continue
		}

		if inApps && strings.HasPrefix(trimmed, `"`) {
			fields := strings.Split(trimmed, `"`)
			if len(fields) > 1 {
				if id, err := strconv.ParseUint(fields[1], 10, 32); err == nil {
					apps[uint32(id)] = struct{}{}
				}
			}
		}
	}

	return apps
}

// LibraryPaths extracts additional library paths declared in a
// libraryfolders.vdf manifest, in manifest order.
//
// A line whose trimmed content starts with `"path"` carries the candidate
// path as the second quoted field (index 3 after splitting on quotes). A
// lone closing brace is the record boundary for one library-folder entry
// and emits the pending candidate. No filesystem checks happen here.
func LibraryPaths(data []byte) []string {
	var paths []string
	current := ""

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, `"path"`) {
			fields := strings.Split(trimmed, `"`)
			if len(fields) > 3 {
				current = fields[3]
			}
		}

		if trimmed == "}" && current != "" {
			paths = append(paths, current)
			current = ""
		}
	}

	return paths
}
