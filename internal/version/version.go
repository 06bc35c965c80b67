package version

// version is the current compatscan release. It can be overridden at build
// time via -ldflags "-X compatscan/internal/version.version=x.y.z".
var version = "0.2.0"

// GetVersion returns the current version string without a "v" prefix.
func GetVersion() string {
	return version
}
