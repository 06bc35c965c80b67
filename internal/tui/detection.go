package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvVars are environment variables whose presence indicates a CI/CD
// environment where prompts must never block.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"JENKINS_HOME",
	"BUILDKITE",
	"TF_BUILD",
}

// IsInteractive reports whether the current environment supports
// interactive prompts: stdout must be a terminal and no CI environment
// variable may be set. Prompts and spinners are skipped otherwise.
func IsInteractive() bool {
	if !IsTTY() {
		return false
	}
	for _, env := range ciEnvVars {
		if os.Getenv(env) != "" {
			return false
		}
	}
	return true
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}
