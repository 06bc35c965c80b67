// Package console controls process-wide color output for compatscan.
package console

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var noColor bool

// SetNoColor forces the ASCII color profile for all lipgloss rendering
// when enabled, restoring the detected terminal profile otherwise.
func SetNoColor(v bool) {
	noColor = v
	if v {
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		lipgloss.SetColorProfile(termenv.ColorProfile())
	}
}

// NoColor reports whether color output is disabled.
func NoColor() bool {
	return noColor
}
