// Package tui provides the small amount of terminal interactivity
// compatscan has: environment detection, a confirm prompt, and a spinner
// wrapper for long fetch phases.
package tui

import (
	"context"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// Confirm shows a yes/no confirmation prompt and returns the answer.
func Confirm(title, description string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// WithSpinner runs action behind a spinner with the given title. In
// non-interactive environments the action runs directly with no spinner.
func WithSpinner(ctx context.Context, title string, action func()) error {
	if !IsInteractive() {
		action()
		return nil
	}
	return spinner.New().
		Title(title).
		Context(ctx).
		Action(action).
		Run()
}
