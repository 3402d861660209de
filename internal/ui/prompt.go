package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted by user")

// Confirm asks a yes/no question, defaulting to no.
func Confirm(title, description string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrAborted
		}
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return ok, nil
}

// SelectEntry lets the user pick one of names.
func SelectEntry(title string, names []string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("nothing to select")
	}

	var picked string
	err := huh.NewSelect[string]().
		Title(title).
		Options(EntryOptions(names)...).
		Value(&picked).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("selection prompt failed: %w", err)
	}
	return picked, nil
}

// EntryOptions builds picker options, newest entry first.
func EntryOptions(names []string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(names))
	for i := len(names) - 1; i >= 0; i-- {
		options = append(options, huh.NewOption(names[i], names[i]))
	}
	return options
}
