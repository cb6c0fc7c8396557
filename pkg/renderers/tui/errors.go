package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C) or declined to
	// correct the form.
	ErrAborted = errors.New("tui: aborted")
)
