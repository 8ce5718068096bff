package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (Ctrl+C) or declined to submit.
	ErrAborted = errors.New("tui: aborted")
	// ErrLoadFailed is returned when the controller could not load its data.
	ErrLoadFailed = errors.New("tui: reference data unavailable")
	// ErrAccessDenied is returned when the access check leaves the
	// questionnaire locked.
	ErrAccessDenied = errors.New("tui: questionnaire locked")
)
