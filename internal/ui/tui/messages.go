// Package tui provides a Bubble Tea progress display for resource creation
// calls.
package tui

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries the error of the wrapped call.
type ErrMsg struct{ Err error }

// DoneMsg signals that the wrapped call succeeded.
type DoneMsg struct{}
