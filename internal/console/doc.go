// Package console provides the interactive prompts and styled output used by
// the CLI.
//
// Console is the boundary consumed by requirements and command handlers. Huh
// renders prompts with charmbracelet/huh and output with lipgloss; when the
// session is not interactive every prompt resolves to its default value.
// Scripted replays canned answers and is meant for tests.
package console
