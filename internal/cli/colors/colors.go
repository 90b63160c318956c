// Package colors provides pre-configured color functions for CLI output.
package colors

import "github.com/fatih/color"

//nolint:gochecknoglobals // Immutable color definitions initialized at package load
var (
	// Warning formats text in yellow for warning messages.
	Warning = color.New(color.FgYellow).SprintFunc()

	// Error formats text in red for error messages.
	Error = color.New(color.FgRed).SprintFunc()

	// Success formats text in green for success messages.
	Success = color.New(color.FgGreen).SprintFunc()

	// Info formats text in cyan for informational messages.
	Info = color.New(color.FgCyan).SprintFunc()

	// FieldLabel formats field labels (e.g., "Source:", "Proxy:") in cyan.
	FieldLabel = color.New(color.FgCyan).SprintFunc()

	// Enabled formats an enabled window flag in green.
	Enabled = color.New(color.FgGreen).SprintFunc()

	// Disabled formats a disabled window flag in faint text.
	Disabled = color.New(color.Faint).SprintFunc()

	// ScriptName formats init script names in yellow.
	ScriptName = color.New(color.FgYellow).SprintFunc()
)
