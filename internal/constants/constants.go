// Package constants provides shared constants used across the application
// to avoid circular dependencies between packages.
package constants

// Prompt appearance
const (
	// ShellName is the program name used in diagnostics and error prefixes
	ShellName = "gosh"
	// ShellLabel is the label segment rendered at the start of the prompt
	ShellLabel = "gosh>"
	// PromptSymbol is the separator rendered between the label and the path segment
	PromptSymbol = "•"
	// TimeLayout is the wall-clock format of the prompt's time segment
	TimeLayout = "15:04:05"
)

// Behavior defaults
const (
	// DefaultThemePath is where the theme file is looked up unless
	// overridden with --config
	DefaultThemePath = "config/theme.toml"
	// ExitSentinel is the literal input that terminates the shell
	ExitSentinel = "exit"
)
