// Package command implements the shell's built-in commands and the
// registry that dispatches them by name.
//
// Built-ins are resolved before any external program: a line whose first
// token matches a registered name (or alias) is handled here and never
// falls through to PATH delegation, even when the command itself fails.
package command

// Command is a single named built-in behavior.
//
// Execute performs the command's effect and returns an error only for
// user-visible failures (bad arguments, a failed chdir, a theme file
// that would not load). The registry prints the error; commands write
// their normal output to the writer they were constructed with.
type Command interface {
	// Name is the canonical invocation key, unique within the registry.
	Name() string

	// Description is a one-line summary shown by help.
	Description() string

	// Usage is the invocation syntax, e.g. "cd <path>".
	Usage() string

	// Aliases are alternative invocation keys, e.g. "cls" for clear.
	Aliases() []string

	// Execute runs the command with the remaining line tokens.
	Execute(args []string) error
}
