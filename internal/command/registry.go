package command

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gosh-shell/gosh/internal/constants"
	"github.com/gosh-shell/gosh/internal/prompt"
)

// Registry maps command names (and aliases) to built-in commands. It is
// assembled once before the REPL starts and is not mutated afterwards.
type Registry struct {
	commands map[string]Command
	aliases  map[string]string // alias -> canonical name
	stderr   io.Writer
}

// NewRegistry creates an empty registry. Command errors are printed to
// stderr; pass nil for os.Stderr.
func NewRegistry(stderr io.Writer) *Registry {
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Registry{
		commands: make(map[string]Command),
		aliases:  make(map[string]string),
		stderr:   stderr,
	}
}

// NewDefaultRegistry builds the registry of all built-in commands.
// State-aware commands (theme) share the given prompt. Normal command
// output goes to stdout, errors to stderr; nil writers default to the
// process streams. plainHelp disables help's markdown rendering.
func NewDefaultRegistry(p *prompt.Prompt, stdout, stderr io.Writer, plainHelp bool) (*Registry, error) {
	if stdout == nil {
		stdout = os.Stdout
	}
	r := NewRegistry(stderr)

	commands := []Command{
		&Hello{Out: stdout},
		&Clear{Out: stdout},
		&Cd{},
		&Theme{Out: stdout, Prompt: p},
	}
	for _, c := range commands {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	// help introspects the registry it lives in.
	if err := r.Register(&Help{Out: stdout, Registry: r, Plain: plainHelp}); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds a command under its name and aliases. Duplicate names or
// aliases are a startup error: the registry is built once, so a clash is
// a programming mistake and fails fast.
func (r *Registry) Register(cmd Command) error {
	name := cmd.Name()
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("duplicate command %q", name)
	}
	if canonical, exists := r.aliases[name]; exists {
		return fmt.Errorf("command %q clashes with alias of %q", name, canonical)
	}
	for _, alias := range cmd.Aliases() {
		if _, exists := r.commands[alias]; exists {
			return fmt.Errorf("alias %q of %q clashes with a command name", alias, name)
		}
		if canonical, exists := r.aliases[alias]; exists {
			return fmt.Errorf("alias %q of %q already registered for %q", alias, name, canonical)
		}
	}

	r.commands[name] = cmd
	for _, alias := range cmd.Aliases() {
		r.aliases[alias] = name
	}
	return nil
}

// Lookup resolves a name or alias to its command. Matching is exact and
// case-sensitive; there is no prefix or fuzzy matching.
func (r *Registry) Lookup(name string) (Command, bool) {
	if cmd, ok := r.commands[name]; ok {
		return cmd, true
	}
	if canonical, ok := r.aliases[name]; ok {
		return r.commands[canonical], true
	}
	return nil, false
}

// Execute dispatches to the matched command and reports whether a match
// existed. A matched command's error is printed to the registry's error
// writer; it never causes fall-through to external delegation.
func (r *Registry) Execute(name string, args []string) bool {
	cmd, ok := r.Lookup(name)
	if !ok {
		return false
	}
	if err := cmd.Execute(args); err != nil {
		fmt.Fprintf(r.stderr, "%s: %s: %v\n", constants.ShellName, cmd.Name(), err)
	}
	return true
}

// Names returns the sorted canonical command names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
