// Package executor resolves one raw input line to either a built-in
// command or an external program on PATH.
//
// Resolution order is fixed: trim, built-in registry, PATH lookup.
// Built-ins never fall through to delegation, even when they fail.
// External programs run synchronously with their output captured and
// forwarded verbatim; a non-zero exit from a program that did run is not
// a shell error. There is no timeout: an unresponsive external program
// blocks the shell until it exits (a documented limitation of this
// core).
package executor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/google/shlex"

	"github.com/gosh-shell/gosh/internal/command"
	"github.com/gosh-shell/gosh/internal/constants"
	"github.com/gosh-shell/gosh/internal/logging"
)

// Executor dispatches input lines against a command registry with
// external program fallback.
type Executor struct {
	registry *command.Registry
	logger   *logging.Logger
	stdout   io.Writer
	stderr   io.Writer

	// spin shows a wait indicator on stderr while an external program
	// runs. Enabled only when stderr is a terminal.
	spin bool
}

// New creates an Executor writing to the process streams. Pass nil for
// the default logger.
func New(registry *command.Registry, logger *logging.Logger) *Executor {
	if logger == nil {
		logger = logging.DefaultLogger
	}
	return &Executor{
		registry: registry,
		logger:   logger,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// SetOutput redirects the executor's output streams (tests).
func (e *Executor) SetOutput(stdout, stderr io.Writer) {
	e.stdout = stdout
	e.stderr = stderr
}

// EnableSpinner toggles the external-command wait indicator.
func (e *Executor) EnableSpinner(enabled bool) {
	e.spin = enabled
}

// ExecuteLine resolves and runs one raw input line. An empty line after
// trimming is a no-op. The first token is the command name, the rest are
// its arguments.
func (e *Executor) ExecuteLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	tokens := splitLine(line)
	if len(tokens) == 0 {
		return
	}
	name, args := tokens[0], tokens[1:]

	if e.registry.Execute(name, args) {
		e.logger.Debug("handled by built-in", logging.Fields{"command": name})
		return
	}
	e.runExternal(name, args)
}

// splitLine tokenizes a line, honoring shell-style quoting. On a shlex
// error (e.g. an unbalanced quote) it degrades to plain whitespace
// splitting rather than rejecting the line.
func splitLine(line string) []string {
	tokens, err := shlex.Split(line)
	if err != nil || len(tokens) == 0 {
		return strings.Fields(line)
	}
	return tokens
}

// runExternal resolves name on PATH and runs it, forwarding captured
// stdout and stderr verbatim.
func (e *Executor) runExternal(name string, args []string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(e.stderr, "%s: command not found: %s\n", constants.ShellName, name)
		if suggestion, ok := e.registry.Suggest(name); ok {
			fmt.Fprintf(e.stderr, "did you mean %q?\n", suggestion)
		}
		e.logger.Debug("command not found", logging.Fields{"command": name})
		return
	}

	cmd := exec.Command(path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	stop := e.startSpinner(name)
	runErr := cmd.Run()
	stop()

	// Forward whatever the program produced, in stream order, before
	// judging the error.
	if stdout.Len() > 0 {
		io.Copy(e.stdout, &stdout)
	}
	if stderr.Len() > 0 {
		io.Copy(e.stderr, &stderr)
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			// The program ran and chose its exit code; its own error
			// output was already forwarded.
			e.logger.Debug("external command exited", logging.Fields{"command": name, "code": exitErr.ExitCode()})
			return
		}
		fmt.Fprintf(e.stderr, "%s: failed to run %s: %v\n", constants.ShellName, name, runErr)
		return
	}
	e.logger.Debug("external command exited", logging.Fields{"command": name, "code": 0})
}

// startSpinner starts the wait indicator when enabled and returns the
// function that stops it. The indicator always stops before any command
// output is forwarded.
func (e *Executor) startSpinner(name string) func() {
	if !e.spin {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 120*time.Millisecond, spinner.WithWriter(e.stderr))
	s.Suffix = " " + name
	s.Start()
	return s.Stop
}
