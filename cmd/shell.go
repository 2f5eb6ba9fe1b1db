package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	goprompt "github.com/elk-language/go-prompt"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/gosh-shell/gosh/internal/command"
	"github.com/gosh-shell/gosh/internal/constants"
	"github.com/gosh-shell/gosh/internal/executor"
	"github.com/gosh-shell/gosh/internal/logging"
	"github.com/gosh-shell/gosh/internal/prompt"
)

// Session holds the state for one interactive shell run: the shared
// prompt, the built-in registry holding references to it, the executor,
// and the exit flag the input loop polls.
type Session struct {
	prompt   *prompt.Prompt
	registry *command.Registry
	exec     *executor.Executor
	logger   *logging.FieldLogger
	stdout   io.Writer
	exitFlag bool
}

// newSession wires up a session against the given output streams. The
// one shared Prompt is created here; the theme command inside the
// registry holds the same instance the prefix callback renders from.
func newSession(app *App, stdout, stderr io.Writer) (*Session, error) {
	p := prompt.New(app.configPath, app.logger)

	plainHelp := app.noColor || !isatty.IsTerminal(os.Stdout.Fd())
	registry, err := command.NewDefaultRegistry(p, stdout, stderr, plainHelp)
	if err != nil {
		return nil, err
	}

	exec := executor.New(registry, app.logger)
	exec.SetOutput(stdout, stderr)
	exec.EnableSpinner(isatty.IsTerminal(os.Stderr.Fd()))

	return &Session{
		prompt:   p,
		registry: registry,
		exec:     exec,
		logger:   app.logger.WithFields(logging.Fields{"session_id": uuid.New().String()}),
		stdout:   stdout,
	}, nil
}

// runShell starts the interactive loop and blocks until the exit
// sentinel (or Ctrl+C / Ctrl+D on an empty line) stops it.
func (app *App) runShell() error {
	session, err := newSession(app, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	session.logger.Debug("session starting", logging.Fields{
		"config": app.configPath,
		"watch":  app.watch,
	})

	if app.watch {
		watcher := prompt.NewWatcher(session.prompt, app.logger)
		watcher.Start(context.Background())
		defer watcher.Stop()
	}

	fmt.Fprintln(session.stdout, "Welcome to gosh")
	fmt.Fprintln(session.stdout, "Type 'help' for a list of commands, 'exit' to quit.")
	fmt.Fprintln(session.stdout)

	pt := goprompt.New(
		session.dispatch,
		goprompt.WithPrefixCallback(session.prefix),
		goprompt.WithTitle(constants.ShellName),
		goprompt.WithExitChecker(func(in string, breakline bool) bool {
			return session.exitFlag
		}),
		goprompt.WithKeyBind(goprompt.KeyBind{
			Key: goprompt.ControlC,
			Fn: func(p *goprompt.Prompt) bool {
				fmt.Fprintln(session.stdout, "\nGoodbye!")
				session.exitFlag = true
				return false
			},
		}),
		goprompt.WithKeyBind(goprompt.KeyBind{
			Key: goprompt.ControlD,
			Fn: func(p *goprompt.Prompt) bool {
				if p.Buffer().Text() == "" {
					fmt.Fprintln(session.stdout, "Goodbye!")
					session.exitFlag = true
				}
				return false
			},
		}),
	)
	pt.Run()

	session.logger.Debug("session stopped")
	return nil
}

// prefix re-renders the themed prompt before every read, so directory,
// clock, and a hot-reloaded theme are always current.
func (s *Session) prefix() string {
	return s.prompt.Render()
}

// dispatch handles one line of input. The exit sentinel is recognized
// here, before the executor ever sees the line; everything else is
// delegated. No command failure stops the loop.
func (s *Session) dispatch(line string) {
	if s.exitFlag {
		return
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}
	if trimmed == constants.ExitSentinel {
		fmt.Fprintln(s.stdout, "Goodbye!")
		s.exitFlag = true
		return
	}

	s.exec.ExecuteLine(trimmed)
}
