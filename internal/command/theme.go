package command

import (
	"fmt"
	"io"

	"github.com/gosh-shell/gosh/internal/prompt"
)

// Theme manages the shared prompt's theme. Its only subcommand is
// "reload", which re-reads the theme file; on failure the prior theme
// stays active and the load error is surfaced as a warning.
type Theme struct {
	Out    io.Writer
	Prompt *prompt.Prompt
}

func (t *Theme) Name() string        { return "theme" }
func (t *Theme) Description() string { return "Reload the prompt theme from its config file." }
func (t *Theme) Usage() string       { return "theme reload" }
func (t *Theme) Aliases() []string   { return nil }

func (t *Theme) Execute(args []string) error {
	if len(args) != 1 || args[0] != "reload" {
		return fmt.Errorf("usage: %s", t.Usage())
	}
	if err := t.Prompt.Reload(); err != nil {
		return fmt.Errorf("reload failed, keeping current theme: %w", err)
	}
	fmt.Fprintf(t.Out, "theme reloaded from %s\n", t.Prompt.ConfigPath())
	return nil
}
