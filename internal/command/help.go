package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Help prints a usage summary of every registered command, or the detail
// of a single one. On a terminal the summary is a markdown table
// rendered through glamour; Plain mode (non-TTY, --no-color) falls back
// to aligned text.
type Help struct {
	Out      io.Writer
	Registry *Registry
	Plain    bool
}

func (h *Help) Name() string        { return "help" }
func (h *Help) Description() string { return "List commands or show one command's usage." }
func (h *Help) Usage() string       { return "help [command]" }
func (h *Help) Aliases() []string   { return []string{"h"} }

func (h *Help) Execute(args []string) error {
	if len(args) > 0 {
		return h.showCommand(args[0])
	}
	h.showSummary()
	return nil
}

func (h *Help) showCommand(name string) error {
	cmd, ok := h.Registry.Lookup(name)
	if !ok {
		if suggestion, found := h.Registry.Suggest(name); found {
			return fmt.Errorf("unknown command %q (did you mean %q?)", name, suggestion)
		}
		return fmt.Errorf("unknown command %q", name)
	}
	fmt.Fprintf(h.Out, "%s — %s\n", cmd.Name(), cmd.Description())
	fmt.Fprintf(h.Out, "Usage: %s\n", cmd.Usage())
	if aliases := cmd.Aliases(); len(aliases) > 0 {
		fmt.Fprintf(h.Out, "Aliases: %s\n", strings.Join(aliases, ", "))
	}
	return nil
}

func (h *Help) showSummary() {
	if !h.Plain {
		if rendered, err := renderMarkdown(h.summaryMarkdown()); err == nil {
			fmt.Fprint(h.Out, rendered)
			return
		}
	}
	h.plainSummary()
}

func (h *Help) summaryMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Commands\n\n")
	sb.WriteString("| Command | Description | Usage |\n")
	sb.WriteString("|---|---|---|\n")
	for _, name := range h.Registry.Names() {
		cmd, _ := h.Registry.Lookup(name)
		fmt.Fprintf(&sb, "| %s | %s | `%s` |\n", cmd.Name(), cmd.Description(), cmd.Usage())
	}
	sb.WriteString("\nType `help <command>` for details. ")
	sb.WriteString("Anything else runs as an external program from PATH; `exit` quits.\n")
	return sb.String()
}

func (h *Help) plainSummary() {
	fmt.Fprintln(h.Out, "Commands:")
	for _, name := range h.Registry.Names() {
		cmd, _ := h.Registry.Lookup(name)
		fmt.Fprintf(h.Out, "  %-8s %-45s (usage: %s)\n", cmd.Name(), cmd.Description(), cmd.Usage())
	}
	fmt.Fprintln(h.Out)
	fmt.Fprintln(h.Out, "Type 'help <command>' for details. Anything else runs as an")
	fmt.Fprintln(h.Out, "external program from PATH; 'exit' quits.")
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
