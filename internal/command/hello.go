package command

import (
	"fmt"
	"io"
)

// Greeting is the fixed line printed by the hello command.
const Greeting = "Hello from gosh!"

// Hello prints a fixed greeting.
type Hello struct {
	Out io.Writer
}

func (h *Hello) Name() string        { return "hello" }
func (h *Hello) Description() string { return "Print a friendly greeting." }
func (h *Hello) Usage() string       { return "hello" }
func (h *Hello) Aliases() []string   { return nil }

func (h *Hello) Execute(args []string) error {
	fmt.Fprintln(h.Out, Greeting)
	return nil
}
