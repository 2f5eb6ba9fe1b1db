package command

import (
	"fmt"
	"io"
)

// clearSequence clears the screen and homes the cursor.
const clearSequence = "\x1b[2J\x1b[H"

// Clear emits the terminal clear control sequence.
type Clear struct {
	Out io.Writer
}

func (c *Clear) Name() string        { return "clear" }
func (c *Clear) Description() string { return "Clear the terminal screen." }
func (c *Clear) Usage() string       { return "clear" }
func (c *Clear) Aliases() []string   { return []string{"cls"} }

func (c *Clear) Execute(args []string) error {
	fmt.Fprint(c.Out, clearSequence)
	return nil
}
