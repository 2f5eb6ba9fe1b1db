package command

import (
	"fmt"
	"os"
)

// Cd changes the process's current working directory. On failure the
// underlying OS error (which names the attempted path) is surfaced and
// the working directory stays unchanged.
type Cd struct{}

func (c *Cd) Name() string        { return "cd" }
func (c *Cd) Description() string { return "Change the current working directory." }
func (c *Cd) Usage() string       { return "cd <path>" }
func (c *Cd) Aliases() []string   { return nil }

func (c *Cd) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s", c.Usage())
	}
	return os.Chdir(args[0])
}
