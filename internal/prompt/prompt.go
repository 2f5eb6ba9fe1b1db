// Package prompt owns the shell's shared prompt state: the active theme,
// the path it was loaded from, and the rendering of the visible prompt
// string.
//
// One Prompt is created at startup and shared between the REPL session
// and any command that needs to mutate it (theme reload). All theme
// access goes through a RWMutex; Reload builds the replacement theme
// fully before swapping it in, so a concurrent Render observes either
// the old or the new theme in full, never a mixture.
package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gosh-shell/gosh/internal/constants"
	"github.com/gosh-shell/gosh/internal/logging"
	"github.com/gosh-shell/gosh/internal/theme"
)

// Prompt renders the shell's status line and owns the active theme.
type Prompt struct {
	mu         sync.RWMutex
	theme      theme.Theme
	configPath string
	logger     *logging.Logger
}

// New creates the shared Prompt. The theme is loaded from configPath
// when the file exists; otherwise the built-in default palette is used.
// An absent file is not a warning, it is the documented default.
func New(configPath string, logger *logging.Logger) *Prompt {
	if logger == nil {
		logger = logging.DefaultLogger
	}
	p := &Prompt{
		theme:      theme.Default(),
		configPath: configPath,
		logger:     logger,
	}
	t, err := theme.Load(configPath)
	if err != nil {
		logger.Debug("using default theme", logging.Fields{"path": configPath, "reason": err.Error()})
		return p
	}
	p.theme = t
	logger.Debug("theme loaded", logging.Fields{"path": configPath})
	return p
}

// Render produces the prompt text: shell label, symbol separator, the
// final component of the current working directory, and the local time,
// each styled with its segment color. Directory and time are read fresh
// on every call.
func (p *Prompt) Render() string {
	p.mu.RLock()
	t := p.theme
	p.mu.RUnlock()

	return fmt.Sprintf("%s %s %s %s ",
		t.ApplyShell(constants.ShellLabel),
		t.ApplySymbol(constants.PromptSymbol),
		t.ApplyPath(workingDirName()),
		t.ApplyTime(time.Now().Format(constants.TimeLayout)),
	)
}

// Reload re-reads the theme file and atomically replaces the active
// theme. On failure the previous theme stays active and the error is
// returned for the caller to surface.
func (p *Prompt) Reload() error {
	t, err := theme.Load(p.configPath)
	if err != nil {
		p.logger.Warn("theme reload failed, keeping current theme", logging.Fields{"path": p.configPath, "error": err.Error()})
		return err
	}

	p.mu.Lock()
	p.theme = t
	p.mu.Unlock()

	p.logger.Debug("theme reloaded", logging.Fields{"path": p.configPath})
	return nil
}

// Theme returns a snapshot of the active theme.
func (p *Prompt) Theme() theme.Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

// ConfigPath returns the theme file path this prompt reloads from.
func (p *Prompt) ConfigPath() string {
	return p.configPath
}

// workingDirName returns the final component of the process's current
// working directory, or "~" when it cannot be determined.
func workingDirName() string {
	wd, err := os.Getwd()
	if err != nil {
		return "~"
	}
	return filepath.Base(wd)
}
