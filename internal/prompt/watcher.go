package prompt

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/gosh-shell/gosh/internal/logging"
)

// Watcher polls the prompt's theme file and reloads it when the file's
// modification time advances. It is the one background goroutine in the
// process; the prompt's lock discipline is what makes its reloads safe
// against renders on the REPL goroutine.
type Watcher struct {
	mu     sync.Mutex
	prompt *Prompt
	logger *logging.Logger

	pollInterval time.Duration
	lastMod      time.Time

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// DefaultPollInterval is how often the watcher checks the theme file.
const DefaultPollInterval = time.Second

// NewWatcher creates a watcher for the given prompt's theme file.
func NewWatcher(p *Prompt, logger *logging.Logger) *Watcher {
	if logger == nil {
		logger = logging.DefaultLogger
	}
	w := &Watcher{
		prompt:       p,
		logger:       logger,
		pollInterval: DefaultPollInterval,
	}
	if info, err := os.Stat(p.ConfigPath()); err == nil {
		w.lastMod = info.ModTime()
	}
	return w
}

// SetPollInterval changes the polling interval. Only effective before
// Start.
func (w *Watcher) SetPollInterval(interval time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pollInterval = interval
}

// Start begins watching. Calling Start on a running watcher is a no-op.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	interval := w.pollInterval
	w.mu.Unlock()

	go w.watchLoop(ctx, interval)
	w.logger.Debug("theme watcher started", logging.Fields{"path": w.prompt.ConfigPath(), "interval": interval.String()})
}

// Stop stops watching and waits for the watch goroutine to finish.
// Stopping a watcher that is not running is a no-op.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	done := w.doneCh
	w.mu.Unlock()

	<-done
	w.logger.Debug("theme watcher stopped")
}

// IsRunning reports whether the watcher is currently active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) watchLoop(ctx context.Context, interval time.Duration) {
	defer close(w.doneCh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.checkForChanges()
		}
	}
}

func (w *Watcher) checkForChanges() {
	path := w.prompt.ConfigPath()

	info, err := os.Stat(path)
	if err != nil {
		// A deleted or briefly unreadable file is not an event; the
		// active theme simply stays in place.
		return
	}

	w.mu.Lock()
	changed := info.ModTime().After(w.lastMod)
	if changed {
		w.lastMod = info.ModTime()
	}
	w.mu.Unlock()

	if !changed {
		return
	}

	w.logger.Info("theme file changed, reloading", logging.Fields{"path": path})
	if err := w.prompt.Reload(); err != nil {
		w.logger.Warn("auto-reload failed, keeping current theme", logging.Fields{"path": path, "error": err.Error()})
	}
}
