package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gosh-shell/gosh/internal/constants"
	"github.com/gosh-shell/gosh/internal/logging"
	"github.com/gosh-shell/gosh/internal/theme"
)

const version = "0.1.0"

// EnvLogLevel overrides the diagnostic log level when --verbose is not
// given (DEBUG, INFO, WARN, ERROR, NONE).
const EnvLogLevel = "GOSH_LOG_LEVEL"

// App holds the application state shared across the shell session.
type App struct {
	configPath string
	verbose    bool
	noColor    bool
	watch      bool

	logger *logging.Logger
}

// NewApp creates a new App with the default logger (silent until
// --verbose raises the level).
func NewApp() *App {
	return &App{
		logger: logging.New(logging.Options{
			Level:  logging.LevelNone,
			Format: logging.FormatText,
			Output: os.Stderr,
		}),
	}
}

// Execute runs the root command.
func Execute() {
	app := NewApp()

	rootCmd := &cobra.Command{
		Use:   constants.ShellName,
		Short: "An interactive command shell with a themeable prompt",
		Long: `gosh is an interactive command shell. Each input line resolves to a
built-in command first and falls back to an external program on PATH.
The status prompt (label, directory, clock) is colored by a TOML theme
that can be hot-reloaded without restarting the shell:

  gosh                       # default theme path config/theme.toml
  gosh --config my.toml      # explicit theme file
  gosh --watch               # auto-reload the theme file on change

Inside the shell, type 'help' for the built-in commands and 'exit' to
quit.`,
		Version: version,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.run()
		},
	}

	rootCmd.Flags().StringVarP(&app.configPath, "config", "c", constants.DefaultThemePath, "Theme config file (TOML)")
	rootCmd.Flags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.Flags().BoolVar(&app.noColor, "no-color", false, "Disable prompt colors and markdown help rendering")
	rootCmd.Flags().BoolVarP(&app.watch, "watch", "w", false, "Auto-reload the theme file when it changes")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func (app *App) run() {
	switch {
	case app.verbose:
		app.logger.SetLevel(logging.LevelDebug)
	case os.Getenv(EnvLogLevel) != "":
		app.logger.SetLevel(logging.ParseLevel(os.Getenv(EnvLogLevel)))
	}

	if app.noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		theme.SetNoColor(true)
	}

	if err := app.runShell(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", constants.ShellName, err)
		os.Exit(1)
	}
}
