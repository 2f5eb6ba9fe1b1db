// Package cmd implements the CLI entry point and the interactive shell
// session.
//
// # Architecture
//
//   - root.go: App struct, cobra command setup, and flags
//   - shell.go: the interactive REPL session (go-prompt wiring, exit
//     sentinel, keybinds)
//
// # Key components
//
// ## App
//
// App holds flag-driven state (theme config path, verbosity, color and
// watch toggles) plus the logger. It is created in Execute() and drives
// the shell run.
//
// ## Session
//
// Session owns the pieces of one interactive run: the shared prompt, the
// built-in command registry, and the executor. Its dispatch method is
// handed to go-prompt and called once per input line; the prompt prefix
// callback re-renders the themed status line before every read.
//
// # Usage
//
//	func main() {
//	    cmd.Execute()
//	}
package cmd
