// Package cmd implements the CLI commands for TAssist.
//
// # Architecture
//
// This package is organized into the following logical groups:
//
// ## Core CLI
//
//   - root.go: Main entry point, App struct, cobra command setup, and flags
//   - status.go: status, config and history subcommands
//   - login.go: GitHub token storage (login, logout)
//
// ## Interactive Mode
//
//   - interactive.go: go-prompt REPL, completion and piped input
//   - repl_commands.go: Command execution, result printing and the history word
//   - adapters.go: Spinners around the GitHub and browser collaborators
//
// # Key Components
//
// ## App
//
// The App struct holds configuration, the loaded roster and the
// logic.Logic that runs command lines. It's created in Execute() and
// passed through command handlers.
//
// ## Modes
//
// With arguments, the arguments form one command line that is run before
// exiting. Without arguments an interactive session starts, or, when stdin
// is not a terminal, one command is read per line.
//
// # Usage
//
//	// Main entry point
//	func main() {
//	    cmd.Execute()
//	}
package cmd
