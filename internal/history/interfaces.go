// Package history records the command lines entered in tassist sessions.
package history

// Recorder defines the interface for managing command history.
// This interface enables dependency injection and easier testing.
type Recorder interface {
	// Load reads the history from disk
	Load() error

	// Save writes the history to disk
	Save() error

	// Add records a line for the current session
	Add(line string)

	// Recent returns the n most recent entries, oldest first
	Recent(n int) []Entry

	// Clear removes all recorded lines
	Clear()
}

// Ensure concrete type implements the interface
var _ Recorder = (*History)(nil)
