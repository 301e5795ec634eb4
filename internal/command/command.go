// Package command implements the roster commands produced by the parser.
//
// Commands are immutable values holding already-validated fields. Each one is
// executed once against a model.Model and either returns a Result or an error,
// leaving the roster untouched on failure.
package command

import (
	"github.com/quocvuong92/tassist/internal/model"
)

// Command is a parsed, ready-to-run roster command
type Command interface {
	Execute(m model.Model) (Result, error)
}

// Result is what a command reports back to the user interface
type Result struct {
	Feedback string
	// ShowHelp asks the UI to display the command reference
	ShowHelp bool
	// Exit asks the UI to end the session
	Exit bool
	// OpenURL asks the UI to open a link in the browser
	OpenURL string
}

// AccountSetter is implemented by commands that write a GitHub account into
// the roster. The account name is reported so it can be checked before
// the command runs.
type AccountSetter interface {
	GithubAccount() (string, bool)
}

// readOnly marks commands that never change the roster
type readOnly interface {
	readOnly()
}

// IsReadOnly reports whether c leaves the roster unchanged
func IsReadOnly(c Command) bool {
	_, ok := c.(readOnly)
	return ok
}
