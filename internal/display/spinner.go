package display

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// Spinner shows progress while a slow call runs. It does nothing when the
// output is not a terminal.
type Spinner struct {
	s       *spinner.Spinner
	enabled bool
}

// NewSpinner creates a spinner on stderr
func NewSpinner(message string) *Spinner {
	return newSpinner(os.Stderr, message, term.IsTerminal(int(os.Stderr.Fd())))
}

func newSpinner(w io.Writer, message string, enabled bool) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	return &Spinner{s: s, enabled: enabled}
}

// Start begins the animation
func (sp *Spinner) Start() {
	if sp.enabled {
		sp.s.Start()
	}
}

// Stop ends the animation and clears the line
func (sp *Spinner) Stop() {
	if sp.enabled {
		sp.s.Stop()
	}
}

// While runs fn with the spinner shown
func (sp *Spinner) While(fn func() error) error {
	sp.Start()
	defer sp.Stop()
	return fn()
}
