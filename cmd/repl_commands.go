package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/quocvuong92/tassist/internal/command"
	"github.com/quocvuong92/tassist/internal/logging"
	"github.com/quocvuong92/tassist/internal/parser"
)

const (
	historyWord = "history"

	defaultHistoryShown = 10
)

// execute runs one command line and prints its outcome. Errors are returned
// unprinted. It reports whether the session should end.
func (app *App) execute(ctx context.Context, line string) (bool, error) {
	word, args := parser.SplitCommandWord(line)
	word = strings.ToLower(word)

	if word == historyWord {
		return false, app.showHistory(args)
	}

	res, err := app.logic.Execute(ctx, line)
	if err != nil {
		return false, err
	}

	if res.Feedback != "" {
		app.out.ShowSuccess(res.Feedback)
	}
	if res.ShowHelp {
		app.out.ShowHelp(command.Usages)
	}
	switch word {
	case command.ListWord, command.FindWord:
		app.out.ShowPersons(app.logic.FilteredPersons())
	}
	return res.Exit, nil
}

// showHistory prints the most recent command lines. args may hold a count.
func (app *App) showHistory(args string) error {
	h := app.openHistory()
	if h == nil {
		app.out.ShowWarning("History not available.")
		return nil
	}

	n := defaultHistoryShown
	if args = strings.TrimSpace(args); args != "" {
		v, err := strconv.Atoi(args)
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid history count %q: must be a positive number", args)
		}
		n = v
	}

	entries := h.Recent(n)
	if len(entries) == 0 {
		app.out.ShowContent("No command history.")
		return nil
	}

	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "  %d. [%s] %s\n", i+1, e.At.Local().Format("2006-01-02 15:04"), e.Line)
	}
	app.out.ShowContent(strings.TrimSuffix(b.String(), "\n"))
	return nil
}

// saveHistory writes the history file, warning on failure
func (app *App) saveHistory() {
	if app.history == nil {
		return
	}
	if err := app.history.Save(); err != nil {
		logging.Warn("Failed to save history", logging.Fields{"path": app.history.Path(), "error": err.Error()})
		app.out.ShowWarning(fmt.Sprintf("Warning: Could not save history: %v", err))
	}
}
