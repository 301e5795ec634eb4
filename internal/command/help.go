package command

import (
	"github.com/quocvuong92/tassist/internal/model"
)

const (
	HelpWord    = "help"
	HelpUsage   = HelpWord + ": Shows program usage instructions.\nExample: " + HelpWord
	HelpMessage = "Showing help."

	ExitWord    = "exit"
	ExitUsage   = ExitWord + ": Exits the program."
	ExitMessage = "Exiting TAssist as requested ..."
)

// Usages lists every command's usage text in display order
var Usages = []string{
	AddUsage, EditUsage, DeleteUsage, GithubUsage, RepoUsage, ClassUsage, ProgressUsage,
	OpenUsage, ListUsage, FindUsage, ClearUsage, HelpUsage, ExitUsage,
}

// Help asks the UI to show the command reference
type Help struct{}

func (Help) readOnly() {}

func (Help) Execute(model.Model) (Result, error) {
	return Result{Feedback: HelpMessage, ShowHelp: true}, nil
}

// Exit asks the UI to end the session
type Exit struct{}

func (Exit) readOnly() {}

func (Exit) Execute(model.Model) (Result, error) {
	return Result{Feedback: ExitMessage, Exit: true}, nil
}
