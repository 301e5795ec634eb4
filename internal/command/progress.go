package command

import (
	"fmt"

	"github.com/quocvuong92/tassist/internal/messages"
	"github.com/quocvuong92/tassist/internal/model"
	"github.com/quocvuong92/tassist/internal/person"
)

const (
	ProgressWord  = "progress"
	ProgressUsage = ProgressWord + ": Updates the progress of the person identified by the STUDENTID or INDEX.\n" +
		"Parameters: STUDENTID or INDEX pr/PROGRESS (0 to 100)\n" +
		"Example: " + ProgressWord + " 1 pr/75\n" +
		"or: " + ProgressWord + " A1234567X pr/100"
	ProgressSuccess = "Updated progress of Person: %s"
)

// Progress records the targeted person's completion percentage
type Progress struct {
	Target   Target
	Progress person.Progress
}

func (c Progress) Execute(m model.Model) (Result, error) {
	target, err := c.Target.Resolve(m)
	if err != nil {
		return Result{}, err
	}

	edited := target.WithProgress(c.Progress)
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, modelError(err)
	}
	m.UpdateFilteredPersonList(model.ShowAll)
	return Result{Feedback: fmt.Sprintf(ProgressSuccess, messages.FormatPerson(edited))}, nil
}
