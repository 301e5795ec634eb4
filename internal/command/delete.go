package command

import (
	"fmt"

	"github.com/quocvuong92/tassist/internal/messages"
	"github.com/quocvuong92/tassist/internal/model"
)

const (
	DeleteWord  = "delete"
	DeleteUsage = DeleteWord + ": Deletes the person identified by the STUDENTID or INDEX.\n" +
		"Parameters: STUDENTID or INDEX\n" +
		"Example: " + DeleteWord + " 1\n" +
		"or: " + DeleteWord + " A1234567X"
	DeleteSuccess = "Deleted Person: %s"
)

// Delete removes the targeted person
type Delete struct {
	Target Target
}

func (c Delete) Execute(m model.Model) (Result, error) {
	target, err := c.Target.Resolve(m)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePerson(target); err != nil {
		return Result{}, modelError(err)
	}
	m.UpdateFilteredPersonList(model.ShowAll)
	return Result{Feedback: fmt.Sprintf(DeleteSuccess, messages.FormatPerson(target))}, nil
}
