package command

import (
	"fmt"

	"github.com/quocvuong92/tassist/internal/messages"
	"github.com/quocvuong92/tassist/internal/model"
	"github.com/quocvuong92/tassist/internal/person"
)

const (
	ClassWord  = "class"
	ClassUsage = ClassWord + ": Assigns the person identified by the STUDENTID or INDEX to a tutorial class. " +
		"Existing class will be overwritten by the input.\n" +
		"Parameters: STUDENTID or INDEX c/CLASS\n" +
		"Example: " + ClassWord + " 1 c/T02\n" +
		"or: " + ClassWord + " A1234567X c/T02"
	ClassSuccess = "Changed class of Person: %s"
	ClassInvalid = "Invalid class! The correct format is TXX, where XX are two digits, e.g. T01."
)

// Class moves the targeted person to another tutorial class
type Class struct {
	Target      Target
	ClassNumber person.ClassNumber
}

func (c Class) Execute(m model.Model) (Result, error) {
	target, err := c.Target.Resolve(m)
	if err != nil {
		return Result{}, err
	}

	edited := target.WithClassNumber(c.ClassNumber)
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, modelError(err)
	}
	m.UpdateFilteredPersonList(model.ShowAll)
	return Result{Feedback: fmt.Sprintf(ClassSuccess, messages.FormatPerson(edited))}, nil
}
