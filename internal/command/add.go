package command

import (
	"errors"
	"fmt"

	"github.com/quocvuong92/tassist/internal/messages"
	"github.com/quocvuong92/tassist/internal/model"
	"github.com/quocvuong92/tassist/internal/person"
)

const (
	AddWord  = "add"
	AddUsage = AddWord + ": Adds a person to the address book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL s/STUDENTID [c/CLASS] [g/GITHUB] [pr/PROGRESS] [t/TAG]...\n" +
		"Example: " + AddWord + " n/John Doe p/98765432 e/johnd@example.com s/A1234567X c/T01 " +
		"g/https://github.com/johndoe t/friends"
	AddSuccess = "New person added: %s"
)

// Add appends a new person to the roster
type Add struct {
	Person person.Person
}

func (c Add) Execute(m model.Model) (Result, error) {
	if m.HasPerson(c.Person) {
		return Result{}, executionError(DuplicatePerson, messages.DuplicatePerson, model.ErrDuplicatePerson)
	}
	if err := m.AddPerson(c.Person); err != nil {
		return Result{}, modelError(err)
	}
	m.UpdateFilteredPersonList(model.ShowAll)
	return Result{Feedback: fmt.Sprintf(AddSuccess, messages.FormatPerson(c.Person))}, nil
}

func (c Add) GithubAccount() (string, bool) {
	return accountOf(c.Person.Github())
}

func accountOf(g person.Github) (string, bool) {
	if g.IsEmpty() {
		return "", false
	}
	return g.Username(), true
}

// modelError maps a Model failure onto the user-facing taxonomy
func modelError(err error) error {
	switch {
	case errors.Is(err, model.ErrDuplicatePerson):
		return executionError(DuplicatePerson, messages.DuplicatePerson, err)
	case errors.Is(err, model.ErrPersonNotFound):
		return executionError(NotFound, messages.PersonNotFound, err)
	default:
		return err
	}
}
