package command

import (
	"fmt"

	"github.com/quocvuong92/tassist/internal/messages"
	"github.com/quocvuong92/tassist/internal/model"
	"github.com/quocvuong92/tassist/internal/person"
)

const (
	EditWord  = "edit"
	EditUsage = EditWord + ": Edits the details of the person identified by the STUDENTID or INDEX. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: STUDENTID or INDEX [n/NAME] [p/PHONE] [e/EMAIL] [c/CLASS] [s/STUDENTID] " +
		"[g/GITHUB] [pr/PROGRESS] [t/TAG]...\n" +
		"Example: " + EditWord + " 1 p/91234567 e/johndoe@example.com\n" +
		"or: " + EditWord + " A1234567X c/T02"
	EditSuccess = "Edited Person: %s"
	NotEdited   = "At least one field to edit must be provided."
)

// EditDescriptor lists the fields an Edit replaces. Nil fields are kept.
type EditDescriptor struct {
	Name        *person.Name
	Phone       *person.Phone
	Email       *person.Email
	ClassNumber *person.ClassNumber
	StudentID   *person.StudentID
	Github      *person.Github
	Progress    *person.Progress
	// Tags replaces the whole tag set when non-nil; an empty slice clears it
	Tags []person.Tag
}

// IsAnyFieldEdited reports whether the descriptor changes anything
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.ClassNumber != nil ||
		d.StudentID != nil || d.Github != nil || d.Progress != nil || d.Tags != nil
}

// Apply returns a copy of p with the descriptor's fields replaced
func (d EditDescriptor) Apply(p person.Person) person.Person {
	details := p.Details()
	if d.Name != nil {
		details.Name = *d.Name
	}
	if d.Phone != nil {
		details.Phone = *d.Phone
	}
	if d.Email != nil {
		details.Email = *d.Email
	}
	if d.ClassNumber != nil {
		details.ClassNumber = *d.ClassNumber
	}
	if d.StudentID != nil {
		details.StudentID = *d.StudentID
	}
	if d.Github != nil {
		details.Github = *d.Github
	}
	if d.Progress != nil {
		details.Progress = *d.Progress
	}
	if d.Tags != nil {
		details.Tags = d.Tags
	}
	return person.New(details)
}

// Edit replaces some fields of the targeted person
type Edit struct {
	Target     Target
	Descriptor EditDescriptor
}

func (c Edit) Execute(m model.Model) (Result, error) {
	target, err := c.Target.Resolve(m)
	if err != nil {
		return Result{}, err
	}

	edited := c.Descriptor.Apply(target)
	if !target.IsSamePerson(edited) && m.HasPerson(edited) {
		return Result{}, executionError(DuplicatePerson, messages.DuplicatePerson, model.ErrDuplicatePerson)
	}
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, modelError(err)
	}
	m.UpdateFilteredPersonList(model.ShowAll)
	return Result{Feedback: fmt.Sprintf(EditSuccess, messages.FormatPerson(edited))}, nil
}

func (c Edit) GithubAccount() (string, bool) {
	if c.Descriptor.Github == nil {
		return "", false
	}
	return accountOf(*c.Descriptor.Github)
}
