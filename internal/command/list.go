package command

import (
	"fmt"

	"github.com/quocvuong92/tassist/internal/messages"
	"github.com/quocvuong92/tassist/internal/model"
)

const (
	ListWord    = "list"
	ListUsage   = ListWord + ": Lists all persons in the address book."
	ListSuccess = "Listed all persons"

	FindWord  = "find"
	FindUsage = FindWord + ": Finds all persons whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindWord + " alice bob charlie"

	ClearWord    = "clear"
	ClearUsage   = ClearWord + ": Clears all entries from the address book."
	ClearSuccess = "Address book has been cleared!"
)

// List resets the filtered view to show everyone
type List struct{}

func (List) readOnly() {}

func (List) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredPersonList(model.ShowAll)
	return Result{Feedback: ListSuccess}, nil
}

// Find filters the view to persons whose name contains one of Keywords
type Find struct {
	Keywords []string
}

func (Find) readOnly() {}

func (c Find) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredPersonList(model.NameContainsKeywords(c.Keywords))
	return Result{Feedback: fmt.Sprintf(messages.PersonsListedOverview, len(m.FilteredPersons()))}, nil
}

// Clear empties the roster
type Clear struct{}

func (Clear) Execute(m model.Model) (Result, error) {
	m.SetAddressBook(model.NewAddressBook())
	m.UpdateFilteredPersonList(model.ShowAll)
	return Result{Feedback: ClearSuccess}, nil
}
