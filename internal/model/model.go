// Package model holds the in-memory roster and the filtered view that commands
// operate on.
package model

import (
	"github.com/quocvuong92/tassist/internal/person"
)

// Model is what commands are executed against
type Model interface {
	// FilteredPersons returns the persons currently shown, in roster order
	FilteredPersons() []person.Person
	// UpdateFilteredPersonList replaces the view's predicate
	UpdateFilteredPersonList(pred Predicate)
	HasPerson(p person.Person) bool
	AddPerson(p person.Person) error
	SetPerson(target, edited person.Person) error
	DeletePerson(p person.Person) error
	// AddressBook returns a snapshot of the whole roster
	AddressBook() *AddressBook
	// SetAddressBook replaces the whole roster
	SetAddressBook(ab *AddressBook)
}

// Manager is the default Model
type Manager struct {
	addressBook *AddressBook
	filter      Predicate
}

// NewManager creates a Manager over ab, showing every person
func NewManager(ab *AddressBook) *Manager {
	if ab == nil {
		ab = NewAddressBook()
	}
	return &Manager{addressBook: ab, filter: ShowAll}
}

func (m *Manager) FilteredPersons() []person.Person {
	var out []person.Person
	for _, p := range m.addressBook.persons {
		if m.filter(p) {
			out = append(out, p)
		}
	}
	return out
}

func (m *Manager) UpdateFilteredPersonList(pred Predicate) {
	if pred == nil {
		pred = ShowAll
	}
	m.filter = pred
}

func (m *Manager) HasPerson(p person.Person) bool {
	return m.addressBook.Has(p)
}

func (m *Manager) AddPerson(p person.Person) error {
	return m.addressBook.Add(p)
}

func (m *Manager) SetPerson(target, edited person.Person) error {
	return m.addressBook.Set(target, edited)
}

func (m *Manager) DeletePerson(p person.Person) error {
	return m.addressBook.Remove(p)
}

func (m *Manager) AddressBook() *AddressBook {
	return m.addressBook.Clone()
}

func (m *Manager) SetAddressBook(ab *AddressBook) {
	if ab == nil {
		ab = NewAddressBook()
	}
	m.addressBook = ab.Clone()
}
