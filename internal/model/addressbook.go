package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/quocvuong92/tassist/internal/person"
)

// Errors
var (
	ErrDuplicatePerson = errors.New("person with the same student ID already exists")
	ErrPersonNotFound  = errors.New("person not found in address book")
)

// AddressBook is the ordered roster. No two persons share a StudentID.
type AddressBook struct {
	persons []person.Person
}

// NewAddressBook creates an empty address book
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// NewAddressBookFrom creates an address book holding persons, in order
func NewAddressBookFrom(persons []person.Person) (*AddressBook, error) {
	ab := NewAddressBook()
	for _, p := range persons {
		if err := ab.Add(p); err != nil {
			return nil, fmt.Errorf("%s: %w", p.StudentID(), err)
		}
	}
	return ab, nil
}

// Persons returns a copy of the roster
func (ab *AddressBook) Persons() []person.Person {
	return slices.Clone(ab.persons)
}

// Len returns the number of persons
func (ab *AddressBook) Len() int {
	return len(ab.persons)
}

// Has reports whether a person with p's StudentID exists
func (ab *AddressBook) Has(p person.Person) bool {
	return ab.indexOfSame(p) >= 0
}

// Add appends p
func (ab *AddressBook) Add(p person.Person) error {
	if ab.Has(p) {
		return ErrDuplicatePerson
	}
	ab.persons = append(ab.persons, p)
	return nil
}

// Set replaces target with edited, keeping its position
func (ab *AddressBook) Set(target, edited person.Person) error {
	i := ab.indexOf(target)
	if i < 0 {
		return ErrPersonNotFound
	}
	if !target.IsSamePerson(edited) && ab.Has(edited) {
		return ErrDuplicatePerson
	}
	ab.persons[i] = edited
	return nil
}

// Remove deletes p
func (ab *AddressBook) Remove(p person.Person) error {
	i := ab.indexOf(p)
	if i < 0 {
		return ErrPersonNotFound
	}
	ab.persons = slices.Delete(ab.persons, i, i+1)
	return nil
}

// Clone returns an independent copy
func (ab *AddressBook) Clone() *AddressBook {
	return &AddressBook{persons: slices.Clone(ab.persons)}
}

func (ab *AddressBook) indexOf(p person.Person) int {
	return slices.IndexFunc(ab.persons, p.Equal)
}

func (ab *AddressBook) indexOfSame(p person.Person) int {
	return slices.IndexFunc(ab.persons, p.IsSamePerson)
}
