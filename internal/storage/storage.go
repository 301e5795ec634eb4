// Package storage persists the roster to disk, as a JSON document or a
// SQLite database.
package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/quocvuong92/tassist/internal/model"
	"github.com/quocvuong92/tassist/internal/person"
)

// Backend names accepted by Open
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

var (
	// ErrUnknownBackend is returned by Open for an unsupported backend name
	ErrUnknownBackend = errors.New("unknown storage backend")
	// ErrCorruptData is returned when stored data cannot be turned back into a roster
	ErrCorruptData = errors.New("stored roster is invalid")
)

// Store loads and saves the whole roster
type Store interface {
	// Load returns the stored roster, or an empty one when nothing is stored yet
	Load() (*model.AddressBook, error)
	Save(ab *model.AddressBook) error
	Path() string
	Close() error
}

// Open returns the store for backend at path
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(backend) {
	case "", BackendJSON:
		return NewJSONStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// adaptedPerson is the stored form of a Person
type adaptedPerson struct {
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	ClassNumber string   `json:"classNumber"`
	StudentID   string   `json:"studentId"`
	Github      string   `json:"github"`
	Repository  string   `json:"repository,omitempty"`
	Progress    int      `json:"progress"`
	Tags        []string `json:"tags"`
}

func adapt(p person.Person) adaptedPerson {
	tags := make([]string, 0, len(p.Tags()))
	for _, t := range p.Tags() {
		tags = append(tags, t.String())
	}
	return adaptedPerson{
		Name:        p.Name().String(),
		Phone:       p.Phone().String(),
		Email:       p.Email().String(),
		ClassNumber: p.ClassNumber().String(),
		StudentID:   p.StudentID().String(),
		Github:      p.Github().String(),
		Repository:  p.Repository().String(),
		Progress:    p.Progress().Int(),
		Tags:        tags,
	}
}

// toPerson validates every field the same way user input is validated
func (a adaptedPerson) toPerson() (person.Person, error) {
	var d person.Details
	var err error

	if d.Name, err = person.NewName(a.Name); err != nil {
		return person.Person{}, err
	}
	if d.Phone, err = person.NewPhone(a.Phone); err != nil {
		return person.Person{}, err
	}
	if d.Email, err = person.NewEmail(a.Email); err != nil {
		return person.Person{}, err
	}
	if a.ClassNumber != "" {
		if d.ClassNumber, err = person.NewClassNumber(a.ClassNumber); err != nil {
			return person.Person{}, err
		}
	}
	if d.StudentID, err = person.NewStudentID(a.StudentID); err != nil {
		return person.Person{}, err
	}
	if d.Github, err = person.NewGithub(a.Github); err != nil {
		return person.Person{}, err
	}
	if d.Repository, err = person.NewRepository(a.Repository); err != nil {
		return person.Person{}, err
	}
	if d.Progress, err = person.NewProgress(strconv.Itoa(a.Progress)); err != nil {
		return person.Person{}, err
	}
	if d.Tags, err = person.NewTags(a.Tags); err != nil {
		return person.Person{}, err
	}
	return person.New(d), nil
}

func toAddressBook(stored []adaptedPerson) (*model.AddressBook, error) {
	persons := make([]person.Person, 0, len(stored))
	for i, a := range stored {
		p, err := a.toPerson()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrCorruptData, i+1, err)
		}
		persons = append(persons, p)
	}
	ab, err := model.NewAddressBookFrom(persons)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return ab, nil
}

func fromAddressBook(ab *model.AddressBook) []adaptedPerson {
	persons := ab.Persons()
	out := make([]adaptedPerson, 0, len(persons))
	for _, p := range persons {
		out = append(out, adapt(p))
	}
	return out
}
