package command

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/quocvuong92/tassist/internal/messages"
	"github.com/quocvuong92/tassist/internal/model"
	"github.com/quocvuong92/tassist/internal/person"
)

// Index is a position in the filtered list
type Index struct {
	zeroBased int
}

// IndexFromZeroBased creates an Index. It panics on a negative value.
func IndexFromZeroBased(i int) Index {
	if i < 0 {
		panic(fmt.Sprintf("command: negative index %d", i))
	}
	return Index{zeroBased: i}
}

// IndexFromOneBased creates an Index from a position shown to the user
func IndexFromOneBased(i int) Index {
	return IndexFromZeroBased(i - 1)
}

func (i Index) ZeroBased() int { return i.zeroBased }
func (i Index) OneBased() int  { return i.zeroBased + 1 }

type targetKind int

const (
	byIndex targetKind = iota + 1
	byStudentID
)

var errNoTarget = errors.New("command: target not set")

// Target identifies the person a command applies to, either by position in
// the filtered list or by student ID
type Target struct {
	kind      targetKind
	index     Index
	studentID person.StudentID
}

// ByIndex targets the person shown at i
func ByIndex(i Index) Target {
	return Target{kind: byIndex, index: i}
}

// ByStudentID targets the shown person with the given ID
func ByStudentID(id person.StudentID) Target {
	return Target{kind: byStudentID, studentID: id}
}

// Index returns the index and whether the target is index based
func (t Target) Index() (Index, bool) {
	return t.index, t.kind == byIndex
}

// StudentID returns the ID and whether the target is ID based
func (t Target) StudentID() (person.StudentID, bool) {
	return t.studentID, t.kind == byStudentID
}

// Resolve finds the targeted person in m's filtered view
func (t Target) Resolve(m model.Model) (person.Person, error) {
	shown := m.FilteredPersons()
	switch t.kind {
	case byIndex:
		if t.index.zeroBased >= len(shown) {
			return person.Person{}, executionError(InvalidIndex, messages.InvalidPersonDisplayedIndex, nil)
		}
		return shown[t.index.zeroBased], nil
	case byStudentID:
		for _, p := range shown {
			if p.StudentID() == t.studentID {
				return p, nil
			}
		}
		return person.Person{}, executionError(NotFound, messages.PersonNotFound+t.studentID.String(), nil)
	default:
		return person.Person{}, errNoTarget
	}
}

func (t Target) String() string {
	switch t.kind {
	case byIndex:
		return strconv.Itoa(t.index.OneBased())
	case byStudentID:
		return t.studentID.String()
	default:
		return ""
	}
}
