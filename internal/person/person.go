// Package person holds the student record and the value types it is built from.
//
// Every value type is a small struct around an unexported field, so values can
// only come from their validating constructors and compare with ==.
package person

import (
	"slices"
	"strings"
)

// Details lists the fields a Person is built from
type Details struct {
	Name        Name
	Phone       Phone
	Email       Email
	ClassNumber ClassNumber
	StudentID   StudentID
	Github      Github
	Repository  Repository
	Tags        []Tag
	Progress    Progress
}

// Person is an immutable student record identified by its StudentID
type Person struct {
	name        Name
	phone       Phone
	email       Email
	classNumber ClassNumber
	studentID   StudentID
	github      Github
	repository  Repository
	tags        []Tag
	progress    Progress
}

// New creates a Person from d. A zero ClassNumber becomes T00.
func New(d Details) Person {
	class := d.ClassNumber
	if class == (ClassNumber{}) {
		class = UnassignedClass()
	}
	return Person{
		name:        d.Name,
		phone:       d.Phone,
		email:       d.Email,
		classNumber: class,
		studentID:   d.StudentID,
		github:      d.Github,
		repository:  d.Repository,
		tags:        normalizeTags(d.Tags),
		progress:    d.Progress,
	}
}

func (p Person) Name() Name               { return p.name }
func (p Person) Phone() Phone             { return p.phone }
func (p Person) Email() Email             { return p.email }
func (p Person) ClassNumber() ClassNumber { return p.classNumber }
func (p Person) StudentID() StudentID     { return p.studentID }
func (p Person) Github() Github           { return p.github }
func (p Person) Repository() Repository   { return p.repository }
func (p Person) Progress() Progress       { return p.progress }

// Tags returns a sorted copy of the person's tags
func (p Person) Tags() []Tag {
	return slices.Clone(p.tags)
}

// Details returns the fields of p, ready to be changed and passed to New
func (p Person) Details() Details {
	return Details{
		Name:        p.name,
		Phone:       p.phone,
		Email:       p.email,
		ClassNumber: p.classNumber,
		StudentID:   p.studentID,
		Github:      p.github,
		Repository:  p.repository,
		Tags:        p.Tags(),
		Progress:    p.progress,
	}
}

// WithGithub returns a copy of p with its GitHub link replaced
func (p Person) WithGithub(g Github) Person {
	p.github = g
	return p
}

// WithRepository returns a copy of p with its repository replaced
func (p Person) WithRepository(r Repository) Person {
	p.repository = r
	return p
}

// WithClassNumber returns a copy of p with its class replaced
func (p Person) WithClassNumber(c ClassNumber) Person {
	p.classNumber = c
	return p
}

// WithProgress returns a copy of p with its progress replaced
func (p Person) WithProgress(pr Progress) Person {
	p.progress = pr
	return p
}

// IsSamePerson reports whether both records share a StudentID
func (p Person) IsSamePerson(other Person) bool {
	return p.studentID == other.studentID
}

// Equal reports whether every field of both records matches
func (p Person) Equal(other Person) bool {
	return p.name == other.name &&
		p.phone == other.phone &&
		p.email == other.email &&
		p.classNumber == other.classNumber &&
		p.studentID == other.studentID &&
		p.github == other.github &&
		p.repository == other.repository &&
		p.progress == other.progress &&
		slices.Equal(p.tags, other.tags)
}

func (p Person) String() string {
	var sb strings.Builder
	sb.WriteString(p.name.String())
	sb.WriteString(" (")
	sb.WriteString(p.studentID.String())
	sb.WriteString(")")
	return sb.String()
}

// normalizeTags deduplicates and sorts tags so that equal sets compare equal
func normalizeTags(in []Tag) []Tag {
	out := make([]Tag, 0, len(in))
	for _, t := range in {
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b Tag) int { return strings.Compare(a.name, b.name) })
	return out
}
