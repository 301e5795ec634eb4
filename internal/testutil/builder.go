// Package testutil provides builders and fixtures shared by package tests.
package testutil

import (
	"fmt"

	"github.com/quocvuong92/tassist/internal/person"
)

// Defaults used by PersonBuilder
const (
	DefaultName       = "Amy Bee"
	DefaultPhone      = "85355255"
	DefaultEmail      = "amy@gmail.com"
	DefaultClass      = "T01"
	DefaultStudentID  = "A0000000B"
	DefaultGithub     = "https://github.com/default"
	DefaultProgress   = "0"
	DefaultRepository = ""
)

// PersonBuilder builds Person values from raw strings. Build panics on
// invalid input, so it is only meant for fixtures.
type PersonBuilder struct {
	name, phone, email, class, studentID, github, repository, progress string
	tags                                                               []string
}

// NewPersonBuilder returns a builder preloaded with the default person
func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{
		name:       DefaultName,
		phone:      DefaultPhone,
		email:      DefaultEmail,
		class:      DefaultClass,
		studentID:  DefaultStudentID,
		github:     DefaultGithub,
		repository: DefaultRepository,
		progress:   DefaultProgress,
	}
}

// PersonBuilderFrom returns a builder preloaded with p's fields
func PersonBuilderFrom(p person.Person) *PersonBuilder {
	b := &PersonBuilder{
		name:       p.Name().String(),
		phone:      p.Phone().String(),
		email:      p.Email().String(),
		class:      p.ClassNumber().String(),
		studentID:  p.StudentID().String(),
		github:     p.Github().String(),
		repository: p.Repository().String(),
		progress:   p.Progress().String(),
	}
	for _, t := range p.Tags() {
		b.tags = append(b.tags, t.String())
	}
	return b
}

func (b *PersonBuilder) WithName(v string) *PersonBuilder       { b.name = v; return b }
func (b *PersonBuilder) WithPhone(v string) *PersonBuilder      { b.phone = v; return b }
func (b *PersonBuilder) WithEmail(v string) *PersonBuilder      { b.email = v; return b }
func (b *PersonBuilder) WithClass(v string) *PersonBuilder      { b.class = v; return b }
func (b *PersonBuilder) WithStudentID(v string) *PersonBuilder  { b.studentID = v; return b }
func (b *PersonBuilder) WithGithub(v string) *PersonBuilder     { b.github = v; return b }
func (b *PersonBuilder) WithRepository(v string) *PersonBuilder { b.repository = v; return b }
func (b *PersonBuilder) WithProgress(v string) *PersonBuilder   { b.progress = v; return b }

// WithTags replaces the tag set
func (b *PersonBuilder) WithTags(tags ...string) *PersonBuilder {
	b.tags = append([]string(nil), tags...)
	return b
}

// Build creates the Person
func (b *PersonBuilder) Build() person.Person {
	return person.New(person.Details{
		Name:        must(person.NewName(b.name)),
		Phone:       must(person.NewPhone(b.phone)),
		Email:       must(person.NewEmail(b.email)),
		ClassNumber: must(person.NewClassNumber(b.class)),
		StudentID:   must(person.NewStudentID(b.studentID)),
		Github:      must(person.NewGithub(b.github)),
		Repository:  must(person.NewRepository(b.repository)),
		Tags:        must(person.NewTags(b.tags)),
		Progress:    must(person.NewProgress(b.progress)),
	})
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("testutil: invalid fixture value: %v", err))
	}
	return v
}
