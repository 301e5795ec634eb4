// Package messages holds the user-facing strings shared by parsers and commands.
package messages

import (
	"slices"
	"strings"

	"github.com/quocvuong92/tassist/internal/person"
)

const (
	UnknownCommand              = "Unknown command"
	InvalidCommandFormat        = "Invalid command format! \n%s"
	InvalidPersonDisplayedIndex = "The person index provided is invalid"
	PersonsListedOverview       = "%d persons listed!"
	PersonNotFound              = "Person not found: "
	DuplicatePerson             = "This person already exists in the address book."
	DuplicateFields             = "Multiple values specified for the following single-valued field(s): "
	GithubAccountNotFound       = "GitHub account does not exist: %s"
)

// DuplicatePrefixes builds the DuplicateFields message for the given prefixes
func DuplicatePrefixes(prefixes []string) string {
	sorted := slices.Clone(prefixes)
	slices.Sort(sorted)
	return DuplicateFields + strings.Join(slices.Compact(sorted), " ")
}

// FormatPerson renders p for feedback messages
func FormatPerson(p person.Person) string {
	var sb strings.Builder
	sb.WriteString(p.Name().String())
	sb.WriteString("; Phone: ")
	sb.WriteString(p.Phone().String())
	sb.WriteString("; Email: ")
	sb.WriteString(p.Email().String())
	sb.WriteString("; Class: ")
	sb.WriteString(p.ClassNumber().String())
	sb.WriteString("; Student ID: ")
	sb.WriteString(p.StudentID().String())
	sb.WriteString("; GitHub: ")
	sb.WriteString(p.Github().String())
	if !p.Repository().IsEmpty() {
		sb.WriteString("; Repository: ")
		sb.WriteString(p.Repository().String())
	}
	sb.WriteString("; Progress: ")
	sb.WriteString(p.Progress().String())
	if tags := p.Tags(); len(tags) > 0 {
		sb.WriteString("; Tags: ")
		for _, t := range tags {
			sb.WriteString("[" + t.String() + "]")
		}
	}
	return sb.String()
}
