package parser

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Prefix marks the start of an argument value, such as "n/"
type Prefix string

func (p Prefix) String() string { return string(p) }

// Syntax is the table of prefixes the parsers recognise. It is passed by
// value, so parsers cannot change a caller's table.
type Syntax struct {
	Name       Prefix
	Phone      Prefix
	Email      Prefix
	Class      Prefix
	StudentID  Prefix
	Github     Prefix
	Tag        Prefix
	Progress   Prefix
	Username   Prefix
	Repository Prefix
}

// DefaultSyntax returns the standard prefix table
func DefaultSyntax() Syntax {
	return Syntax{
		Name:       "n/",
		Phone:      "p/",
		Email:      "e/",
		Class:      "c/",
		StudentID:  "s/",
		Github:     "g/",
		Tag:        "t/",
		Progress:   "pr/",
		Username:   "u/",
		Repository: "r/",
	}
}

// Errors
var (
	ErrEmptyPrefix     = errors.New("prefix must not be empty")
	ErrPrefixSlash     = errors.New("prefix must end with '/'")
	ErrPrefixSpace     = errors.New("prefix must not contain whitespace")
	ErrDuplicatePrefix = errors.New("prefix is used for more than one field")
)

// All returns every prefix in the table, sorted
func (s Syntax) All() []Prefix {
	v := reflect.ValueOf(s)
	out := make([]Prefix, 0, v.NumField())
	for i := range v.NumField() {
		out = append(out, v.Field(i).Interface().(Prefix))
	}
	slices.Sort(out)
	return out
}

// Validate checks that every prefix is usable and unique
func (s Syntax) Validate() error {
	all := s.All()
	for i, p := range all {
		switch {
		case p == "":
			return ErrEmptyPrefix
		case !strings.HasSuffix(string(p), "/"):
			return fmt.Errorf("%q: %w", p, ErrPrefixSlash)
		case strings.ContainsAny(string(p), " \t\r\n"):
			return fmt.Errorf("%q: %w", p, ErrPrefixSpace)
		case i > 0 && all[i-1] == p:
			return fmt.Errorf("%q: %w", p, ErrDuplicatePrefix)
		}
	}
	return nil
}
