package model

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/quocvuong92/tassist/internal/person"
)

// Predicate selects the persons shown in the filtered view
type Predicate func(person.Person) bool

// ShowAll matches every person
func ShowAll(person.Person) bool { return true }

// NameContainsKeywords matches persons whose name contains any keyword as a
// whole word, ignoring case
func NameContainsKeywords(keywords []string) Predicate {
	fold := cases.Fold()
	want := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			want[fold.String(k)] = struct{}{}
		}
	}
	return func(p person.Person) bool {
		for _, word := range strings.Fields(p.Name().String()) {
			if _, ok := want[fold.String(word)]; ok {
				return true
			}
		}
		return false
	}
}
