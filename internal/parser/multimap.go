package parser

import (
	"slices"

	"github.com/quocvuong92/tassist/internal/messages"
)

// ArgumentMultimap holds the tokenized arguments of one command line
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the text before the first prefix
func (m ArgumentMultimap) Preamble() string {
	return m.preamble
}

// Value returns the last value given for p
func (m ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p, in input order
func (m ArgumentMultimap) AllValues(p Prefix) []string {
	return slices.Clone(m.values[p])
}

// Has reports whether p appeared at least once
func (m ArgumentMultimap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

// HasAll reports whether every prefix appeared
func (m ArgumentMultimap) HasAll(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if !m.Has(p) {
			return false
		}
	}
	return true
}

// VerifyNoDuplicatePrefixesFor fails when any of prefixes appeared more than once
func (m ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	var dups []string
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			dups = append(dups, string(p))
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return &ParseError{Kind: DuplicateField, Message: messages.DuplicatePrefixes(dups)}
}
