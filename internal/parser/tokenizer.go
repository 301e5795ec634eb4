package parser

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

type occurrence struct {
	start  int
	prefix Prefix
}

// Tokenize splits args into a preamble and the values following each prefix.
// A prefix only counts at the start of args or right after whitespace. The
// preamble is kept as is; values are trimmed.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	found := findOccurrences(args, prefixes)

	m := ArgumentMultimap{values: make(map[Prefix][]string)}
	if len(found) == 0 {
		m.preamble = args
		return m
	}

	m.preamble = args[:found[0].start]
	for i, occ := range found {
		end := len(args)
		if i+1 < len(found) {
			end = found[i+1].start
		}
		value := strings.TrimSpace(args[occ.start+len(occ.prefix) : end])
		m.values[occ.prefix] = append(m.values[occ.prefix], value)
	}
	return m
}

func findOccurrences(args string, prefixes []Prefix) []occurrence {
	var found []occurrence
	for i, p := range prefixes {
		if p == "" || slices.Contains(prefixes[:i], p) {
			continue
		}
		from := 0
		for {
			j := strings.Index(args[from:], string(p))
			if j < 0 {
				break
			}
			start := from + j
			if startsToken(args, start) {
				found = append(found, occurrence{start: start, prefix: p})
			}
			from = start + 1
		}
	}
	slices.SortStableFunc(found, func(a, b occurrence) int { return cmp.Compare(a.start, b.start) })
	return found
}

func startsToken(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsSpace(r)
}
