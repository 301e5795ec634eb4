package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/quocvuong92/tassist/internal/command"
	"github.com/quocvuong92/tassist/internal/person"
)

// ErrInvalidIndex is returned for an index that is not a positive integer
var ErrInvalidIndex = errors.New("index is not a non-zero unsigned integer")

// ParseIndex parses a 1-based index as typed by the user
func ParseIndex(s string) (command.Index, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") {
		return command.Index{}, ErrInvalidIndex
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return command.Index{}, ErrInvalidIndex
	}
	return command.IndexFromOneBased(n), nil
}

// ParseTarget turns a preamble into a target. A student ID shaped preamble
// selects by ID, otherwise it must be an index. usage is reported on failure.
func ParseTarget(preamble, usage string) (command.Target, error) {
	s := strings.TrimSpace(preamble)
	if person.IsValidStudentID(s) {
		id, err := person.NewStudentID(s)
		if err != nil {
			return command.Target{}, invalidFormat(usage, err)
		}
		return command.ByStudentID(id), nil
	}
	i, err := ParseIndex(s)
	if err != nil {
		return command.Target{}, invalidFormat(usage, err)
	}
	return command.ByIndex(i), nil
}

// required builds a value from the last value of p
func required[T any](m ArgumentMultimap, p Prefix, build func(string) (T, error)) (T, error) {
	raw, _ := m.Value(p)
	v, err := build(raw)
	if err != nil {
		return v, invalidValue("", err)
	}
	return v, nil
}

// optional builds a value from p when present, else returns fallback
func optional[T any](m ArgumentMultimap, p Prefix, build func(string) (T, error), fallback T) (T, error) {
	if !m.Has(p) {
		return fallback, nil
	}
	return required(m, p, build)
}

// optionalPtr builds a value from p when present, else returns nil
func optionalPtr[T any](m ArgumentMultimap, p Prefix, build func(string) (T, error)) (*T, error) {
	if !m.Has(p) {
		return nil, nil
	}
	v, err := required(m, p, build)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
