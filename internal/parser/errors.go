package parser

import (
	"fmt"

	"github.com/quocvuong92/tassist/internal/messages"
)

// ErrorKind classifies a ParseError
type ErrorKind int

const (
	// InvalidFormat means the line does not follow the command's syntax
	InvalidFormat ErrorKind = iota
	// DuplicateField means a single-valued prefix was repeated
	DuplicateField
	// InvalidValue means a field value failed its format check
	InvalidValue
	// UnknownCommand means the command word is not recognised
	UnknownCommand
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidFormat:
		return "invalid format"
	case DuplicateField:
		return "duplicate field"
	case InvalidValue:
		return "invalid value"
	case UnknownCommand:
		return "unknown command"
	default:
		return "unknown"
	}
}

// ParseError is returned when a command line cannot be turned into a command
type ParseError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// invalidFormat wraps detail, usually a usage text, in the invalid format message
func invalidFormat(detail string, cause error) *ParseError {
	return &ParseError{
		Kind:    InvalidFormat,
		Message: fmt.Sprintf(messages.InvalidCommandFormat, detail),
		Cause:   cause,
	}
}

// invalidValue re-surfaces a value-type failure, keeping it as the cause
func invalidValue(message string, cause error) *ParseError {
	if message == "" && cause != nil {
		message = cause.Error()
	}
	return &ParseError{Kind: InvalidValue, Message: message, Cause: cause}
}
