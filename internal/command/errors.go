package command

// ErrorKind classifies an ExecutionError
type ErrorKind int

const (
	// InvalidIndex means the index is outside the filtered list
	InvalidIndex ErrorKind = iota
	// NotFound means no shown person has the student ID
	NotFound
	// DuplicatePerson means the student ID is already taken
	DuplicatePerson
	// InvalidGithub means the GitHub link cannot be used
	InvalidGithub
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidIndex:
		return "invalid index"
	case NotFound:
		return "not found"
	case DuplicatePerson:
		return "duplicate person"
	case InvalidGithub:
		return "invalid github"
	default:
		return "unknown"
	}
}

// ExecutionError is returned when a well-formed command cannot be applied
type ExecutionError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ExecutionError) Error() string {
	return e.Message
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

func executionError(kind ErrorKind, message string, err error) *ExecutionError {
	return &ExecutionError{Kind: kind, Message: message, Err: err}
}
