package audit

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

const (
	// ErrIncompleteRecord is returned when a record is missing Z, R or S.
	ErrIncompleteRecord = ErrorKind("ErrIncompleteRecord")

	// ErrUnrecoverable is returned when the pair does not determine the key
	// under the given relationship.
	ErrUnrecoverable = ErrorKind("ErrUnrecoverable")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a key recovery failure.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
