package ecdsa

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrRandomnessUnavailable is returned when the randomness source fails
	// or returns a value outside the requested range.
	ErrRandomnessUnavailable = ErrorKind("ErrRandomnessUnavailable")

	// ErrEphemeralGenerationExhausted is returned when signing could not find
	// a usable ephemeral scalar within the attempt cap.
	ErrEphemeralGenerationExhausted = ErrorKind("ErrEphemeralGenerationExhausted")

	// ErrInvalidSignature is returned when a signature is out of range or
	// does not match the message and public key.
	ErrInvalidSignature = ErrorKind("ErrInvalidSignature")

	// ErrInvalidPrivateKey is returned when a private scalar is not in
	// (0, N) or belongs to a different curve.
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")

	// ErrInvalidPublicKey is returned when a public key is not a non-identity
	// point on the curve.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to ECDSA key generation, signing or
// verification. It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error.
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

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// signatureError creates an Error of kind ErrInvalidSignature.
func signatureError(desc string) Error {
	return makeError(ErrInvalidSignature, desc)
}
