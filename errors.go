package classwork

import "errors"

// Error kinds.
var (
	// ErrType reports an operand or argument of the wrong kind.
	ErrType = errors.New("unsupported type")
	// ErrValue reports a value out of its allowed domain.
	ErrValue = errors.New("invalid value")
	// ErrDivisionByZero reports a zero denominator or divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDuplicateKey reports an insertion whose key already exists.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound reports a reference to a key that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCollection reports a removal from an empty collection.
	ErrEmptyCollection = errors.New("empty collection")
)
