package document

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyInitialised = errors.New("document already initialised")
	ErrNilSource          = errors.New("document source is nil")
	ErrNotInitialised     = errors.New("document not initialised")
	ErrOutOfBounds        = errors.New("offset beyond document bounds")
	ErrInvalidSnapshot    = errors.New("invalid snapshot")
)

// UsageError reports a violated calling contract. Initialise and Restore
// return it; queries on an empty document and raw reads outside the text
// panic with it.
type UsageError struct {
	Op  string
	Err error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageError(op string, err error) *UsageError {
	return &UsageError{Op: op, Err: err}
}
