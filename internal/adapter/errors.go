package adapter

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an absent record. It is an expected outcome for Get
// when used as an existence check.
var ErrNotFound = errors.New("record not found")

// ErrNoBackend reports that every probed candidate base URL failed
var ErrNoBackend = errors.New("no reachable backend")

// TransportError wraps a network failure, timeout or non-2xx response from a
// remote backend
type TransportError struct {
	Op     string
	URL    string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Op, e.URL, e.Status)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err denotes an absent record
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTransport reports whether err is a transport-level failure
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
