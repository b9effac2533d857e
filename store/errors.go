package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation addresses an identifier with no
// matching document.
var ErrNotFound = errors.New("document not found")

var errNotConfigured = errors.New("database not configured")

// StoreError wraps a driver or connection failure with the operation and
// collection it happened on. Handlers surface its text as a 500.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
