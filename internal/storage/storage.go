// Package storage holds what the menu and order stores share: the storage
// error type and the per-call timeout.
package storage

import (
	"errors"
	"fmt"
	"time"
)

// ErrStorage matches every *Error with errors.Is.
var ErrStorage = errors.New("storage failure")

// Timeout bounds each read or write against a backing store.
const Timeout = 5 * time.Second

// Error reports a failed read, write or parse against a store. The mutation
// that triggered it was not applied.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrStorage }

// Wrap returns nil when err is nil, otherwise an *Error for op.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, Err: err}
}
