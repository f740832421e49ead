package database

import (
	"errors"
	"fmt"
)

// ErrConnect is matched by every ConnectError.
var ErrConnect = errors.New("cannot connect to database")

// ConnectError is returned when no usable connection could be established,
// after schema bootstrap and host fallback have been tried where applicable.
type ConnectError struct {
	Target     string  // Address of the last connection attempt
	Err        error   // Failure of the last attempt
	Suppressed []error // Earlier failures that led to the recovery attempt
}

func newConnectError(target string, err error, suppressed ...error) *ConnectError {
	return &ConnectError{
		Target:     target,
		Err:        err,
		Suppressed: suppressed,
	}
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrConnect, e.Target, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func (e *ConnectError) Is(target error) bool {
	return target == ErrConnect
}
