// Package exitcode defines the process exit statuses used by neatfmt and a
// typed error that carries one through a cobra RunE chain. Commands never call
// os.Exit themselves; main inspects the returned error so tests can observe
// exit decisions without terminating the process.
package exitcode

import (
	"errors"
	"fmt"
)

const (
	// Success indicates the command completed without problems.
	Success = 0

	// Usage indicates invalid command arguments.
	Usage = 1

	// Violations indicates check found formatting violations.
	Violations = 2

	// ProcessErrors indicates one or more files could not be processed.
	ProcessErrors = 3
)

// Error is an error that selects a specific process exit status.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error with the given code and formatted message.
func New(code int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// From maps an error returned by a command to an exit status. A nil error is
// Success, a *Error carries its own code, and anything else (cobra argument
// validation included) is a usage error.
func From(err error) int {
	if err == nil {
		return Success
	}
	var exitErr *Error
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return Usage
}
