package vexflag

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/xerrors"
)

// Status is the terminal result of the last mutating operation on a Parser.
type Status int

const (
	StatusOK Status = iota
	StatusAllocationFailure
	StatusInvalidValue
	StatusUnknownArgument
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusAllocationFailure:
		return "allocation failure"
	case StatusInvalidValue:
		return "invalid value"
	case StatusUnknownArgument:
		return "unknown argument"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Default help flag was seen, and should be handled.
var ErrDefaultHelp = errors.New("help flag")

// Default version flag was seen, and should be handled.
var ErrDefaultVersion = errors.New("version flag")

type statusError struct {
	status Status
	msg    string
}

func (se statusError) Error() string {
	if se.msg == "" {
		return se.status.String()
	}
	return se.msg
}

func invalidValue(format string, a ...interface{}) error {
	return statusError{StatusInvalidValue, fmt.Sprintf(format, a...)}
}

func unknownArgument(format string, a ...interface{}) error {
	return statusError{StatusUnknownArgument, fmt.Sprintf(format, a...)}
}

// Allocation failures carry no message.
func allocationFailure() error {
	return statusError{status: StatusAllocationFailure}
}

var errClosed = statusError{StatusInvalidValue, "parser is closed"}

// StatusOf returns the status carried by err. A nil error is StatusOK, and errors
// that didn't come from this package report StatusInvalidValue.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var se statusError
	if xerrors.As(err, &se) {
		return se.status
	}
	return StatusInvalidValue
}

// Reports whether the error was caused by what the user passed on the command line,
// rather than by the program or the environment.
func isUserError(err error) bool {
	switch StatusOf(err) {
	case StatusInvalidValue, StatusUnknownArgument:
		return true
	}
	return false
}
