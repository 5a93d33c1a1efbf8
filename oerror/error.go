package oerror

import "fmt"

// Error is the panic value raised by a failed debug assertion.
type Error struct {
	Err string
}

// New returns an Error with a message formatted from format and args.
func New(format string, args ...interface{}) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
