package serde

import "fmt"

// Error is the unified error type for both serialization and
// deserialization. It carries only a message; callers present or wrap
// it as they see fit. Equality is structural.
type Error struct {
	Message string
}

// NewError creates an Error with a static message.
func NewError(message string) *Error {
	return &Error{Message: message}
}

// Errorf creates an Error with a formatted message. Used for the
// free-form errors a value or visitor raises for domain reasons.
func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}
