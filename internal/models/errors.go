package models

import "errors"

// ErrNotFound is returned when an operation references an id that does
// not exist in its document.
var ErrNotFound = errors.New("not found")

// ValidationError indicates a request was missing a required field.
// The message is safe to return to the client.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}
