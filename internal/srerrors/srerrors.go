// Package srerrors has errors that carry a message suitable for showing to a
// person typing expressions, alongside the usual technical description.
package srerrors

import (
	"errors"
	"fmt"
)

// inputError is an error caused by input that could not be understood. It
// includes a human-readable message to show to the user as well as a more
// technical "error message" style message.
type inputError struct {
	msg   string
	human string
	wrap  error
}

func (e *inputError) Error() string {
	return e.msg
}

// UserMessage shows the message that should be displayed to the user to
// describe the error.
func (e *inputError) UserMessage() string {
	return e.human
}

// Unwrap gives the error that the inputError wraps, if it wraps one.
func (e *inputError) Unwrap() error {
	return e.wrap
}

// Input returns a new error that has both the message to show the user and
// the technical description of the error.
func Input(human, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got InputError(%q)", human)
	}
	return &inputError{
		msg:   technical,
		human: human,
	}
}

// Inputf returns a new error that has a message to show to the user and an
// automatically generated Error() description.
func Inputf(humanFormat string, a ...interface{}) error {
	return Input(fmt.Sprintf(humanFormat, a...), "")
}

// WrapInput returns a new error that has both the message to show the user
// and the technical description of the error, and that wraps the given error.
// If technical is empty, the wrapped error's message is used.
func WrapInput(e error, human, technical string) error {
	if technical == "" {
		if e != nil {
			technical = e.Error()
		} else {
			technical = fmt.Sprintf("got InputError(%q)", human)
		}
	}
	return &inputError{
		msg:   technical,
		human: human,
		wrap:  e,
	}
}

// WrapInputf is WrapInput with a formatted human message.
func WrapInputf(e error, humanFormat string, a ...interface{}) error {
	return WrapInput(e, fmt.Sprintf(humanFormat, a...), "")
}

// UserMessage gets the message to display to the user for the given error. If
// err is or wraps an error created in this package, its human message is
// returned. Otherwise, err.Error() is returned.
func UserMessage(err error) string {
	var inErr *inputError
	if errors.As(err, &inErr) {
		return inErr.UserMessage()
	}
	return err.Error()
}
