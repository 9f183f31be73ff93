package calc

import (
	"fmt"
	"strings"
)

// SyntaxError is returned when an expression cannot be lexed or parsed.
type SyntaxError struct {
	sourceLine string
	source     string

	// position in line of error, 1-indexed.
	pos     int
	message string

	wrap error
}

func (se *SyntaxError) Error() string {
	if se.pos == 0 {
		return fmt.Sprintf("syntax error: %s", se.message)
	}
	return fmt.Sprintf("syntax error: char %d: %s", se.pos, se.message)
}

// Unwrap gives the parser error that caused this one, if there is one.
func (se *SyntaxError) Unwrap() error {
	return se.wrap
}

// Source returns the exact text that caused the issue. For errors at the end
// of the expression this is an empty string.
func (se *SyntaxError) Source() string {
	return se.source
}

// Position returns the 1-indexed character position of the error, or 0 if it
// is not known.
func (se *SyntaxError) Position() int {
	return se.pos
}

// Message returns the description of the problem without position info.
func (se *SyntaxError) Message() string {
	return se.message
}

// FullMessage shows the complete message of the error along with the
// offending expression and a cursor to the problem position.
func (se *SyntaxError) FullMessage() string {
	errMsg := se.Error()
	if cursor := se.SourceLineWithCursor(); cursor != "" {
		errMsg = cursor + "\n" + errMsg
	}
	return errMsg
}

// SourceLineWithCursor returns the expression on one line and directly under
// it a caret pointing at where the error occurred. Returns a blank string if
// the position is not known.
func (se *SyntaxError) SourceLineWithCursor() string {
	if se.pos == 0 {
		return ""
	}
	return se.sourceLine + "\n" + strings.Repeat(" ", se.pos-1) + "^"
}
