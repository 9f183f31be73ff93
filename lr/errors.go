package lr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSyntax is matched by a *SyntaxError.
	ErrSyntax = errors.New("syntax error")

	// ErrStackUnderflow is matched by a *StackUnderflowError.
	ErrStackUnderflow = errors.New("parse stack underflow")

	// ErrInvalidGoto is matched by an *InvalidGotoError.
	ErrInvalidGoto = errors.New("invalid goto")

	// ErrUnexpectedEndOfInput is matched by an *UnexpectedEndOfInputError.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

	// ErrMissingHandler is matched by a *MissingHandlerError.
	ErrMissingHandler = errors.New("missing handler")

	// ErrInvalidTable is matched by a *TableError.
	ErrInvalidTable = errors.New("invalid action table")

	// ErrStepLimit is matched by a *StepLimitError.
	ErrStepLimit = errors.New("step limit reached")
)

// SyntaxError is returned when the table has no action for the current state
// and lookahead symbol.
type SyntaxError struct {
	// State is the automaton state on top of the stack.
	State int

	// Symbol is the symbol of the lookahead token.
	Symbol string

	// Data is the data of the lookahead token.
	Data string

	// Position is the 0-based index of the lookahead token in the input.
	Position int

	// Expected is the terminal symbols that do have an action in State.
	Expected []string
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("syntax error at position %d: unexpected %s in state %d", e.Position, describeSymbol(e.Symbol), e.State)
	if len(e.Expected) > 0 {
		msg += "; expected one of " + strings.Join(describeSymbols(e.Expected), ", ")
	}
	return msg
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// StackUnderflowError is returned when a reduction needs more stack frames
// than are present. It means the table and the derivation lengths disagree.
type StackUnderflowError struct {
	Derivation Derivation

	// Have is the number of frames that could be popped, not counting the
	// bottom frame.
	Have int
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow reducing by %s: need %d frames but have %d", e.Derivation.String(), e.Derivation.Len(), e.Have)
}

func (e *StackUnderflowError) Is(target error) bool {
	return target == ErrStackUnderflow
}

// InvalidGotoError is returned when the goto lookup after a reduction finds no
// entry or finds an entry that is not a Shift.
type InvalidGotoError struct {
	State  int
	Symbol string

	// Found is the non-Shift action found, or nil if there was none.
	Found *Action
}

func (e *InvalidGotoError) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("no goto from state %d on %q", e.State, e.Symbol)
	}
	return fmt.Sprintf("goto from state %d on %q is %s, not a shift", e.State, e.Symbol, e.Found.String())
}

func (e *InvalidGotoError) Is(target error) bool {
	return target == ErrInvalidGoto
}

// UnexpectedEndOfInputError is returned when the input runs out before Accept.
// This happens when the end-of-input token is missing or the token stream is
// truncated.
type UnexpectedEndOfInputError struct {
	// Position is the number of tokens consumed.
	Position int
}

func (e *UnexpectedEndOfInputError) Error() string {
	return fmt.Sprintf("unexpected end of input after %d tokens; is the %s token missing?", e.Position, EndSymbol)
}

func (e *UnexpectedEndOfInputError) Is(target error) bool {
	return target == ErrUnexpectedEndOfInput
}

// StepLimitError is returned when a parse takes more steps than the limit set
// with Parser.SetStepLimit. A table whose reductions can cycle without
// shifting, such as an empty reduction whose goto leads back to the same
// state, never finishes without one.
type StepLimitError struct {
	Limit int

	// Position is the number of tokens consumed when the limit was hit.
	Position int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("parse did not finish within %d steps (stopped after %d tokens)", e.Limit, e.Position)
}

func (e *StepLimitError) Is(target error) bool {
	return target == ErrStepLimit
}

// MissingHandlerError is returned when creating a Parser from a table that
// reduces by derivations that have no registered Handler.
type MissingHandlerError struct {
	Derivations []Derivation
}

func (e *MissingHandlerError) Error() string {
	strs := make([]string, len(e.Derivations))
	for i := range e.Derivations {
		strs[i] = e.Derivations[i].String()
	}
	return fmt.Sprintf("no handler registered for: %s", strings.Join(strs, "; "))
}

func (e *MissingHandlerError) Is(target error) bool {
	return target == ErrMissingHandler
}

// TableError is returned by Table.Validate and by table decoding when a table
// is malformed.
type TableError struct {
	State   int
	Symbol  string
	Problem string
}

func (e *TableError) Error() string {
	if e.Symbol == "" && e.State == 0 {
		return "invalid action table: " + e.Problem
	}
	return fmt.Sprintf("invalid action table: state %d, symbol %q: %s", e.State, e.Symbol, e.Problem)
}

func (e *TableError) Is(target error) bool {
	return target == ErrInvalidTable
}

func describeSymbol(sym string) string {
	if sym == EndSymbol {
		return "end of input"
	}
	return fmt.Sprintf("%q", sym)
}

func describeSymbols(syms []string) []string {
	described := make([]string, len(syms))
	for i := range syms {
		described[i] = describeSymbol(syms[i])
	}
	return described
}
