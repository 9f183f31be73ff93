// Package serr has the errors returned by the srparse server's service layer.
// Handlers decide on an HTTP status by checking what kind of error they got
// with errors.Is against the Err* values below.
package serr

import "errors"

// Kinds of failure. Most errors from the service layer have one or more of
// these among their causes.
var (
	ErrNotFound      = errors.New("the requested entity could not be found")
	ErrAlreadyExists = errors.New("resource with same identifying information already exists")
	ErrDB            = errors.New("an error occured with the DB")
	ErrBadArgument   = errors.New("one or more of the arguments is invalid")
	ErrBodyUnmarshal = errors.New("malformed data in request")
	ErrInvalidTable  = errors.New("the action table is not well-formed")
	ErrRejected      = errors.New("the input was rejected by the parser")
)

// Error is a message tagged with any number of causes. errors.Is and errors.As
// look through all of the causes, so an Error can be both the underlying
// failure and the kind of failure it is.
type Error struct {
	msg    string
	causes []error
}

// New returns an Error with the given message and causes. Only the first
// cause shows up in the message.
func New(msg string, causes ...error) Error {
	return Error{msg: msg, causes: append([]error(nil), causes...)}
}

// WrapDB returns an Error for err that is also an ErrDB. msg may be empty.
func WrapDB(msg string, err error) Error {
	return New(msg, err, ErrDB)
}

// Reject returns an Error for a parser error that blames the input.
func Reject(err error) Error {
	return New("", err, ErrRejected)
}

func (e Error) Error() string {
	switch {
	case len(e.causes) == 0:
		return e.msg
	case e.msg == "":
		return e.causes[0].Error()
	default:
		return e.msg + ": " + e.causes[0].Error()
	}
}

func (e Error) Unwrap() []error {
	return e.causes
}
