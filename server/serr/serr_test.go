package serr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Error_Error(t *testing.T) {
	testCases := []struct {
		name   string
		err    Error
		expect string
	}{
		{name: "message only", err: New("bad name"), expect: "bad name"},
		{name: "cause only", err: New("", ErrNotFound), expect: ErrNotFound.Error()},
		{name: "message and cause", err: New("could not get table", ErrNotFound), expect: "could not get table: " + ErrNotFound.Error()},
		{name: "wrapped DB error", err: WrapDB("could not create table", fmt.Errorf("disk full")), expect: "could not create table: disk full"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.err.Error())
		})
	}
}

func Test_Error_Is(t *testing.T) {
	assert := assert.New(t)

	err := New("a table with that name already exists", ErrAlreadyExists, ErrBadArgument)
	assert.ErrorIs(err, ErrAlreadyExists)
	assert.ErrorIs(err, ErrBadArgument)
	assert.NotErrorIs(err, ErrNotFound)

	dbErr := WrapDB("", fmt.Errorf("locked"))
	assert.ErrorIs(dbErr, ErrDB)

	var wrapped error = fmt.Errorf("service: %w", err)
	assert.True(errors.Is(wrapped, ErrAlreadyExists))
}

type causeErr struct{ code int }

func (c *causeErr) Error() string { return fmt.Sprintf("code %d", c.code) }

func Test_Error_As(t *testing.T) {
	assert := assert.New(t)

	err := New("", &causeErr{code: 7}, ErrRejected)

	var ce *causeErr
	if assert.ErrorAs(err, &ce) {
		assert.Equal(7, ce.code)
	}
	assert.ErrorIs(err, ErrRejected)
}

func Test_Reject(t *testing.T) {
	assert := assert.New(t)
	cause := &causeErr{code: 3}

	err := Reject(cause)

	assert.Equal("code 3", err.Error())
	assert.ErrorIs(err, ErrRejected)
	assert.NotErrorIs(err, ErrInvalidTable)

	var ce *causeErr
	assert.ErrorAs(err, &ce)
}

func Test_New_CopiesCauses(t *testing.T) {
	causes := []error{ErrNotFound}
	err := New("lookup", causes...)
	causes[0] = ErrDB

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrDB)
}
