package srerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_UserMessage(t *testing.T) {
	cause := errors.New("bad token")

	testCases := []struct {
		name        string
		err         error
		expectHuman string
		expectTech  string
	}{
		{
			name:        "plain error",
			err:         errors.New("disk on fire"),
			expectHuman: "disk on fire",
			expectTech:  "disk on fire",
		},
		{
			name:        "input error",
			err:         Input("I don't understand that.", "lex: no rule for '#'"),
			expectHuman: "I don't understand that.",
			expectTech:  "lex: no rule for '#'",
		},
		{
			name:        "formatted input error",
			err:         Inputf("%q is not a number", "x"),
			expectHuman: `"x" is not a number`,
			expectTech:  `got InputError("\"x\" is not a number")`,
		},
		{
			name:        "wrapped with no technical message",
			err:         WrapInputf(cause, "Expected %s.", "a number"),
			expectHuman: "Expected a number.",
			expectTech:  "bad token",
		},
		{
			name:        "input error wrapped by fmt",
			err:         fmt.Errorf("line 3: %w", Input("Missing ')'.", "tech")),
			expectHuman: "Missing ')'.",
			expectTech:  "line 3: tech",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expectHuman, UserMessage(tc.err))
			assert.Equal(tc.expectTech, tc.err.Error())
		})
	}
}

func Test_WrapInput_Unwraps(t *testing.T) {
	cause := errors.New("bad token")

	err := WrapInput(cause, "Something is wrong.", "")

	assert.ErrorIs(t, err, cause)
}
