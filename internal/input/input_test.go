package input

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DirectLineReader_ReadLine(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		allowBlank bool
		expect     []string
	}{
		{name: "single line", input: "2 + 3\n", expect: []string{"2 + 3"}},
		{name: "no trailing newline", input: "2 + 3", expect: []string{"2 + 3"}},
		{name: "blank lines skipped", input: "\n  \n4\n\n5\n", expect: []string{"4", "5"}},
		{name: "blank lines kept", input: "4\n\n5\n", allowBlank: true, expect: []string{"4", "", "5"}},
		{name: "whitespace trimmed", input: "   7 * 8\t\n", expect: []string{"7 * 8"}},
		{name: "empty input", input: "", expect: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			r := NewDirectReader(strings.NewReader(tc.input))
			r.AllowBlank(tc.allowBlank)
			defer r.Close()

			var actual []string
			for {
				line, err := r.ReadLine()
				if err == io.EOF {
					break
				}
				if !assert.NoError(err) {
					return
				}
				actual = append(actual, line)
			}

			assert.Equal(tc.expect, actual)
		})
	}
}
