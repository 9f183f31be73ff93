package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_New(t *testing.T) {
	testCases := []struct {
		name        string
		debug       bool
		expectDebug bool
	}{
		{name: "quiet", debug: false, expectDebug: false},
		{name: "debug", debug: true, expectDebug: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			var buf bytes.Buffer

			l := New(&buf, "SRPARSE", tc.debug, true)
			l.Debug("reducing", "derivation", "E -> T")
			l.Warn("handler replaced", "derivation", "T -> int")

			out := buf.String()
			assert.Contains(out, "SRPARSE")
			assert.Contains(out, "handler replaced")
			if tc.expectDebug {
				assert.Contains(out, "reducing")
			} else {
				assert.NotContains(out, "reducing")
			}
		})
	}
}
