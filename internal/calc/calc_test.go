package calc

import (
	"errors"
	"sync"
	"testing"

	"github.com/dekarrin/srparse/lr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Calculator_Eval(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "single value", input: "7", expect: "7"},
		{name: "product then sum", input: "2*3+4", expect: "10"},
		{name: "sum then product", input: "2 + 3 * 4", expect: "14"},
		{name: "parens", input: "2 * (3 + 4)", expect: "14"},
		{name: "nested parens", input: "((((1))))", expect: "1"},
		{name: "leading zeros", input: "0010 + 005", expect: "15"},
		{name: "zero", input: "0 * 12345", expect: "0"},
		{name: "beyond 64 bits", input: "99999999999999999999 * 2 + 1", expect: "199999999999999999999"},
		{name: "long chain", input: "1+1+1+1+1+1+1+1+1+1", expect: "10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			c, err := New()
			require.NoError(t, err)

			actual, err := c.Eval(tc.input)

			assert.NoError(err)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Calculator_Eval_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectPos   int
		expectMsg   string
		expectLrErr error
	}{
		{
			name:        "operator first",
			input:       "*",
			expectPos:   1,
			expectMsg:   "unexpected '*'; expected a number or '('",
			expectLrErr: lr.ErrSyntax,
		},
		{
			name:        "two numbers",
			input:       "7 8",
			expectPos:   3,
			expectMsg:   "unexpected number; expected ')', '*', '+', or end of expression",
			expectLrErr: lr.ErrSyntax,
		},
		{
			name:        "empty expression",
			input:       "",
			expectPos:   1,
			expectMsg:   "unexpected end of expression; expected a number or '('",
			expectLrErr: lr.ErrSyntax,
		},
		{
			name:        "dangling plus",
			input:       "2 +",
			expectPos:   4,
			expectMsg:   "unexpected end of expression; expected a number or '('",
			expectLrErr: lr.ErrSyntax,
		},
		{
			name:        "unclosed paren",
			input:       "(2",
			expectPos:   3,
			expectMsg:   "unexpected end of expression; expected ')'",
			expectLrErr: lr.ErrSyntax,
		},
		{
			name:      "unknown character",
			input:     "2 # 3",
			expectPos: 3,
			expectMsg: "unknown character '#'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			c, err := New()
			require.NoError(t, err)

			_, err = c.Eval(tc.input)

			var synErr *SyntaxError
			if !assert.True(errors.As(err, &synErr), "error is not a *SyntaxError: %v", err) {
				return
			}
			assert.Equal(tc.expectPos, synErr.Position())
			assert.Equal(tc.expectMsg, synErr.Message())
			if tc.expectLrErr != nil {
				assert.ErrorIs(err, tc.expectLrErr)
			}
		})
	}
}

func Test_SyntaxError_FullMessage(t *testing.T) {
	assert := assert.New(t)
	c, err := New()
	require.NoError(t, err)

	_, err = c.Eval("3 + * 4")

	var synErr *SyntaxError
	require.True(t, errors.As(err, &synErr))
	assert.Equal("*", synErr.Source())
	assert.Equal("3 + * 4\n    ^\nsyntax error: char 5: unexpected '*'; expected a number or '('", synErr.FullMessage())
}

func Test_Calculator_Tree(t *testing.T) {
	assert := assert.New(t)
	c, err := New()
	require.NoError(t, err)

	actual, err := c.Tree("2*3")

	assert.NoError(err)
	expect := `( S = "6" )
  \---: ( E = "6" )
          \---: ( T = "6" )
                  |---: (TERM "int" = "2")
                  |---: (TERM "*" = "*")
                  \---: ( T = "3" )
                          \---: (TERM "int" = "3")`
	assert.Equal(expect, actual.String())
}

func Test_NewWithTable(t *testing.T) {
	testCases := []struct {
		name      string
		table     lr.Table
		expectErr error
	}{
		{name: "built-in table", table: Table()},
		{name: "empty table", table: lr.Table{}, expectErr: lr.ErrInvalidTable},
		{
			name: "table for another grammar",
			table: lr.Table{States: []lr.State{
				{Actions: map[string]lr.Action{"x": lr.ShiftTo(1)}},
				{Actions: map[string]lr.Action{lr.EndSymbol: lr.ReduceBy(lr.NewDerivation("X", "x"))}},
			}},
			expectErr: lr.ErrMissingHandler,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			c, err := NewWithTable(tc.table)

			if tc.expectErr != nil {
				assert.ErrorIs(err, tc.expectErr)
				return
			}
			assert.NoError(err)
			assert.NotNil(c)
		})
	}
}

func Test_Calculator_BrokenTableIsNotSyntaxError(t *testing.T) {
	assert := assert.New(t)
	table := Table()
	// drop the goto on E from the start state
	delete(table.States[0].Actions, "E")
	c, err := NewWithTable(table)
	require.NoError(t, err)

	_, err = c.Eval("7")

	assert.ErrorIs(err, lr.ErrInvalidGoto)
	var synErr *SyntaxError
	assert.False(errors.As(err, &synErr))
}

func Test_Calculator_Concurrent(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			actual, err := c.Eval("2 * (3 + 4) + 1")
			if assert.NoError(t, err) {
				assert.Equal(t, "15", actual)
			}
		}()
	}
	wg.Wait()
}

func Test_Calculator_RegisterTraceListener(t *testing.T) {
	assert := assert.New(t)
	c, err := New()
	require.NoError(t, err)

	var lines []string
	c.RegisterTraceListener(func(s string) { lines = append(lines, s) })

	_, err = c.Eval("1")

	assert.NoError(err)
	assert.NotEmpty(lines)
}
