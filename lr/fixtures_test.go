package lr

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// arithmetic grammar:
//
//	S -> E
//	E -> T + E | T
//	T -> int * T | int | ( E )
var (
	dSE    = NewDerivation("S", "E")
	dETplE = NewDerivation("E", "T", "+", "E")
	dET    = NewDerivation("E", "T")
	dTintT = NewDerivation("T", "int", "*", "T")
	dTint  = NewDerivation("T", "int")
	dTparE = NewDerivation("T", "(", "E", ")")
)

func loadArithTable(t *testing.T) Table {
	t.Helper()
	data, err := os.ReadFile("testdata/arith.json")
	require.NoError(t, err)
	table, err := DecodeTable(data, FormatJSON)
	require.NoError(t, err)
	return table
}

func atoi(t *testing.T, s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		t.Errorf("handler got non-integer data %q", s)
	}
	return n
}

func arithHandlers(t *testing.T) *Registry {
	reg := &Registry{}
	reg.Register(dSE, PassThrough)
	reg.Register(dETplE, func(data []string) string {
		return strconv.Itoa(atoi(t, data[0]) + atoi(t, data[2]))
	})
	reg.Register(dET, PassThrough)
	reg.Register(dTintT, func(data []string) string {
		return strconv.Itoa(atoi(t, data[0]) * atoi(t, data[2]))
	})
	reg.Register(dTint, func(data []string) string {
		return strconv.Itoa(atoi(t, data[0]))
	})
	reg.Register(dTparE, func(data []string) string {
		return data[1]
	})
	return reg
}

// tokens turns "int:2 * int:3 $" style input into tokens. A bare word is
// both the symbol and the data; "$" is the end token.
func tokens(s string) []Token {
	var toks []Token
	for _, f := range strings.Fields(s) {
		if f == "$" {
			toks = append(toks, EndToken())
			continue
		}
		sym, data, found := strings.Cut(f, ":")
		if !found {
			data = sym
		}
		toks = append(toks, NewToken(sym, data))
	}
	return toks
}

func leaf(sym, data string) *Node {
	return &Node{Symbol: sym, Data: data}
}

func inner(sym, data string, children ...*Node) *Node {
	return &Node{Symbol: sym, Data: data, Children: children}
}
