// Package calc is an arithmetic expression language run on the lr engine. It
// supports non-negative integers of any size, addition, multiplication, and
// parentheses, with multiplication binding tighter than addition.
package calc

import (
	_ "embed"
	"errors"
	"fmt"
	"math/big"

	"github.com/dekarrin/srparse/internal/util"
	"github.com/dekarrin/srparse/lr"
)

//go:embed arith.json
var arithTableJSON []byte

// Derivations of the arithmetic grammar.
var (
	DerivStart   = lr.NewDerivation("S", "E")
	DerivSum     = lr.NewDerivation("E", "T", SymPlus, "E")
	DerivTerm    = lr.NewDerivation("E", "T")
	DerivProduct = lr.NewDerivation("T", SymInt, SymTimes, "T")
	DerivInt     = lr.NewDerivation("T", SymInt)
	DerivGrouped = lr.NewDerivation("T", SymLParen, "E", SymRParen)
)

// Table returns the action table for the arithmetic grammar.
func Table() lr.Table {
	t, err := lr.DecodeTable(arithTableJSON, lr.FormatJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded arithmetic table is invalid: %v", err))
	}
	return t
}

// Handlers returns a Registry with the semantic actions of the arithmetic
// grammar. Values are decimal integer strings.
func Handlers() *lr.Registry {
	reg := &lr.Registry{}
	reg.Register(DerivStart, lr.PassThrough)
	reg.Register(DerivSum, func(data []string) string {
		return new(big.Int).Add(parseInt(data[0]), parseInt(data[2])).String()
	})
	reg.Register(DerivTerm, lr.PassThrough)
	reg.Register(DerivProduct, func(data []string) string {
		return new(big.Int).Mul(parseInt(data[0]), parseInt(data[2])).String()
	})
	reg.Register(DerivInt, func(data []string) string {
		return parseInt(data[0]).String()
	})
	reg.Register(DerivGrouped, func(data []string) string {
		return data[1]
	})
	return reg
}

// parseInt parses a decimal integer. The lexer only produces digit runs, so
// this cannot fail on data synthesized from a lexed expression.
func parseInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("not a decimal integer: %q", s))
	}
	return n
}

// Calculator evaluates arithmetic expressions. It is safe for concurrent use
// once created.
type Calculator struct {
	p *lr.Parser
}

// New creates a Calculator that uses the built-in arithmetic table.
func New() (*Calculator, error) {
	return NewWithTable(Table())
}

// NewWithTable creates a Calculator that parses with the given table instead
// of the built-in one. The table must reduce only by the arithmetic grammar's
// derivations.
func NewWithTable(t lr.Table) (*Calculator, error) {
	p, err := lr.New(t, Handlers())
	if err != nil {
		return nil, err
	}
	return &Calculator{p: p}, nil
}

// RegisterTraceListener sets a function to receive a description of every
// step the parser takes. It must be called before the Calculator is used.
func (c *Calculator) RegisterTraceListener(listener func(s string)) {
	c.p.RegisterTraceListener(listener)
}

// Eval evaluates expr and returns its value in decimal. If expr is not a
// valid expression, the returned error is a *SyntaxError.
func (c *Calculator) Eval(expr string) (string, error) {
	tree, err := c.Tree(expr)
	if err != nil {
		return "", err
	}
	return tree.Data, nil
}

// Tree parses expr and returns its parse tree. Every node's Data is the value
// of the subexpression it covers.
func (c *Calculator) Tree(expr string) (*lr.Node, error) {
	toks, err := Lex(expr)
	if err != nil {
		return nil, err
	}

	lrToks := make([]lr.Token, len(toks))
	for i := range toks {
		lrToks[i] = toks[i]
	}

	tree, err := c.p.Parse(lrToks)
	if err != nil {
		return nil, translateError(err, expr, toks)
	}
	return tree, nil
}

// translateError converts an error from the parser into one that describes
// the problem in terms of the expression text.
func translateError(err error, expr string, toks []Token) error {
	var synErr *lr.SyntaxError
	if errors.As(err, &synErr) && synErr.Position < len(toks) {
		tok := toks[synErr.Position]

		var msg string
		if tok.Class == lr.EndSymbol {
			msg = "unexpected end of expression"
		} else {
			msg = fmt.Sprintf("unexpected %s", describeSymbol(tok.Class))
		}
		if len(synErr.Expected) > 0 {
			msg += "; expected " + util.JoinOr(describeExpected(synErr.Expected))
		}

		return &SyntaxError{
			sourceLine: expr,
			source:     tok.Lexeme,
			pos:        tok.Column,
			message:    msg,
			wrap:       err,
		}
	}

	if errors.Is(err, lr.ErrUnexpectedEndOfInput) {
		return &SyntaxError{sourceLine: expr, message: "expression is incomplete", wrap: err}
	}

	// anything else is a problem with the table, not the expression
	return fmt.Errorf("evaluate expression: %w", err)
}

func describeSymbol(sym string) string {
	switch sym {
	case SymInt:
		return "number"
	case lr.EndSymbol:
		return "end of expression"
	default:
		return fmt.Sprintf("'%s'", sym)
	}
}

// describeExpected gives the human names of the expected symbols, with
// numbers first and end of expression last.
func describeExpected(syms []string) []string {
	order := func(s string) int {
		switch s {
		case SymInt:
			return 0
		case lr.EndSymbol:
			return 2
		default:
			return 1
		}
	}
	sorted := util.SortBy(syms, func(l, r string) bool {
		return order(l) < order(r)
	})

	names := make([]string, len(sorted))
	for i := range sorted {
		name := describeSymbol(sorted[i])
		if sorted[i] == SymInt {
			name = util.ArticleFor(name, false) + " " + name
		}
		names[i] = name
	}
	return names
}
