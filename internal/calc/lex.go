package calc

import (
	"fmt"

	"github.com/dekarrin/srparse/lr"
)

// Terminal symbols of the arithmetic grammar.
const (
	SymInt    = "int"
	SymPlus   = "+"
	SymTimes  = "*"
	SymLParen = "("
	SymRParen = ")"
)

// Token is a lexeme of an arithmetic expression.
type Token struct {
	// Class is the terminal symbol the token is an instance of.
	Class string

	// Lexeme is the exact text of the token.
	Lexeme string

	// Column is the 1-indexed character position of the start of the token.
	Column int
}

// TreeNode returns the parse tree leaf for the token.
func (tok Token) TreeNode() lr.Node {
	return lr.Node{Symbol: tok.Class, Data: tok.Lexeme}
}

func (tok Token) String() string {
	return fmt.Sprintf("<%s %q @%d>", tok.Class, tok.Lexeme, tok.Column)
}

// Lex splits expr into tokens. The returned slice always ends with a token
// of class lr.EndSymbol positioned just past the last character. Whitespace
// separates tokens and is otherwise ignored.
func Lex(expr string) ([]Token, error) {
	runes := []rune(expr)
	var toks []Token

	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		col := i + 1

		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			continue
		case '0' <= ch && ch <= '9':
			start := i
			for i+1 < len(runes) && '0' <= runes[i+1] && runes[i+1] <= '9' {
				i++
			}
			toks = append(toks, Token{Class: SymInt, Lexeme: string(runes[start : i+1]), Column: col})
		case ch == '+':
			toks = append(toks, Token{Class: SymPlus, Lexeme: "+", Column: col})
		case ch == '*':
			toks = append(toks, Token{Class: SymTimes, Lexeme: "*", Column: col})
		case ch == '(':
			toks = append(toks, Token{Class: SymLParen, Lexeme: "(", Column: col})
		case ch == ')':
			toks = append(toks, Token{Class: SymRParen, Lexeme: ")", Column: col})
		default:
			return nil, &SyntaxError{
				sourceLine: expr,
				source:     string(ch),
				pos:        col,
				message:    fmt.Sprintf("unknown character %q", ch),
			}
		}
	}

	toks = append(toks, Token{Class: lr.EndSymbol, Column: len(runes) + 1})
	return toks, nil
}
