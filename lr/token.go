package lr

import "fmt"

// Token is a single lexical item given to a Parser. Any type that can give a
// parse tree leaf view of itself is a Token; the Parser never modifies a Token
// and only reads the Node it returns.
type Token interface {
	// TreeNode returns the leaf Node for the token. Its Symbol is the
	// terminal symbol the token is an instance of and its Data is the data
	// the token carries. It must have no children.
	TreeNode() Node
}

// TokenStream is a sequence of Tokens read in order.
type TokenStream interface {
	// Next returns the next token and advances the stream past it.
	Next() Token

	// Peek returns the next token without advancing the stream.
	Peek() Token

	// HasNext returns whether there is at least one more token.
	HasNext() bool
}

type simpleToken struct {
	symbol string
	data   string
}

func (tok simpleToken) TreeNode() Node {
	return Node{Symbol: tok.symbol, Data: tok.data}
}

func (tok simpleToken) String() string {
	return fmt.Sprintf("<%s %q>", tok.symbol, tok.data)
}

// NewToken returns a Token whose leaf node has the given symbol and data.
func NewToken(symbol, data string) Token {
	return simpleToken{symbol: symbol, data: data}
}

// EndToken returns a Token carrying EndSymbol with empty data.
func EndToken() Token {
	return NewToken(EndSymbol, "")
}

type sliceStream struct {
	tokens []Token
	cur    int
}

// StreamOf returns a TokenStream that gives the tokens in order.
func StreamOf(tokens ...Token) TokenStream {
	return &sliceStream{tokens: tokens}
}

func (ss *sliceStream) Next() Token {
	n := ss.tokens[ss.cur]
	ss.cur++
	return n
}

func (ss *sliceStream) Peek() Token {
	return ss.tokens[ss.cur]
}

func (ss *sliceStream) HasNext() bool {
	return len(ss.tokens)-ss.cur > 0
}
