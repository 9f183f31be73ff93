// Package lr is a table-driven shift-reduce parsing engine. Given a finished
// action table and a stream of tokens, a Parser builds a parse tree bottom-up
// while calling a semantic-action Handler at every reduction to synthesize the
// data value of each new node.
//
// This package only consumes tables; it does not construct them from a
// grammar. Tables are loaded as data (JSON, TOML, or REZI binary) with
// LoadTable or DecodeTable, and handlers are bound to grammar productions with
// a Registry before the Parser is created.
//
// A Table encodes both the ACTION and GOTO columns of a classical LR parsing
// table. A goto is stored as a Shift entry keyed on a nonterminal symbol; it is
// only ever consulted directly after a reduction.
package lr

// Reserved symbols. The spellings are part of the table format.
const (
	// EndSymbol marks the end of the input. The final token given to a Parser
	// must carry this symbol.
	EndSymbol = "__$__"

	// EpsilonSymbol denotes the empty string. It is reserved for table
	// producers; the parser never sees it.
	EpsilonSymbol = "__EPSILON__"

	// DummyStartSymbol is the synthetic nonterminal that wraps the grammar's
	// true start symbol so that acceptance is uniform for every grammar.
	DummyStartSymbol = "__DUMMY_START__"
)
