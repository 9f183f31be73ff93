package lr

import (
	"fmt"
	"strings"

	"github.com/dekarrin/srparse/internal/util"
)

// frame is one entry of the parse stack. state is the automaton state reached
// after pushing the frame.
type frame struct {
	node  *Node
	state int
}

// Parser runs the shift-reduce loop over a Table, calling registered Handlers
// on every reduction. The zero value is not usable; create one with New.
//
// A Parser holds no per-parse state, so once created (and after any call to
// RegisterTraceListener) it may be used to parse several token streams
// concurrently.
type Parser struct {
	table        Table
	handlers     *Registry
	nonterminals util.StringSet
	trace        func(s string)
	stepLimit    int
}

// New creates a Parser for the given table and handlers. Both are copied, so
// later changes to either do not affect the Parser.
//
// The table is validated with Table.Validate, and every derivation that the
// table reduces by must have a Handler in handlers; if any are missing, a
// *MissingHandlerError listing all of them is returned. The one exception is a
// derivation whose left side is DummyStartSymbol: if no Handler is registered
// for it, PassThrough is used.
func New(table Table, handlers *Registry) (*Parser, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	regs := handlers.Copy()

	var missing []Derivation
	for _, d := range table.Derivations() {
		if h, ok := regs.Resolve(d); ok && h != nil {
			continue
		}
		if d.Left == DummyStartSymbol {
			regs.Register(d, PassThrough)
			continue
		}
		missing = append(missing, d)
	}
	if len(missing) > 0 {
		return nil, &MissingHandlerError{Derivations: missing}
	}

	return &Parser{
		table:        table.Copy(),
		handlers:     regs,
		nonterminals: table.Nonterminals(),
	}, nil
}

// Table returns a copy of the table the Parser uses.
func (p *Parser) Table() Table {
	return p.table.Copy()
}

// RegisterTraceListener sets a function that is called with a description of
// every step the automaton takes. It must not be called while a parse is in
// progress.
func (p *Parser) RegisterTraceListener(listener func(s string)) {
	p.trace = listener
}

// SetStepLimit bounds the number of shift and reduce steps a single parse may
// take; once exceeded, the parse stops with a *StepLimitError. A limit of 0 or
// less removes the bound, which is the default. Like RegisterTraceListener, it
// must not be called while a parse is in progress.
func (p *Parser) SetStepLimit(n int) {
	p.stepLimit = n
}

func (p *Parser) notifyTraceFn(fn func() string) {
	if p.trace != nil {
		p.trace(fn())
	}
}

func (p *Parser) notifyTrace(fmtStr string, args ...interface{}) {
	p.notifyTraceFn(func() string { return fmt.Sprintf(fmtStr, args...) })
}

func (p *Parser) notifyStack(st util.Stack[frame]) {
	p.notifyTraceFn(func() string {
		var sb strings.Builder
		sb.WriteString("Stack:")
		for i := range st.Of {
			sb.WriteString(fmt.Sprintf(" (%s %d)", st.Of[i].node.Symbol, st.Of[i].state))
		}
		return sb.String()
	})
}

// Parse parses the given tokens, which must end with a token whose symbol is
// EndSymbol. It returns the root of the parse tree, which is the node for the
// grammar's true start symbol, or an error describing why the parse failed.
func (p *Parser) Parse(tokens []Token) (*Node, error) {
	return p.ParseStream(StreamOf(tokens...))
}

// ParseStream is like Parse but reads tokens from a stream. If the stream runs
// out before the parse is accepted, an *UnexpectedEndOfInputError is returned.
//
// The returned error is one of *SyntaxError, *StackUnderflowError,
// *InvalidGotoError, *UnexpectedEndOfInputError, or *StepLimitError.
func (p *Parser) ParseStream(stream TokenStream) (*Node, error) {
	stack := util.Stack[frame]{Of: []frame{{node: &Node{Symbol: DummyStartSymbol}, state: 0}}}
	pos := 0
	steps := 0

	for {
		p.notifyStack(stack)

		if p.stepLimit > 0 && steps >= p.stepLimit {
			return nil, &StepLimitError{Limit: p.stepLimit, Position: pos}
		}
		steps++

		if !stream.HasNext() {
			return nil, &UnexpectedEndOfInputError{Position: pos}
		}

		lookahead := stream.Peek().TreeNode()
		top, _ := stack.Peek()
		p.notifyTrace("Lookahead: %s %q at %d, state %d", lookahead.Symbol, lookahead.Data, pos, top.state)

		// a nonterminal as input would be taken for a goto
		if p.nonterminals.Has(lookahead.Symbol) {
			return nil, p.syntaxError(stack, lookahead, pos)
		}

		act, ok := p.table.Lookup(top.state, lookahead.Symbol)
		if !ok {
			return nil, p.syntaxError(stack, lookahead, pos)
		}
		p.notifyTrace("Action: %s", act.String())

		switch act.Type {
		case Shift:
			leaf := stream.Next().TreeNode()
			leaf.Children = nil
			stack.Push(frame{node: &leaf, state: act.State})
			pos++
		case Reduce:
			d := act.Derivation
			node, err := p.reduce(&stack, d)
			if err != nil {
				return nil, err
			}

			if d.Left == DummyStartSymbol {
				stack.Push(frame{node: node, state: 0})
				continue
			}

			// goto[top_state(stack), A]
			t, _ := stack.Peek()
			gotoAct, ok := p.table.Lookup(t.state, d.Left)
			if !ok {
				return nil, &InvalidGotoError{State: t.state, Symbol: d.Left}
			}
			if gotoAct.Type != Shift {
				return nil, &InvalidGotoError{State: t.state, Symbol: d.Left, Found: &gotoAct}
			}
			p.notifyTrace("Goto: %d", gotoAct.State)
			stack.Push(frame{node: node, state: gotoAct.State})
		case Accept:
			if stack.Len() < 2 {
				// nothing was ever reduced; the empty sentence is not accepted
				return nil, p.syntaxError(stack, lookahead, pos)
			}

			result, _ := stack.Pop()
			root := result.node
			if root.Symbol == DummyStartSymbol && len(root.Children) == 1 {
				root = root.Children[0]
			}
			return root, nil
		default:
			return nil, fmt.Errorf("unknown action type %d in state %d", int(act.Type), top.state)
		}
	}
}

// reduce pops the right-hand side of d off the stack and builds the node for
// its left-hand side, calling d's Handler to get the node's data. The bottom
// frame is never popped.
func (p *Parser) reduce(stack *util.Stack[frame], d Derivation) (*Node, error) {
	n := d.Len()
	if stack.Len()-1 < n {
		return nil, &StackUnderflowError{Derivation: d, Have: stack.Len() - 1}
	}

	children := make([]*Node, n)
	data := make([]string, n)

	// pops come off rightmost-first
	for i := n - 1; i >= 0; i-- {
		f, _ := stack.Pop()
		children[i] = f.node
		data[i] = f.node.Data
	}

	handler, _ := p.handlers.Resolve(d)

	node := &Node{
		Symbol:   d.Left,
		Data:     handler(data),
		Children: children,
	}
	p.notifyTrace("Reduced %s => %q", d.String(), node.Data)
	return node, nil
}

// syntaxError builds the error for an unusable lookahead. When only the bottom
// frame is on the stack, an Accept on end of input is not offered as expected
// since it would accept the empty sentence.
func (p *Parser) syntaxError(st util.Stack[frame], lookahead Node, pos int) *SyntaxError {
	top, _ := st.Peek()
	expected := p.table.Expected(top.state)

	if st.Len() < 2 {
		filtered := []string{}
		for _, sym := range expected {
			if act, _ := p.table.Lookup(top.state, sym); act.Type == Accept {
				continue
			}
			filtered = append(filtered, sym)
		}
		expected = filtered
	}

	return &SyntaxError{
		State:    top.state,
		Symbol:   lookahead.Symbol,
		Data:     lookahead.Data,
		Position: pos,
		Expected: expected,
	}
}
