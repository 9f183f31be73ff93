package lr

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dekarrin/rosed"
	"github.com/dekarrin/srparse/internal/util"
)

// State is one state of the parsing automaton: the actions to take keyed by
// the symbol being looked at.
type State struct {
	Actions map[string]Action `json:"actions"`
}

// Table is a finished LR action table. States are identified by their index
// in States, and States[0] is the initial state. Goto transitions are Shift
// actions keyed on nonterminal symbols.
//
// A Table is read-only once given to a Parser.
type Table struct {
	States []State `json:"states"`
}

// Lookup gives the action for the given state and symbol. If state is out of
// range or there is no entry for symbol in that state, the returned bool is
// false.
func (t Table) Lookup(state int, symbol string) (Action, bool) {
	if state < 0 || state >= len(t.States) {
		return Action{}, false
	}
	act, ok := t.States[state].Actions[symbol]
	return act, ok
}

// Len returns the number of states in the table.
func (t Table) Len() int {
	return len(t.States)
}

// Nonterminals returns the set of symbols that are the left side of some
// Reduce action in the table. DummyStartSymbol is always included.
//
// Shift entries keyed on a symbol in this set are gotos.
func (t Table) Nonterminals() util.StringSet {
	nts := util.NewStringSet()
	nts.Add(DummyStartSymbol)
	for i := range t.States {
		for _, act := range t.States[i].Actions {
			if act.Type == Reduce {
				nts.Add(act.Derivation.Left)
			}
		}
	}
	return nts
}

// Terminals returns the set of symbols used by the table that are not
// nonterminals. This includes EndSymbol if the table uses it.
func (t Table) Terminals() util.StringSet {
	nts := t.Nonterminals()
	terms := util.NewStringSet()

	for i := range t.States {
		for sym, act := range t.States[i].Actions {
			if !nts.Has(sym) {
				terms.Add(sym)
			}
			if act.Type == Reduce {
				for _, rsym := range act.Derivation.Right {
					if !nts.Has(rsym) {
						terms.Add(rsym)
					}
				}
			}
		}
	}

	return terms
}

// Derivations returns every distinct derivation that some Reduce action in the
// table reduces by. The order is stable across calls.
func (t Table) Derivations() []Derivation {
	byKey := map[string]Derivation{}
	for i := range t.States {
		for _, act := range t.States[i].Actions {
			if act.Type == Reduce {
				byKey[act.Derivation.Key()] = act.Derivation
			}
		}
	}

	derivs := make([]Derivation, 0, len(byKey))
	for _, k := range util.OrderedKeys(byKey) {
		derivs = append(derivs, byKey[k])
	}
	return derivs
}

// Expected returns the terminal symbols that have an action in the given
// state, in alphabetical order.
func (t Table) Expected(state int) []string {
	if state < 0 || state >= len(t.States) {
		return nil
	}

	nts := t.Nonterminals()
	var syms []string
	for _, sym := range util.OrderedKeys(t.States[state].Actions) {
		if !nts.Has(sym) {
			syms = append(syms, sym)
		}
	}
	return syms
}

// Validate checks that the table is internally consistent: it must have at
// least one state, every Shift must target an existing state, every Reduce
// must name a left-hand symbol, and Accept may only be keyed on EndSymbol.
//
// Validate does not check for grammar correctness; the table is trusted to be
// deterministic. The returned error, if non-nil, is a *TableError.
func (t Table) Validate() error {
	if len(t.States) < 1 {
		return &TableError{Problem: "table has no states"}
	}

	for i := range t.States {
		for _, sym := range util.OrderedKeys(t.States[i].Actions) {
			act := t.States[i].Actions[sym]

			if sym == "" {
				return &TableError{State: i, Symbol: sym, Problem: "action keyed on empty symbol"}
			}
			if sym == EpsilonSymbol {
				return &TableError{State: i, Symbol: sym, Problem: "action keyed on epsilon"}
			}

			switch act.Type {
			case Shift:
				if act.State < 0 || act.State >= len(t.States) {
					return &TableError{State: i, Symbol: sym, Problem: fmt.Sprintf("shift to nonexistent state %d", act.State)}
				}
			case Reduce:
				if act.Derivation.Left == "" {
					return &TableError{State: i, Symbol: sym, Problem: "reduce derivation has empty left side"}
				}
				if act.Derivation.Left == EndSymbol {
					return &TableError{State: i, Symbol: sym, Problem: "reduce derivation has end-of-input as left side"}
				}
			case Accept:
				if sym != EndSymbol {
					return &TableError{State: i, Symbol: sym, Problem: "accept keyed on symbol other than end-of-input"}
				}
			default:
				return &TableError{State: i, Symbol: sym, Problem: fmt.Sprintf("unknown action type %d", int(act.Type))}
			}
		}
	}

	return nil
}

// Equal returns whether o is a Table (or non-nil *Table) with the same states
// holding equal actions.
func (t Table) Equal(o any) bool {
	other, ok := o.(Table)
	if !ok {
		otherPtr, ok := o.(*Table)
		if !ok {
			return false
		} else if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if len(t.States) != len(other.States) {
		return false
	}
	for i := range t.States {
		mine := t.States[i].Actions
		theirs := other.States[i].Actions
		if len(mine) != len(theirs) {
			return false
		}
		for sym, act := range mine {
			otherAct, ok := theirs[sym]
			if !ok || !act.Equal(otherAct) {
				return false
			}
		}
	}
	return true
}

// String prints a grid representation of the table with one row per state,
// ACTION columns (prefixed "A:") for terminals and GOTO columns (prefixed "G:")
// for nonterminals.
func (t Table) String() string {
	terms := t.Terminals().Elements()
	nts := t.Nonterminals()
	nts.Remove(DummyStartSymbol)
	ntList := nts.Elements()

	// end of input always goes last, like in the book
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[j] == EndSymbol && terms[i] != EndSymbol
	})

	header := []string{"S"}
	for _, sym := range terms {
		header = append(header, "A:"+sym)
	}
	for _, sym := range ntList {
		header = append(header, "G:"+sym)
	}

	data := [][]string{header}

	for i := range t.States {
		row := []string{strconv.Itoa(i)}
		for _, sym := range terms {
			cell := ""
			if act, ok := t.Lookup(i, sym); ok {
				cell = act.cell()
			}
			row = append(row, cell)
		}
		for _, sym := range ntList {
			cell := ""
			if act, ok := t.Lookup(i, sym); ok && act.Type == Shift {
				cell = strconv.Itoa(act.State)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 120, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// Copy returns a deep copy of the table.
func (t Table) Copy() Table {
	cp := Table{States: make([]State, len(t.States))}
	for i := range t.States {
		cp.States[i].Actions = make(map[string]Action, len(t.States[i].Actions))
		for sym, act := range t.States[i].Actions {
			if act.Type == Reduce {
				act.Derivation = act.Derivation.Copy()
			}
			cp.States[i].Actions[sym] = act
		}
	}
	return cp
}
