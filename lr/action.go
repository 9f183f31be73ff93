package lr

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ActionType is the kind of an Action.
type ActionType int

const (
	// Shift consumes the lookahead token and moves to Action.State. When keyed
	// on a nonterminal, a Shift is a goto.
	Shift ActionType = iota

	// Reduce pops the right-hand side of Action.Derivation and pushes its
	// left-hand side.
	Reduce

	// Accept ends a successful parse.
	Accept
)

func (at ActionType) String() string {
	switch at {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return fmt.Sprintf("ActionType(%d)", int(at))
	}
}

// Action is an entry of a Table. There is no error action; the absence of an
// entry for a state and symbol is the error condition.
type Action struct {
	Type ActionType

	// State is the state to shift (or go) to. It is used only when Type is
	// Shift.
	State int

	// Derivation is the production to reduce by. It is used only when Type is
	// Reduce.
	Derivation Derivation
}

// ShiftTo returns a Shift action to the given state.
func ShiftTo(state int) Action {
	return Action{Type: Shift, State: state}
}

// ReduceBy returns a Reduce action for the given derivation.
func ReduceBy(d Derivation) Action {
	return Action{Type: Reduce, Derivation: d}
}

// AcceptAction returns an Accept action.
func AcceptAction() Action {
	return Action{Type: Accept}
}

func (act Action) String() string {
	switch act.Type {
	case Accept:
		return "ACTION<accept>"
	case Reduce:
		return fmt.Sprintf("ACTION<reduce %s>", act.Derivation.String())
	case Shift:
		return fmt.Sprintf("ACTION<shift %d>", act.State)
	default:
		return "ACTION<unknown>"
	}
}

// cell is the short form of the action used in table listings.
func (act Action) cell() string {
	switch act.Type {
	case Accept:
		return "acc"
	case Reduce:
		return "r" + act.Derivation.String()
	case Shift:
		return fmt.Sprintf("s%d", act.State)
	default:
		return "?"
	}
}

// Equal returns whether o is an Action (or non-nil *Action) of the same type
// with the same payload. Payloads not used by the type are not compared.
func (act Action) Equal(o any) bool {
	other, ok := o.(Action)
	if !ok {
		otherPtr, ok := o.(*Action)
		if !ok {
			return false
		} else if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if act.Type != other.Type {
		return false
	}

	switch act.Type {
	case Shift:
		return act.State == other.State
	case Reduce:
		return act.Derivation.Equal(other.Derivation)
	default:
		return true
	}
}

// MarshalJSON converts the action into the externally-tagged form used by
// table files: {"Shift":N}, {"Reduce":{"left":L,"right":[...]}}, or "Accept".
func (act Action) MarshalJSON() ([]byte, error) {
	switch act.Type {
	case Shift:
		return json.Marshal(map[string]int{"Shift": act.State})
	case Reduce:
		d := act.Derivation
		if d.Right == nil {
			d.Right = []string{}
		}
		return json.Marshal(map[string]Derivation{"Reduce": d})
	case Accept:
		return json.Marshal("Accept")
	default:
		return nil, fmt.Errorf("cannot marshal action of unknown type %d", int(act.Type))
	}
}

// UnmarshalJSON reads an action in the form written by MarshalJSON.
func (act *Action) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return err
		}
		if tag != "Accept" {
			return fmt.Errorf("unknown action %q", tag)
		}
		*act = AcceptAction()
		return nil
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if len(tagged) != 1 {
		return fmt.Errorf("action object must have exactly one key but has %d", len(tagged))
	}

	for tag, payload := range tagged {
		switch tag {
		case "Shift":
			var state int
			if err := json.Unmarshal(payload, &state); err != nil {
				return fmt.Errorf("Shift: %w", err)
			}
			*act = ShiftTo(state)
		case "Reduce":
			var d Derivation
			if err := json.Unmarshal(payload, &d); err != nil {
				return fmt.Errorf("Reduce: %w", err)
			}
			if d.Right == nil {
				d.Right = []string{}
			}
			*act = ReduceBy(d)
		case "Accept":
			*act = AcceptAction()
		default:
			return fmt.Errorf("unknown action %q", tag)
		}
	}

	return nil
}
