package lr

import (
	"strconv"
	"strings"
)

// Derivation is one grammar production: a left-hand nonterminal and the
// ordered sequence of symbols on its right-hand side. Two Derivations are equal
// when both sides match exactly.
//
// Derivation contains a slice and so cannot be used as a map key directly; use
// Key for that.
type Derivation struct {
	Left  string   `json:"left" toml:"left"`
	Right []string `json:"right" toml:"right"`
}

// NewDerivation returns the Derivation left -> right. The given symbols are
// copied.
func NewDerivation(left string, right ...string) Derivation {
	d := Derivation{Left: left, Right: make([]string, len(right))}
	copy(d.Right, right)
	return d
}

// Len returns the number of symbols on the right-hand side, which is the
// number of stack frames a reduction by d pops.
func (d Derivation) Len() int {
	return len(d.Right)
}

// Key returns a string that uniquely identifies d structurally. Two
// Derivations have the same Key if and only if they are Equal.
func (d Derivation) Key() string {
	var sb strings.Builder
	sb.WriteString(strconv.Quote(d.Left))
	sb.WriteString(" ->")
	for i := range d.Right {
		sb.WriteRune(' ')
		sb.WriteString(strconv.Quote(d.Right[i]))
	}
	return sb.String()
}

// String returns d in "A -> x y z" form. An empty right-hand side is shown as
// ε.
func (d Derivation) String() string {
	if len(d.Right) == 0 {
		return d.Left + " -> ε"
	}
	return d.Left + " -> " + strings.Join(d.Right, " ")
}

// Copy returns a Derivation equal to d that shares no memory with it.
func (d Derivation) Copy() Derivation {
	return NewDerivation(d.Left, d.Right...)
}

// Equal returns whether o is a Derivation (or non-nil *Derivation) with the
// same left and right sides as d.
func (d Derivation) Equal(o any) bool {
	other, ok := o.(Derivation)
	if !ok {
		otherPtr, ok := o.(*Derivation)
		if !ok {
			return false
		} else if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if d.Left != other.Left {
		return false
	}
	if len(d.Right) != len(other.Right) {
		return false
	}
	for i := range d.Right {
		if d.Right[i] != other.Right[i] {
			return false
		}
	}
	return true
}
