package lr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Derivation_String(t *testing.T) {
	testCases := []struct {
		name   string
		d      Derivation
		expect string
	}{
		{name: "single", d: NewDerivation("E", "T"), expect: "E -> T"},
		{name: "several", d: NewDerivation("E", "T", "+", "E"), expect: "E -> T + E"},
		{name: "empty", d: NewDerivation("A"), expect: "A -> ε"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, tc.d.String())
		})
	}
}

func Test_Derivation_Equal(t *testing.T) {
	testCases := []struct {
		name   string
		a      Derivation
		b      any
		expect bool
	}{
		{name: "same", a: NewDerivation("E", "T"), b: NewDerivation("E", "T"), expect: true},
		{name: "pointer", a: NewDerivation("E", "T"), b: &Derivation{Left: "E", Right: []string{"T"}}, expect: true},
		{name: "nil and empty right are equal", a: Derivation{Left: "A"}, b: Derivation{Left: "A", Right: []string{}}, expect: true},
		{name: "different left", a: NewDerivation("E", "T"), b: NewDerivation("S", "T"), expect: false},
		{name: "different order", a: NewDerivation("E", "T", "+"), b: NewDerivation("E", "+", "T"), expect: false},
		{name: "different length", a: NewDerivation("E", "T"), b: NewDerivation("E", "T", "+"), expect: false},
		{name: "nil pointer", a: NewDerivation("E", "T"), b: (*Derivation)(nil), expect: false},
		{name: "other type", a: NewDerivation("E", "T"), b: "E -> T", expect: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := tc.a.Equal(tc.b)

			assert.Equal(tc.expect, actual)
			if other, ok := tc.b.(Derivation); ok {
				assert.Equal(tc.expect, tc.a.Key() == other.Key())
			}
		})
	}
}

func Test_NewDerivation_Copies(t *testing.T) {
	assert := assert.New(t)
	right := []string{"T", "+", "E"}

	d := NewDerivation("E", right...)
	right[0] = "X"

	assert.Equal([]string{"T", "+", "E"}, d.Right)
	assert.Equal(3, d.Len())
}
