package lr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Table_Lookup(t *testing.T) {
	testCases := []struct {
		name     string
		state    int
		symbol   string
		expect   Action
		expectOk bool
	}{
		{name: "shift on terminal", state: 0, symbol: "int", expect: ShiftTo(3), expectOk: true},
		{name: "goto on nonterminal", state: 0, symbol: "E", expect: ShiftTo(11), expectOk: true},
		{name: "accept", state: 0, symbol: EndSymbol, expect: AcceptAction(), expectOk: true},
		{name: "reduce", state: 3, symbol: "+", expect: ReduceBy(dTint), expectOk: true},
		{name: "no entry", state: 0, symbol: "*"},
		{name: "unknown symbol", state: 0, symbol: "frog"},
		{name: "negative state", state: -1, symbol: "int"},
		{name: "state past end", state: 12, symbol: "int"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			table := loadArithTable(t)

			actual, ok := table.Lookup(tc.state, tc.symbol)

			assert.Equal(tc.expectOk, ok)
			if tc.expectOk {
				assert.True(tc.expect.Equal(actual), "expected %s, got %s", tc.expect, actual)
			}
		})
	}
}

func Test_Table_Symbols(t *testing.T) {
	assert := assert.New(t)
	table := loadArithTable(t)

	assert.Equal(12, table.Len())
	assert.Equal([]string{"E", "S", "T", DummyStartSymbol}, table.Nonterminals().Elements())
	assert.Equal([]string{"(", ")", "*", "+", EndSymbol, "int"}, table.Terminals().Elements())

	derivs := table.Derivations()
	assert.Len(derivs, 7)
	assert.ElementsMatch([]Derivation{
		dSE, dETplE, dET, dTintT, dTint, dTparE,
		NewDerivation(DummyStartSymbol, "S"),
	}, derivs)

	assert.Equal([]string{"(", EndSymbol, "int"}, table.Expected(0))
	assert.Equal([]string{")"}, table.Expected(9))
	assert.Nil(table.Expected(100))
}

func Test_Table_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		table     Table
		expectErr bool
	}{
		{
			name:      "no states",
			table:     Table{},
			expectErr: true,
		},
		{
			name: "single accepting state",
			table: Table{States: []State{
				{Actions: map[string]Action{EndSymbol: AcceptAction()}},
			}},
		},
		{
			name: "shift past last state",
			table: Table{States: []State{
				{Actions: map[string]Action{"a": ShiftTo(1)}},
			}},
			expectErr: true,
		},
		{
			name: "shift to negative state",
			table: Table{States: []State{
				{Actions: map[string]Action{"a": ShiftTo(-1)}},
			}},
			expectErr: true,
		},
		{
			name: "accept on terminal",
			table: Table{States: []State{
				{Actions: map[string]Action{"a": AcceptAction()}},
			}},
			expectErr: true,
		},
		{
			name: "reduce with no left side",
			table: Table{States: []State{
				{Actions: map[string]Action{"a": ReduceBy(NewDerivation("", "a"))}},
			}},
			expectErr: true,
		},
		{
			name: "reduce to end of input",
			table: Table{States: []State{
				{Actions: map[string]Action{"a": ReduceBy(NewDerivation(EndSymbol, "a"))}},
			}},
			expectErr: true,
		},
		{
			name: "epsilon key",
			table: Table{States: []State{
				{Actions: map[string]Action{EpsilonSymbol: ShiftTo(0)}},
			}},
			expectErr: true,
		},
		{
			name: "empty key",
			table: Table{States: []State{
				{Actions: map[string]Action{"": ShiftTo(0)}},
			}},
			expectErr: true,
		},
		{
			name: "unknown action type",
			table: Table{States: []State{
				{Actions: map[string]Action{"a": {Type: ActionType(8)}}},
			}},
			expectErr: true,
		},
		{
			name: "state with no actions",
			table: Table{States: []State{
				{Actions: map[string]Action{"a": ShiftTo(1)}},
				{},
			}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			err := tc.table.Validate()

			if tc.expectErr {
				assert.ErrorIs(err, ErrInvalidTable)
				return
			}
			assert.NoError(err)
		})
	}
}

func Test_Table_Copy(t *testing.T) {
	assert := assert.New(t)
	table := loadArithTable(t)

	cp := table.Copy()
	assert.True(table.Equal(cp))

	cp.States[3].Actions["+"].Derivation.Right[0] = "float"
	cp.States[0].Actions["int"] = ShiftTo(4)

	assert.False(table.Equal(cp))
	act, _ := table.Lookup(3, "+")
	assert.Equal("int", act.Derivation.Right[0])
	act, _ = table.Lookup(0, "int")
	assert.Equal(3, act.State)
}

func Test_Table_Equal(t *testing.T) {
	assert := assert.New(t)
	table := loadArithTable(t)

	assert.True(table.Equal(&table))
	assert.False(table.Equal(nil))
	assert.False(table.Equal((*Table)(nil)))
	assert.False(table.Equal("table"))
	assert.False(table.Equal(Table{}))
}

func Test_Table_String(t *testing.T) {
	assert := assert.New(t)
	table := loadArithTable(t)

	actual := table.String()

	assert.Contains(actual, "A:int")
	assert.Contains(actual, "G:E")
	assert.NotContains(actual, "G:"+DummyStartSymbol)
	assert.Less(strings.Index(actual, "A:int"), strings.Index(actual, "A:"+EndSymbol), "end of input column should come last")
	assert.Less(strings.Index(actual, "A:"+EndSymbol), strings.Index(actual, "G:E"))
	assert.Contains(actual, "acc")
	assert.Contains(actual, "s3")
	assert.GreaterOrEqual(strings.Count(actual, "\n"), table.Len())
}
