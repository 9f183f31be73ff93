package lr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Action_JSON(t *testing.T) {
	testCases := []struct {
		name   string
		action Action
		json   string
	}{
		{name: "shift", action: ShiftTo(3), json: `{"Shift":3}`},
		{name: "reduce", action: ReduceBy(NewDerivation("T", "int", "*", "T")), json: `{"Reduce":{"left":"T","right":["int","*","T"]}}`},
		{name: "reduce to empty", action: ReduceBy(NewDerivation("A")), json: `{"Reduce":{"left":"A","right":[]}}`},
		{name: "accept", action: AcceptAction(), json: `"Accept"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			encoded, err := json.Marshal(tc.action)
			assert.NoError(err)
			assert.JSONEq(tc.json, string(encoded))

			var decoded Action
			err = json.Unmarshal([]byte(tc.json), &decoded)
			assert.NoError(err)
			assert.True(tc.action.Equal(decoded), "expected %s, got %s", tc.action, decoded)
		})
	}
}

func Test_Action_UnmarshalJSON_Errors(t *testing.T) {
	testCases := []struct {
		name string
		json string
	}{
		{name: "unknown tag string", json: `"Jump"`},
		{name: "unknown tag object", json: `{"Goto":4}`},
		{name: "two tags", json: `{"Shift":4,"Accept":null}`},
		{name: "shift not a number", json: `{"Shift":"four"}`},
		{name: "reduce not an object", json: `{"Reduce":7}`},
		{name: "not an action", json: `[1, 2]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var act Action
			err := json.Unmarshal([]byte(tc.json), &act)
			assert.Error(t, err)
		})
	}
}

func Test_Action_Equal(t *testing.T) {
	testCases := []struct {
		name   string
		a      Action
		b      any
		expect bool
	}{
		{name: "same shift", a: ShiftTo(1), b: ShiftTo(1), expect: true},
		{name: "different shift", a: ShiftTo(1), b: ShiftTo(2), expect: false},
		{name: "shift ignores derivation", a: ShiftTo(1), b: Action{Type: Shift, State: 1, Derivation: dTint}, expect: true},
		{name: "accept ignores state", a: AcceptAction(), b: Action{Type: Accept, State: 8}, expect: true},
		{name: "reduce by same", a: ReduceBy(dTint), b: &Action{Type: Reduce, Derivation: NewDerivation("T", "int")}, expect: true},
		{name: "reduce by other", a: ReduceBy(dTint), b: ReduceBy(dET), expect: false},
		{name: "different type", a: ShiftTo(0), b: AcceptAction(), expect: false},
		{name: "nil pointer", a: ShiftTo(0), b: (*Action)(nil), expect: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.a.Equal(tc.b))
		})
	}
}

func Test_Action_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ACTION<shift 3>", ShiftTo(3).String())
	assert.Equal("ACTION<reduce T -> int>", ReduceBy(dTint).String())
	assert.Equal("ACTION<accept>", AcceptAction().String())
}
