package lr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Registry(t *testing.T) {
	assert := assert.New(t)
	reg := &Registry{}

	replaced := reg.Register(NewDerivation("E", "T"), func(data []string) string { return "first" })
	assert.False(replaced)

	// a structurally equal derivation is the same key
	replaced = reg.Register(NewDerivation("E", "T"), func(data []string) string { return "second" })
	assert.True(replaced)
	assert.Equal(1, reg.Len())

	h, ok := reg.Resolve(NewDerivation("E", "T"))
	if assert.True(ok) {
		assert.Equal("second", h(nil))
	}

	assert.False(reg.Has(NewDerivation("E", "T", "+")))
	assert.False(reg.Has(NewDerivation("T", "E")))
}

func Test_Registry_KeysDoNotCollide(t *testing.T) {
	assert := assert.New(t)
	reg := &Registry{}

	// would be equal if the symbols were simply joined with spaces
	reg.Register(NewDerivation("A", "b c"), PassThrough)
	reg.Register(NewDerivation("A", "b", "c"), PassThrough)
	reg.Register(NewDerivation("A"), PassThrough)

	assert.Equal(3, reg.Len())
}

func Test_Registry_NilAndZero(t *testing.T) {
	assert := assert.New(t)
	var nilReg *Registry
	var zeroReg Registry

	assert.Equal(0, nilReg.Len())
	assert.False(nilReg.Has(NewDerivation("A", "b")))
	assert.Nil(nilReg.Derivations())
	assert.Equal(0, nilReg.Copy().Len())

	assert.Equal(0, zeroReg.Len())
	_, ok := zeroReg.Resolve(NewDerivation("A", "b"))
	assert.False(ok)

	assert.False(zeroReg.Register(NewDerivation("A", "b"), PassThrough))
	assert.True(zeroReg.Has(NewDerivation("A", "b")))
	assert.Panics(func() {
		nilReg.Register(NewDerivation("A", "b"), PassThrough)
	})

	// only the dummy start is reduced by, which New fills in itself
	onlyStart := Table{States: []State{
		{Actions: map[string]Action{"a": ShiftTo(1)}},
		{Actions: map[string]Action{EndSymbol: ReduceBy(NewDerivation(DummyStartSymbol, "a"))}},
	}}
	_, err := New(onlyStart, nilReg)
	assert.NoError(err)
}

func Test_Registry_Copy(t *testing.T) {
	assert := assert.New(t)
	reg := &Registry{}
	reg.Register(NewDerivation("A", "b"), PassThrough)

	cp := reg.Copy()
	cp.Register(NewDerivation("A", "c"), PassThrough)

	assert.Equal(1, reg.Len())
	assert.Equal(2, cp.Len())
	assert.Equal([]Derivation{NewDerivation("A", "b"), NewDerivation("A", "c")}, cp.Derivations())
}

func Test_PassThrough(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", PassThrough(nil))
	assert.Equal("a", PassThrough([]string{"a"}))
	assert.Equal("a", PassThrough([]string{"a", "b"}))
}

func Test_Uniform(t *testing.T) {
	assert := assert.New(t)
	table := loadArithTable(t)

	reg := Uniform(table, Concat)

	// includes the dummy start derivation
	assert.Equal(7, reg.Len())
	for _, d := range table.Derivations() {
		h, ok := reg.Resolve(d)
		if assert.True(ok, "no handler for %s", d) {
			assert.Equal("a b", h([]string{"a", "b"}))
		}
	}
}

func Test_Concat(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", Concat(nil))
	assert.Equal("x", Concat([]string{"x"}))
	assert.Equal("( 1 )", Concat([]string{"(", "1", ")"}))
}
