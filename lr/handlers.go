package lr

import (
	"strings"

	"github.com/dekarrin/srparse/internal/util"
)

// Handler is a semantic action. It is called when a reduction by the
// derivation it is registered for occurs, with the data of the right-hand-side
// nodes in left-to-right production order, and returns the data for the new
// left-hand-side node.
//
// Handlers must not retain or modify the given slice. A Parser may be used
// from multiple goroutines at once, so a Handler must be safe for concurrent
// use if the Parser is.
type Handler func(data []string) string

type registration struct {
	deriv   Derivation
	handler Handler
}

// Registry maps Derivations to the Handlers that synthesize data for them.
// Derivations are compared structurally. The zero value is an empty Registry
// ready for use. A nil *Registry reads as empty, so it may be passed to New,
// but Register needs a non-nil receiver.
//
// A Registry is filled in before a Parser is created from it; the Parser takes
// its own copy, so changes made to a Registry after calling New do not affect
// that Parser.
type Registry struct {
	byKey map[string]registration
}

// Register binds h to d. If a Handler was already registered for a Derivation
// equal to d, it is replaced and Register returns true so the caller can
// report the overwrite. Register panics if r is nil.
func (r *Registry) Register(d Derivation, h Handler) (replaced bool) {
	if r.byKey == nil {
		r.byKey = map[string]registration{}
	}

	key := d.Key()
	_, replaced = r.byKey[key]
	r.byKey[key] = registration{deriv: d.Copy(), handler: h}
	return replaced
}

// Resolve returns the Handler registered for d.
func (r *Registry) Resolve(d Derivation) (Handler, bool) {
	if r == nil || r.byKey == nil {
		return nil, false
	}
	reg, ok := r.byKey[d.Key()]
	return reg.handler, ok
}

// Has returns whether a Handler is registered for d.
func (r *Registry) Has(d Derivation) bool {
	_, ok := r.Resolve(d)
	return ok
}

// Len returns the number of registered Derivations.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.byKey)
}

// Derivations returns every Derivation that has a Handler registered, in a
// stable order.
func (r *Registry) Derivations() []Derivation {
	if r == nil {
		return nil
	}

	var derivs []Derivation
	for _, k := range util.OrderedKeys(r.byKey) {
		derivs = append(derivs, r.byKey[k].deriv)
	}
	return derivs
}

// Copy returns a Registry with the same bindings that can be modified
// independently of r.
func (r *Registry) Copy() *Registry {
	cp := &Registry{byKey: map[string]registration{}}
	if r == nil {
		return cp
	}
	for k, v := range r.byKey {
		cp.byKey[k] = v
	}
	return cp
}

// PassThrough is a Handler that gives the data of the first child, or the
// empty string for an empty right-hand side.
func PassThrough(data []string) string {
	if len(data) < 1 {
		return ""
	}
	return data[0]
}

// Concat is a Handler that gives the data of all children joined by single
// spaces.
func Concat(data []string) string {
	return strings.Join(data, " ")
}

// Uniform returns a Registry that binds h to every derivation that t reduces
// by. It allows a Parser to be made for a table whose grammar is not known
// ahead of time.
func Uniform(t Table, h Handler) *Registry {
	reg := &Registry{}
	for _, d := range t.Derivations() {
		reg.Register(d, h)
	}
	return reg
}
