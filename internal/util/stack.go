package util

// Stack is a LIFO container backed by a slice. The zero value is an empty
// stack ready for use. The bottom of the stack is Of[0]; the top is the last
// element of Of.
type Stack[E any] struct {
	Of []E
}

// Push puts v on top of the stack.
func (s *Stack[E]) Push(v E) {
	s.Of = append(s.Of, v)
}

// Pop removes the top element of the stack and returns it. If the stack is
// empty, the zero value of E is returned along with false.
func (s *Stack[E]) Pop() (E, bool) {
	var v E
	if len(s.Of) < 1 {
		return v, false
	}

	v = s.Of[len(s.Of)-1]
	s.Of = s.Of[:len(s.Of)-1]
	return v, true
}

// Peek returns the top element of the stack without removing it. If the stack
// is empty, the zero value of E is returned along with false.
func (s Stack[E]) Peek() (E, bool) {
	var v E
	if len(s.Of) < 1 {
		return v, false
	}
	return s.Of[len(s.Of)-1], true
}

// Len returns the number of elements on the stack.
func (s Stack[E]) Len() int {
	return len(s.Of)
}

// Empty returns whether the stack has no elements.
func (s Stack[E]) Empty() bool {
	return len(s.Of) == 0
}
