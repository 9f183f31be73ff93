package util

import (
	"sort"
	"strings"
)

// StringSet is a set of strings backed by a map. The zero value is a nil map
// and can be read from but not added to; use NewStringSet or StringSetOf to get
// one that can be modified.
type StringSet map[string]bool

// NewStringSet creates a new StringSet, optionally seeded with the keys of the
// given maps.
func NewStringSet(of ...map[string]bool) StringSet {
	s := StringSet{}
	for _, m := range of {
		for k := range m {
			s[k] = true
		}
	}
	return s
}

// StringSetOf returns a StringSet containing every item in sl.
func StringSetOf(sl []string) StringSet {
	s := StringSet{}
	for i := range sl {
		s.Add(sl[i])
	}
	return s
}

func (s StringSet) Add(value string) {
	s[value] = true
}

func (s StringSet) Remove(value string) {
	delete(s, value)
}

func (s StringSet) Has(value string) bool {
	_, has := s[value]
	return has
}

func (s StringSet) Len() int {
	return len(s)
}

func (s StringSet) Empty() bool {
	return len(s) == 0
}

// Elements returns the items of s in alphabetical order.
func (s StringSet) Elements() []string {
	sl := make([]string, 0, len(s))
	for k := range s {
		sl = append(sl, k)
	}
	sort.Strings(sl)
	return sl
}

// StringOrdered shows the contents of the set. Items are guaranteed to be
// alphabetized.
func (s StringSet) StringOrdered() string {
	return "{" + strings.Join(s.Elements(), ", ") + "}"
}

// Equal returns whether o is a StringSet (or a non-nil pointer to one) that
// has exactly the same items as s.
func (s StringSet) Equal(o any) bool {
	other, ok := o.(StringSet)
	if !ok {
		otherPtr, ok := o.(*StringSet)
		if !ok || otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if s.Len() != other.Len() {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}
