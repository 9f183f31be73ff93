package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ArticleFor(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		definite bool
		expect   string
	}{
		{name: "consonant", input: "plus", expect: "a"},
		{name: "vowel", input: "int", expect: "an"},
		{name: "all caps vowel", input: "INT", expect: "AN"},
		{name: "definite", input: "int", definite: true, expect: "the"},
		{name: "empty", input: "", expect: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, ArticleFor(tc.input, tc.definite))
		})
	}
}

func Test_JoinOr(t *testing.T) {
	testCases := []struct {
		name   string
		input  []string
		expect string
	}{
		{name: "none", input: nil, expect: ""},
		{name: "one", input: []string{"a number"}, expect: "a number"},
		{name: "two", input: []string{"a number", "'('"}, expect: "a number or '('"},
		{name: "four", input: []string{"')'", "'*'", "'+'", "the end"}, expect: "')', '*', '+', or the end"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, JoinOr(tc.input))
		})
	}
}

func Test_StringSet(t *testing.T) {
	assert := assert.New(t)

	s := StringSetOf([]string{"T", "E", "S", "E"})
	assert.Equal(3, s.Len())
	assert.True(s.Has("E"))
	assert.False(s.Has("int"))
	assert.Equal([]string{"E", "S", "T"}, s.Elements())
	assert.Equal("{E, S, T}", s.StringOrdered())
	assert.True(s.Equal(NewStringSet(map[string]bool{"S": true, "T": true, "E": true})))

	s.Remove("T")
	assert.False(s.Equal(NewStringSet(map[string]bool{"S": true, "T": true, "E": true})))
}

func Test_SortBy(t *testing.T) {
	in := []int{3, 1, 2}
	out := SortBy(in, func(l, r int) bool { return l < r })

	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, []int{3, 1, 2}, in)
}
