package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Stack_PushPop(t *testing.T) {
	assert := assert.New(t)

	s := Stack[int]{}
	assert.True(s.Empty())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(3, s.Len())

	top, ok := s.Peek()
	assert.True(ok)
	assert.Equal(3, top)

	for _, expect := range []int{3, 2, 1} {
		v, ok := s.Pop()
		assert.True(ok)
		assert.Equal(expect, v)
	}

	_, ok = s.Pop()
	assert.False(ok)
	_, ok = s.Peek()
	assert.False(ok)
}
