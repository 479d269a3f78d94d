package dynarr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArray_String(t *testing.T) {
	a := New[int]()
	assert.Equal(t, "{length: 0, data: {}}", a.String())
	a.Push(6)
	a.Push(2)
	a.Push(9)
	_, _ = a.Pop()
	assert.Equal(t, "{length: 2, data: {0: 6, 1: 2}}", a.String())
}

func TestArray_Dump(t *testing.T) {
	a := New[string]()
	a.Push("hello")
	a.Push("world")
	_ = a.Delete(1)
	out := a.Dump()
	assert.True(t, strings.HasPrefix(out, "length: 1\n"), out)
	assert.Contains(t, out, `"hello"`)
	assert.NotContains(t, out, "world")
}
