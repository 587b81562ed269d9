package vexflag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLookup(t *testing.T) {
	p := newTestParser(t, testDescriptors...)
	require.NoError(t, p.Parse([]string{"prog", "-z", "1", "2", "-a", "x"}))
	require.EqualValues(t, 3, p.Len())

	_, ok := p.Token(-1)
	assert.False(t, ok)
	_, ok = p.Token(3)
	assert.False(t, ok)

	size, ok := p.Token(0)
	require.True(t, ok)
	assert.EqualValues(t, 'z', size.Short())
	assert.EqualValues(t, "size", size.Long())
	assert.EqualValues(t, "--size", size.Name())
	assert.True(t, size.IsOption())
	assert.EqualValues(t, []int64{1, 2}, size.Ints())
	v, ok := size.Value(1)
	require.True(t, ok)
	assert.EqualValues(t, Integer, v.Type())
	assert.EqualValues(t, 2, v.Int())
	_, ok = size.Value(2)
	assert.False(t, ok)

	bare, _ := p.Token(2)
	assert.False(t, bare.IsOption())
	assert.EqualValues(t, "", bare.Name())
	assert.EqualValues(t, 0, bare.Short())
	assert.EqualValues(t, []string{"x"}, bare.Strings())
	_, ok = bare.Descriptor()
	assert.False(t, ok)
}

func TestTokenValuesAreCopies(t *testing.T) {
	p := newTestParser(t, testDescriptors...)
	require.NoError(t, p.Parse([]string{"prog", "-i", "a"}))
	tk, _ := p.Token(0)
	vs := tk.Values()
	vs[0] = StringValue("b")
	again, _ := p.Token(0)
	assert.EqualValues(t, []string{"a"}, again.Strings())
}

func TestTokenValueTypeEnforced(t *testing.T) {
	p := newTestParser(t, testDescriptors...)
	require.NoError(t, p.Parse([]string{"prog", "-a", "-z"}))
	assert.EqualValues(t, StatusInvalidValue, StatusOf(p.appendValue(0, StringValue("x"))))
	assert.EqualValues(t, StatusInvalidValue, StatusOf(p.appendValue(1, FloatValue(1))))
	assert.NoError(t, p.appendValue(1, IntValue(1)))
	tk, _ := p.Token(1)
	assert.EqualValues(t, []int64{1}, tk.Ints())
}

func TestTokenFloats(t *testing.T) {
	p := newTestParser(t, testDescriptors...)
	require.NoError(t, p.Parse([]string{"prog", "0.5", "1.25"}))
	tk, _ := p.Token(0)
	assert.EqualValues(t, Float, tk.Type())
	assert.EqualValues(t, []float64{0.5, 1.25}, tk.Floats())
}

func TestIterators(t *testing.T) {
	p := newTestParser(t, testDescriptors...)
	require.NoError(t, p.Parse([]string{"prog", "-abc"}))
	var forward, backward []string
	for i, tk := range p.All() {
		assert.EqualValues(t, len(forward), i)
		forward = append(forward, tk.Long())
	}
	for _, tk := range p.Backward() {
		backward = append(backward, tk.Long())
	}
	assert.EqualValues(t, []string{"alpha", "bravo", "charlie"}, forward)
	assert.EqualValues(t, []string{"charlie", "bravo", "alpha"}, backward)

	var first []string
	for _, tk := range p.All() {
		first = append(first, tk.Long())
		break
	}
	assert.EqualValues(t, []string{"alpha"}, first)
	assert.Len(t, p.Tokens(), 3)
}

func TestFound(t *testing.T) {
	p := newTestParser(t, testDescriptors...)
	require.NoError(t, p.Parse([]string{"prog", "-a", "--input=x", "b"}))
	assert.True(t, p.Found("a"))
	assert.True(t, p.Found("alpha"))
	assert.True(t, p.Found("i"))
	assert.True(t, p.Found("input"))
	assert.False(t, p.Found("b"))
	assert.False(t, p.Found("bravo"))
	assert.False(t, p.Found(""))
}
