package vexflag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	b, err := StringValue("100g").Bytes()
	require.NoError(t, err)
	assert.EqualValues(t, 100e9, b)
	assert.EqualValues(t, "100 GB", b.String())

	b, err = IntValue(512).Bytes()
	require.NoError(t, err)
	assert.EqualValues(t, 512, b.Int64())

	_, err = IntValue(-1).Bytes()
	assert.Error(t, err)
	_, err = FloatValue(1.5).Bytes()
	assert.Error(t, err)
	_, err = StringValue("lots").Bytes()
	assert.EqualValues(t, StatusInvalidValue, StatusOf(err))
}

func TestBytesFromParsedOption(t *testing.T) {
	p := newTestParser(t, Descriptor{Short: 'm', Long: "max-size", Type: String, MaxCount: 1})
	require.NoError(t, p.Parse([]string{"prog", "--max-size=1.5MiB"}))
	tk, ok := p.Token(0)
	require.True(t, ok)
	v, ok := tk.Value(0)
	require.True(t, ok)
	b, err := v.Bytes()
	require.NoError(t, err)
	assert.EqualValues(t, 1572864, b)
}
