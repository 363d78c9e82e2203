package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/numex/pkg/extract"
	"github.com/leapstack-labs/numex/pkg/grammar"
)

func numValue(text string, kind grammar.NumberKind) extract.Value {
	return extract.Value{
		Text:    text,
		Matched: true,
		Group:   grammar.Group{Name: "cap1", Content: grammar.ContentNumber, Number: kind},
	}
}

func TestValueInt(t *testing.T) {
	v := numValue("-456", grammar.NumberInteger)
	n, err := v.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(-456), n)
}

func TestValueFloat(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"4.2", 4.2},
		{"-.003", -0.003},
		{"2e-4", 2e-4},
		{"+1.5E+10", 1.5e10},
	}
	for _, tt := range tests {
		v := numValue(tt.text, grammar.NumberGeneral)
		f, err := v.Float()
		require.NoError(t, err)
		assert.InDelta(t, tt.want, f, 1e-12, tt.text)
	}
}

func TestValueTyped(t *testing.T) {
	got, err := numValue("42", grammar.NumberInteger).Typed()
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	got, err = numValue("2e-4", grammar.NumberSciNot).Typed()
	require.NoError(t, err)
	assert.Equal(t, 2e-4, got)

	got, err = numValue("4.2", grammar.NumberDecimal).Typed()
	require.NoError(t, err)
	assert.Equal(t, 4.2, got)

	lit := extract.Value{
		Text:    "benzene",
		Matched: true,
		Group:   grammar.Group{Name: "cap1", Content: grammar.ContentLiteral},
	}
	got, err = lit.Typed()
	require.NoError(t, err)
	assert.Equal(t, "benzene", got)
}

func TestValueUnmatched(t *testing.T) {
	v := extract.Value{Group: grammar.Group{Name: "cap1", Content: grammar.ContentNumber}}

	_, err := v.Int()
	assert.Error(t, err)
	_, err = v.Float()
	assert.Error(t, err)

	got, err := v.Typed()
	require.NoError(t, err)
	assert.Nil(t, got)
}
