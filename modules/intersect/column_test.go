package intersect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumnRef(t *testing.T) {
	tests := []struct {
		in    string
		index int
	}{
		{"0", 0},
		{"12", 12},
		{"A", 0},
		{"b", 1},
		{" z ", 25},
		{"AA", 26},
		{"az", 51},
		{"BA", 52},
		{"ZZ", 701},
		{"AAA", 702},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ref, err := ParseColumnRef(tt.in)
			require.NoError(t, err)
			got, err := ref.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.index, got)
		})
	}
}

func TestParseColumnRefInvalid(t *testing.T) {
	for _, in := range []string{"", "  ", "A1", "-1", "ä", "A B", "1.5"} {
		_, err := ParseColumnRef(in)
		assert.ErrorIs(t, err, ErrInvalidColumnReference, "input %q", in)
	}
	_, err := Index(-3).Resolve()
	assert.ErrorIs(t, err, ErrInvalidColumnReference)
}

func TestColumnRefLabel(t *testing.T) {
	for i := range 1000 {
		ref, err := ParseColumnRef(Index(i).Label())
		require.NoError(t, err)
		got, err := ref.Resolve()
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
	assert.Equal(t, "AB", Letter("ab").Label())
	assert.Equal(t, "?", Letter("?").Label())
}

func TestColumnRefText(t *testing.T) {
	var ref ColumnRef
	require.NoError(t, ref.UnmarshalText([]byte("C")))
	i, err := ref.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	b, err := Index(4).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "4", string(b))
	assert.Error(t, ref.UnmarshalText([]byte("#")))
}
