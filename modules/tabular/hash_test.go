package tabular

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

func TestHashRowEqualKeys(t *testing.T) {
	h := NewHasher(NewNormalizer(NormalizeOptions{IgnoreCase: true, IgnoreWhitespace: true}))
	a := h.HashRow(Row{String(" Apple"), Number(1)})
	b := h.HashRow(Row{String("apple "), String("1")})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, h.HashRow(Row{String("apple"), Number(2)}))
}

func TestHashRowSeparatorInsideCell(t *testing.T) {
	h := NewHasher(NewNormalizer(NormalizeOptions{}))
	// joined with a unit separator these two rows would be identical
	a := h.HashRow(Row{String("a\x1fb"), String("c")})
	b := h.HashRow(Row{String("a"), String("b\x1fc")})
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, h.HashRow(Row{String("ab"), String("")}), h.HashRow(Row{String("a"), String("b")}))
}

func TestHashRowEmpty(t *testing.T) {
	h := NewHasher(NewNormalizer(NormalizeOptions{NullAsEmpty: true}))
	assert.Equal(t, Fingerprint(xxhash.Sum64(nil)), h.HashRow(nil))
	assert.Equal(t, h.HashRow(nil), h.HashRow(Row{}))
	assert.NotEqual(t, h.HashRow(nil), h.HashRow(Row{String("")}))
	assert.Equal(t, h.HashRow(Row{Empty()}), h.HashRow(Row{String("")}))
}

func TestHashRowNullSentinel(t *testing.T) {
	h := NewHasher(NewNormalizer(NormalizeOptions{}))
	assert.NotEqual(t, h.HashRow(Row{Empty()}), h.HashRow(Row{String("")}))
	assert.Equal(t, h.HashRow(Row{Empty(), String("x")}), h.HashRow(Row{Empty(), String("x")}))
}

func TestHashTable(t *testing.T) {
	h := NewHasher(NewNormalizer(NormalizeOptions{}))
	table := Table{{String("a")}, {String("b")}, {String("a")}}
	hashes := h.HashTable(table)
	assert.Len(t, hashes, 3)
	assert.Equal(t, hashes[0], hashes[2])
	assert.NotEqual(t, hashes[0], hashes[1])
}
