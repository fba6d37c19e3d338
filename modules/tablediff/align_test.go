package tablediff

import (
	"math/rand"
	"testing"

	"github.com/antgroup/tabdiff/modules/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(values ...uint64) []tabular.Fingerprint {
	out := make([]tabular.Fingerprint, len(values))
	for i, v := range values {
		out[i] = tabular.Fingerprint(v)
	}
	return out
}

func keep(a, b int) Operation   { return Operation{Type: Keep, Original: a, Modified: b} }
func modify(a, b int) Operation { return Operation{Type: Modify, Original: a, Modified: b} }
func add(b int) Operation       { return Operation{Type: Add, Original: NoIndex, Modified: b} }
func del(a int) Operation       { return Operation{Type: Delete, Original: a, Modified: NoIndex} }

func TestAlignEmpty(t *testing.T) {
	assert.Empty(t, Align(nil, nil))
	assert.Equal(t, []Operation{add(0), add(1)}, Align(nil, fp(1, 2)))
	assert.Equal(t, []Operation{del(0)}, Align(fp(1), nil))
}

func TestAlignAnchors(t *testing.T) {
	tests := []struct {
		name string
		a, b []tabular.Fingerprint
		want []Operation
	}{
		{"identity", fp(1, 2, 3), fp(1, 2, 3), []Operation{keep(0, 0), keep(1, 1), keep(2, 2)}},
		{"delete", fp(1, 2, 3), fp(1, 3), []Operation{keep(0, 0), del(1), keep(2, 1)}},
		{"insert", fp(1, 2), fp(1, 9, 2), []Operation{keep(0, 0), add(1), keep(1, 2)}},
		{"replace", fp(1, 2, 3), fp(1, 7, 3), []Operation{keep(0, 0), modify(1, 1), keep(2, 2)}},
		{"replace with extra", fp(1, 2, 3), fp(1, 7, 8, 3), []Operation{keep(0, 0), modify(1, 1), add(2), keep(2, 3)}},
		// the first unique row of a wins even when it moved to the end of b
		{"moved row", fp(1, 2, 3), fp(2, 3, 1), []Operation{add(0), add(1), keep(0, 2), del(1), del(2)}},
		{"all different", fp(1, 2), fp(3, 4, 5), []Operation{modify(0, 0), modify(1, 1), add(2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Align(tt.a, tt.b))
		})
	}
}

func TestAlignDuplicatesFallBackToPosition(t *testing.T) {
	// no fingerprint is unique on both sides
	ops := Align(fp(5, 5, 6, 6), fp(6, 6, 5))
	assert.Equal(t, []Operation{modify(0, 0), modify(1, 1), modify(2, 2), del(3)}, ops)
}

func TestAlignDuplicatesAroundAnchor(t *testing.T) {
	ops := Align(fp(5, 5, 1, 6, 6), fp(5, 1, 6, 6, 6))
	assert.Equal(t, []Operation{keep(0, 0), del(1), keep(2, 1), keep(3, 2), keep(4, 3), add(4)}, ops)
}

func checkMonotonic(t *testing.T, ops []Operation, lenA, lenB int) {
	t.Helper()
	lastA, lastB := -1, -1
	seenA, seenB := 0, 0
	for _, op := range ops {
		if op.HasOriginal() {
			require.Greater(t, op.Original, lastA)
			lastA = op.Original
			seenA++
		}
		if op.HasModified() {
			require.Greater(t, op.Modified, lastB)
			lastB = op.Modified
			seenB++
		}
		switch op.Type {
		case Keep, Modify:
			require.True(t, op.HasOriginal() && op.HasModified())
		case Add:
			require.False(t, op.HasOriginal())
		case Delete:
			require.False(t, op.HasModified())
		}
	}
	// every row of both tables is accounted for exactly once
	require.Equal(t, lenA, seenA)
	require.Equal(t, lenB, seenB)
}

func TestAlignMonotonicRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for range 300 {
		a := make([]tabular.Fingerprint, rng.Intn(40))
		for i := range a {
			a[i] = tabular.Fingerprint(rng.Intn(12))
		}
		b := make([]tabular.Fingerprint, rng.Intn(40))
		for i := range b {
			b[i] = tabular.Fingerprint(rng.Intn(12))
		}
		ops := Align(a, b)
		checkMonotonic(t, ops, len(a), len(b))
		for _, op := range ops {
			if op.Type == Keep {
				require.Equal(t, a[op.Original], b[op.Modified])
			}
			if op.Type == Modify {
				require.NotEqual(t, a[op.Original], b[op.Modified])
			}
		}
	}
}

func TestAlignIdentityRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 100 {
		a := make([]tabular.Fingerprint, rng.Intn(60))
		for i := range a {
			a[i] = tabular.Fingerprint(rng.Intn(5))
		}
		for i, op := range Align(a, a) {
			require.Equal(t, keep(i, i), op)
		}
	}
}

func TestAlignLongIdentity(t *testing.T) {
	// every row is an anchor and each one leaves the rest of the table as tail
	const n = 3000
	a := make([]tabular.Fingerprint, n)
	for i := range a {
		a[i] = tabular.Fingerprint(i)
	}
	ops := Align(a, a)
	require.Len(t, ops, n)
	assert.Equal(t, keep(n-1, n-1), ops[n-1])
}
