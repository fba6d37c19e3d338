// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package tablediff

import (
	"slices"

	"github.com/antgroup/tabdiff/modules/tabular"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// span is a pair of row ranges still to be aligned.
type span struct {
	offA, lenA int
	offB, lenB int
}

// Align computes an order preserving alignment of two fingerprint sequences.
//
// It is a single anchor variant of patience diff: inside the current pair of
// ranges it takes the first row of a that occurs exactly once in both ranges,
// keeps it, and aligns the rows before and after it independently. A range
// pair without such an anchor is aligned position by position. Runs of
// duplicate rows therefore pair up by position rather than by best match.
// Every anchor search counts its whole range, so the worst case is quadratic
// in the number of rows.
//
// Pending ranges live on an explicit stack, so the call depth does not grow
// with the input.
func Align(a, b []tabular.Fingerprint) []Operation {
	ops := make([]Operation, 0, max(len(a), len(b)))
	stack := arraystack.New()
	stack.Push(span{offA: 0, lenA: len(a), offB: 0, lenB: len(b)})
	for !stack.Empty() {
		v, _ := stack.Pop()
		switch w := v.(type) {
		case Operation:
			ops = append(ops, w)
		case span:
			if w.lenA == 0 && w.lenB == 0 {
				continue
			}
			sa := a[w.offA : w.offA+w.lenA]
			sb := b[w.offB : w.offB+w.lenB]
			ia, ib, ok := findUniqueAnchor(sa, sb)
			if !ok {
				ops = appendGap(ops, sa, sb, w.offA, w.offB)
				continue
			}
			// LIFO: the head is popped first, then the anchor, then the tail.
			stack.Push(span{offA: w.offA + ia + 1, lenA: w.lenA - ia - 1, offB: w.offB + ib + 1, lenB: w.lenB - ib - 1})
			stack.Push(Operation{Type: Keep, Original: w.offA + ia, Modified: w.offB + ib})
			stack.Push(span{offA: w.offA, lenA: ia, offB: w.offB, lenB: ib})
		}
	}
	return ops
}

// findUniqueAnchor returns the positions of the first element of a that
// occurs exactly once in a and exactly once in b.
func findUniqueAnchor(a, b []tabular.Fingerprint) (int, int, bool) {
	countA := make(map[tabular.Fingerprint]int, len(a))
	for _, h := range a {
		countA[h]++
	}
	countB := make(map[tabular.Fingerprint]int, len(b))
	for _, h := range b {
		countB[h]++
	}
	for i, h := range a {
		if countA[h] == 1 && countB[h] == 1 {
			return i, slices.Index(b, h), true
		}
	}
	return 0, 0, false
}

// appendGap aligns a and b by position.
func appendGap(ops []Operation, a, b []tabular.Fingerprint, offA, offB int) []Operation {
	for i := range max(len(a), len(b)) {
		hasA, hasB := i < len(a), i < len(b)
		switch {
		case hasA && hasB:
			t := Modify
			if a[i] == b[i] {
				t = Keep
			}
			ops = append(ops, Operation{Type: t, Original: offA + i, Modified: offB + i})
		case hasA:
			ops = append(ops, Operation{Type: Delete, Original: offA + i, Modified: NoIndex})
		default:
			ops = append(ops, Operation{Type: Add, Original: NoIndex, Modified: offB + i})
		}
	}
	return ops
}
