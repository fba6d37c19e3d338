// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"math"
	"strconv"
)

// Kind is the type tag of a Cell.
type Kind int8

const (
	// KindEmpty marks an absent or null cell.
	KindEmpty Kind = iota
	KindString
	KindNumber
	KindBool
)

var (
	kindNameMap = map[Kind]string{
		KindEmpty:  "empty",
		KindString: "string",
		KindNumber: "number",
		KindBool:   "bool",
	}
)

func (k Kind) String() string {
	if n, ok := kindNameMap[k]; ok {
		return n
	}
	return "unknown"
}

// Cell is one spreadsheet value. The zero Cell is Empty.
type Cell struct {
	kind Kind
	s    string
	n    float64
	b    bool
}

// Row is an ordered sequence of cells; rows of one table may differ in length.
type Row []Cell

// Table is an ordered sequence of rows.
type Table []Row

func String(s string) Cell {
	return Cell{kind: KindString, s: s}
}

func Number(n float64) Cell {
	return Cell{kind: KindNumber, n: n}
}

func Bool(b bool) Cell {
	return Cell{kind: KindBool, b: b}
}

func Empty() Cell {
	return Cell{}
}

func (c Cell) Kind() Kind {
	return c.kind
}

func (c Cell) IsEmpty() bool {
	return c.kind == KindEmpty
}

// Text returns the display form of the cell. Empty cells render as "".
func (c Cell) Text() string {
	switch c.kind {
	case KindString:
		return c.s
	case KindNumber:
		return formatNumber(c.n)
	case KindBool:
		return strconv.FormatBool(c.b)
	}
	return ""
}

// Value returns the cell as a plain Go value: string, float64, bool or nil.
func (c Cell) Value() any {
	switch c.kind {
	case KindString:
		return c.s
	case KindNumber:
		return c.n
	case KindBool:
		return c.b
	}
	return nil
}

func (c Cell) String() string {
	return c.Text()
}

// formatNumber renders n as plain decimal below 1e21 and in exponent form beyond.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		// -0 prints as 0
		return "0"
	case math.Abs(n) < 1e21:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// At returns the cell at column i, or an Empty cell when the row is shorter.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{}
	}
	return r[i]
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for i, row := range t {
		if row == nil {
			continue
		}
		out[i] = make(Row, len(row))
		copy(out[i], row)
	}
	return out
}

// MaxColumns returns the length of the longest row.
func (t Table) MaxColumns() int {
	n := 0
	for _, row := range t {
		n = max(n, len(row))
	}
	return n
}
