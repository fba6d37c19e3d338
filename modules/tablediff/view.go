// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package tablediff

import (
	"encoding/json"

	"github.com/antgroup/tabdiff/modules/tabular"
)

// CellDiff flags one column of a modified row. Original holds the raw
// original cell of a changed column, nil when the original row has no cell
// at that position or the column is unchanged.
type CellDiff struct {
	Modified bool          `json:"isModified"`
	Original *tabular.Cell `json:"originalValue,omitempty"`
}

// Side is one half of a view row. LineNo is 1-based, 0 when the operation
// has no row on this side; Data is nil in that case. In JSON both fields of
// an absent side are null.
type Side struct {
	LineNo int
	Data   tabular.Row
}

type sideJSON struct {
	LineNo *int        `json:"lineNo"`
	Data   tabular.Row `json:"data"`
}

func (s Side) Present() bool {
	return s.LineNo != 0
}

func (s Side) MarshalJSON() ([]byte, error) {
	v := sideJSON{Data: s.Data}
	if s.LineNo != 0 {
		line := s.LineNo
		v.LineNo = &line
	}
	return json.Marshal(&v)
}

func (s *Side) UnmarshalJSON(b []byte) error {
	var v sideJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Side{Data: v.Data}
	if v.LineNo != nil {
		s.LineNo = *v.LineNo
	}
	return nil
}

// ViewRow is the rendering unit: one per operation.
type ViewRow struct {
	Type      OpType     `json:"type"`
	Original  Side       `json:"original"`
	Modified  Side       `json:"modified"`
	CellDiffs []CellDiff `json:"cellDiffs,omitempty"`
}

// CellDiffs compares two rows column by column up to the longer row. A
// column present on one side only always counts as modified.
func CellDiffs(original, modified tabular.Row, n *tabular.Normalizer) []CellDiff {
	width := max(len(original), len(modified))
	diffs := make([]CellDiff, width)
	for i := range width {
		if i >= len(original) || i >= len(modified) {
			diffs[i].Modified = true
			if i < len(original) {
				c := original[i]
				diffs[i].Original = &c
			}
			continue
		}
		if n.Normalize(original[i]) != n.Normalize(modified[i]) {
			c := original[i]
			diffs[i] = CellDiff{Modified: true, Original: &c}
		}
	}
	return diffs
}

// BuildView maps every operation to a view row. Indices produced by Align
// are always in range of their tables.
func BuildView(ops []Operation, original, modified tabular.Table, n *tabular.Normalizer) []ViewRow {
	view := make([]ViewRow, 0, len(ops))
	for _, op := range ops {
		row := ViewRow{Type: op.Type}
		if op.HasOriginal() {
			row.Original = Side{LineNo: op.Original + 1, Data: original[op.Original]}
		}
		if op.HasModified() {
			row.Modified = Side{LineNo: op.Modified + 1, Data: modified[op.Modified]}
		}
		if op.Type == Modify {
			row.CellDiffs = CellDiffs(row.Original.Data, row.Modified.Data, n)
		}
		view = append(view, row)
	}
	return view
}
