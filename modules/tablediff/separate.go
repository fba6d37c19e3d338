// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package tablediff

import (
	"github.com/antgroup/tabdiff/modules/tabular"
)

// DefaultPaneColumns is the pane width used when no row carries data.
const DefaultPaneColumns = 10

// Panes is a view split into two independently scrollable sides. All slices
// have one entry per displayed view row.
type Panes struct {
	Left        []tabular.Row
	Right       []tabular.Row
	LeftLines   []int // 1-based, 0 for a filler row
	RightLines  []int
	Types       []OpType
	CellChanges [][]bool
	Columns     int
	Rows        []ViewRow // the displayed subset of the view
	TotalRows   int       // rows of the full view
	Statistics  Summary   // counted over the displayed rows
	Omitted     int       // KEEP rows left out by the row limit
}

// Separate splits view into left and right panes. A side without a row is
// filled with an Empty row as wide as the widest row of the view. When
// maxRows is positive and the view is longer, every non-KEEP row is shown
// and the remaining slots go to the earliest KEEP rows; view order is kept.
func Separate(view []ViewRow, maxRows int) *Panes {
	columns := 0
	for _, r := range view {
		columns = max(columns, len(r.Original.Data), len(r.Modified.Data))
	}
	if columns == 0 {
		columns = DefaultPaneColumns
	}
	rows := limitRows(view, maxRows)
	p := &Panes{
		Left:        make([]tabular.Row, 0, len(rows)),
		Right:       make([]tabular.Row, 0, len(rows)),
		LeftLines:   make([]int, 0, len(rows)),
		RightLines:  make([]int, 0, len(rows)),
		Types:       make([]OpType, 0, len(rows)),
		CellChanges: make([][]bool, 0, len(rows)),
		Columns:     columns,
		Rows:        rows,
		TotalRows:   len(view),
		Omitted:     len(view) - len(rows),
	}
	for _, r := range rows {
		p.Left = append(p.Left, paneRow(r.Original, r.Type == Add, columns))
		p.Right = append(p.Right, paneRow(r.Modified, r.Type == Delete, columns))
		p.LeftLines = append(p.LeftLines, r.Original.LineNo)
		p.RightLines = append(p.RightLines, r.Modified.LineNo)
		p.Types = append(p.Types, r.Type)
		p.CellChanges = append(p.CellChanges, cellChanges(r, columns))
		p.Statistics.count(r.Type)
	}
	return p
}

func limitRows(view []ViewRow, maxRows int) []ViewRow {
	if maxRows <= 0 || len(view) <= maxRows {
		return view
	}
	changed := 0
	for _, r := range view {
		if r.Type != Keep {
			changed++
		}
	}
	slots := max(maxRows-changed, 0)
	rows := make([]ViewRow, 0, changed+slots)
	for _, r := range view {
		if r.Type == Keep {
			if slots == 0 {
				continue
			}
			slots--
		}
		rows = append(rows, r)
	}
	return rows
}

func paneRow(s Side, filler bool, columns int) tabular.Row {
	if filler || s.Data == nil {
		return make(tabular.Row, columns)
	}
	return s.Data
}

func cellChanges(r ViewRow, columns int) []bool {
	if r.Type == Modify && r.CellDiffs != nil {
		changes := make([]bool, len(r.CellDiffs))
		for i, d := range r.CellDiffs {
			changes[i] = d.Modified
		}
		return changes
	}
	return make([]bool, columns)
}
