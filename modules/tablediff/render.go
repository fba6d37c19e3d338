// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package tablediff

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/antgroup/tabdiff/modules/tablediff/color"
	"github.com/antgroup/tabdiff/modules/tabular"
	"github.com/rivo/uniseg"
)

var (
	operationMark = map[OpType]byte{
		Keep:   ' ',
		Modify: '~',
		Add:    '+',
		Delete: '-',
	}

	operationColorKey = map[OpType]color.ColorKey{
		Keep:   color.Keep,
		Modify: color.Modify,
		Add:    color.Add,
		Delete: color.Delete,
	}

	controlReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")
)

// RenderOptions configure Render. The zero value renders plain text without
// a header and without truncation.
type RenderOptions struct {
	Color        color.ColorConfig
	MaxCellWidth int // display cells wider than this are cut with an ellipsis
	Header       bool
}

// Render writes view as a side by side text table: the original rows on the
// left, the modified rows on the right, changed cells of modified rows
// flagged with '*' on both sides.
func Render(w io.Writer, view []ViewRow, opts *RenderOptions) error {
	if opts == nil {
		opts = &RenderOptions{}
	}
	r := &renderer{opts: opts}
	r.measure(view)
	bw := bufio.NewWriter(w)
	if opts.Header {
		r.writeHeader(bw)
	}
	for _, v := range view {
		r.writeRow(bw, v)
	}
	return bw.Flush()
}

type renderer struct {
	opts        *RenderOptions
	left, right []int // text width per column
	lineWidth   int
}

func (r *renderer) cellText(c tabular.Cell) string {
	s := controlReplacer.Replace(c.Text())
	return truncate(s, r.opts.MaxCellWidth)
}

func (r *renderer) measure(view []ViewRow) {
	maxLine := 0
	grow := func(widths []int, row tabular.Row) []int {
		for i, c := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], uniseg.StringWidth(r.cellText(c)))
		}
		return widths
	}
	for _, v := range view {
		r.left = grow(r.left, v.Original.Data)
		r.right = grow(r.right, v.Modified.Data)
		maxLine = max(maxLine, v.Original.LineNo, v.Modified.LineNo)
	}
	if r.opts.Header {
		for i := range r.left {
			r.left[i] = max(r.left[i], len(tabular.ColumnLabel(i)))
		}
		for i := range r.right {
			r.right[i] = max(r.right[i], len(tabular.ColumnLabel(i)))
		}
	}
	r.lineWidth = len(strconv.Itoa(maxLine))
}

// sideWidth is the display width of one side: line number, " |", and every
// cell as flag + text + " |".
func (r *renderer) sideWidth(widths []int) int {
	n := r.lineWidth + 2
	for _, w := range widths {
		n += w + 3
	}
	return n
}

func (r *renderer) writeHeader(bw *bufio.Writer) {
	var b strings.Builder
	b.WriteString("  ")
	r.headerSide(&b, r.left)
	b.WriteString(" ‖ ")
	r.headerSide(&b, r.right)
	_, _ = bw.WriteString(r.opts.Color.Paint(color.Meta, strings.TrimRight(b.String(), " ")))
	_ = bw.WriteByte('\n')
}

func (r *renderer) headerSide(b *strings.Builder, widths []int) {
	b.WriteString(pad("#", r.lineWidth))
	b.WriteString(" |")
	for i, w := range widths {
		b.WriteByte(' ')
		b.WriteString(pad(tabular.ColumnLabel(i), w))
		b.WriteString(" |")
	}
}

func (r *renderer) writeRow(bw *bufio.Writer, v ViewRow) {
	key := operationColorKey[v.Type]
	_, _ = bw.WriteString(r.opts.Color.Paint(key, string(operationMark[v.Type])))
	_ = bw.WriteByte(' ')
	r.writeSide(bw, v, v.Original, r.left)
	_, _ = bw.WriteString(" ‖ ")
	r.writeSide(bw, v, v.Modified, r.right)
	_ = bw.WriteByte('\n')
}

func (r *renderer) writeSide(bw *bufio.Writer, v ViewRow, s Side, widths []int) {
	if !s.Present() {
		_, _ = bw.WriteString(r.opts.Color.Paint(color.Filler, strings.Repeat(" ", r.sideWidth(widths))))
		return
	}
	_, _ = bw.WriteString(r.opts.Color.Paint(color.LineNo, padLeft(strconv.Itoa(s.LineNo), r.lineWidth)))
	_, _ = bw.WriteString(" |")
	key := operationColorKey[v.Type]
	for i, w := range widths {
		text := ""
		if i < len(s.Data) {
			text = r.cellText(s.Data[i])
		}
		changed := i < len(v.CellDiffs) && v.CellDiffs[i].Modified && i < len(s.Data)
		cell := " " + pad(text, w)
		if changed {
			cell = "*" + pad(text, w)
			_, _ = bw.WriteString(r.opts.Color.Paint(color.Changed, cell))
		} else {
			_, _ = bw.WriteString(r.opts.Color.Paint(key, cell))
		}
		_, _ = bw.WriteString(" |")
	}
}

func pad(s string, width int) string {
	if n := width - uniseg.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := width - uniseg.StringWidth(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// truncate cuts s to at most limit display columns, ending with an ellipsis.
func truncate(s string, limit int) string {
	if limit <= 0 || uniseg.StringWidth(s) <= limit {
		return s
	}
	var b strings.Builder
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if width+w > limit-1 {
			break
		}
		b.WriteString(g.Str())
		width += w
	}
	b.WriteString("…")
	return b.String()
}
