// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package intersect

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antgroup/tabdiff/modules/tablediff/color"
	"github.com/rivo/uniseg"
)

var (
	controlReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")
)

// RenderOptions configure Render.
type RenderOptions struct {
	Color  color.ColorConfig
	LabelA string
	LabelB string
}

// Render writes both classification lists next to each other, one row per
// line, SAME keys marked '=' and DIFF keys marked '!', followed by the
// statistics.
func Render(w io.Writer, r *Result, opts *RenderOptions) error {
	if opts == nil {
		opts = &RenderOptions{}
	}
	labelA, labelB := opts.LabelA, opts.LabelB
	if labelA == "" {
		labelA = "A"
	}
	if labelB == "" {
		labelB = "B"
	}
	lineWidth := len(strconv.Itoa(max(len(r.A), len(r.B), 1)))
	keyWidth := uniseg.StringWidth(labelA)
	for _, c := range r.A {
		keyWidth = max(keyWidth, uniseg.StringWidth(displayKey(c.Key)))
	}
	bw := bufio.NewWriter(w)
	header := fmt.Sprintf("  %s | %s ‖   %s | %s", pad("#", lineWidth), pad(labelA, keyWidth), pad("#", lineWidth), labelB)
	_, _ = bw.WriteString(opts.Color.Paint(color.Meta, header))
	_ = bw.WriteByte('\n')
	for i := range max(len(r.A), len(r.B)) {
		writeSide(bw, r.A, i, lineWidth, keyWidth, opts.Color)
		_, _ = bw.WriteString(" ‖ ")
		writeSide(bw, r.B, i, lineWidth, 0, opts.Color)
		_ = bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "common keys: %d, %s: %d/%d same, %s: %d/%d same\n",
		r.Stats.CommonKeys,
		labelA, Count(r.A, Same), r.Stats.TotalA,
		labelB, Count(r.B, Same), r.Stats.TotalB)
	return bw.Flush()
}

func writeSide(bw *bufio.Writer, side []Classification, i, lineWidth, keyWidth int, cc color.ColorConfig) {
	if i >= len(side) {
		if keyWidth > 0 {
			_, _ = bw.WriteString(strings.Repeat(" ", lineWidth+keyWidth+5))
		}
		return
	}
	c := side[i]
	key, mark := color.Distinct, "!"
	if c.Status == Same {
		key, mark = color.Same, "="
	}
	_, _ = bw.WriteString(cc.Paint(key, mark))
	_ = bw.WriteByte(' ')
	_, _ = bw.WriteString(cc.Paint(color.LineNo, padLeft(strconv.Itoa(c.RowIndex+1), lineWidth)))
	_, _ = bw.WriteString(" | ")
	text := displayKey(c.Key)
	if keyWidth > 0 {
		text = pad(text, keyWidth)
	}
	_, _ = bw.WriteString(cc.Paint(key, text))
}

func displayKey(k string) string {
	return controlReplacer.Replace(k)
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
