// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/antgroup/tabdiff/modules/intersect"
	"github.com/antgroup/tabdiff/modules/streamio"
	"github.com/antgroup/tabdiff/modules/tablediff"
	"github.com/antgroup/tabdiff/pkg/sheet"
	"github.com/antgroup/tabdiff/pkg/version"
)

// Header is common to every report document.
type Header struct {
	Kind      string       `json:"kind"`
	Generator string       `json:"generator"`
	Created   time.Time    `json:"created"`
	Inputs    []sheet.Info `json:"inputs"`
}

func newHeader(kind string, inputs ...*sheet.Sheet) Header {
	h := Header{
		Kind:      kind,
		Generator: version.GetGenerator(),
		Created:   time.Now().UTC().Truncate(time.Second),
		Inputs:    make([]sheet.Info, 0, len(inputs)),
	}
	for _, s := range inputs {
		h.Inputs = append(h.Inputs, s.Info)
	}
	return h
}

// Rows is the document written by the rows command.
type Rows struct {
	Header
	Options    tablediff.Options     `json:"options"`
	Summary    tablediff.Summary     `json:"summary"`
	Operations []tablediff.Operation `json:"operations"`
	View       []tablediff.ViewRow   `json:"view"`
	Omitted    int                   `json:"omitted,omitempty"` // KEEP rows dropped from view
}

// NewRows builds a rows document. The summary always covers every
// operation; with maxRows > 0 the view is cut the way Separate cuts it.
func NewRows(original, modified *sheet.Sheet, opts tablediff.Options, r *tablediff.Result, maxRows int) *Rows {
	panes := tablediff.Separate(r.View, maxRows)
	return &Rows{
		Header:     newHeader("rows", original, modified),
		Options:    opts,
		Summary:    tablediff.Summarize(r.Operations),
		Operations: r.Operations,
		View:       panes.Rows,
		Omitted:    panes.Omitted,
	}
}

// Columns is the document written by the columns command.
type Columns struct {
	Header
	Options intersect.Options          `json:"options"`
	Columns [2]string                  `json:"columns"` // letter labels of the compared columns
	TableA  []intersect.Classification `json:"tableA"`
	TableB  []intersect.Classification `json:"tableB"`
	Stats   intersect.Stats            `json:"stats"`
}

func NewColumns(a *sheet.Sheet, colA intersect.ColumnRef, b *sheet.Sheet, colB intersect.ColumnRef, opts intersect.Options, r *intersect.Result) *Columns {
	return &Columns{
		Header:  newHeader("columns", a, b),
		Options: opts,
		Columns: [2]string{colA.Label(), colB.Label()},
		TableA:  r.A,
		TableB:  r.B,
		Stats:   r.Stats,
	}
}

// Encode writes v as indented JSON.
func Encode(w io.Writer, v any) error {
	bw := streamio.GetBufferWriter(w)
	defer streamio.PutBufferWriter(bw)
	enc := json.NewEncoder(bw)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return bw.Flush()
}
