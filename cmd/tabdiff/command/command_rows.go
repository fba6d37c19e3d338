// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/antgroup/tabdiff/modules/tablediff"
	"github.com/antgroup/tabdiff/modules/tablediff/color"
	"github.com/antgroup/tabdiff/modules/trace"
	"github.com/antgroup/tabdiff/pkg/report"
)

type Rows struct {
	Original         string `arg:"" name:"original" help:"Original table: .csv, .tsv or .json, optionally .gz or .zst compressed; '-' for stdin"`
	Modified         string `arg:"" name:"modified" help:"Modified table, same formats as the original"`
	IgnoreCase       bool   `name:"ignore-case" negatable:"" default:"true" help:"Compare cells case-insensitively"`
	IgnoreWhitespace bool   `name:"ignore-whitespace" negatable:"" default:"true" help:"Ignore leading and trailing whitespace in cells"`
	NullAsEmpty      bool   `name:"null-as-empty" negatable:"" default:"true" help:"Treat empty cells as empty strings"`
	Format           string `short:"f" name:"format" enum:"table,json" default:"table" help:"Output format: table or json"`
	Output           string `short:"o" name:"output" default:"-" help:"Write the output to a file; .gz and .zst names are compressed"`
	MaxRows          int    `name:"max-rows" default:"0" help:"Show at most this many rows, changed rows first; 0 shows all"`
	MaxCellWidth     int    `name:"max-cell-width" default:"0" help:"Cut wider cells in table output; 0 fits the terminal, -1 never cuts"`
	Header           bool   `name:"header" negatable:"" default:"true" help:"Print column letters above table output"`
	ExitCode         bool   `name:"exit-code" help:"Exit with status 1 when the tables differ"`
	Input            `embed:""`
}

func (c *Rows) Validate() error {
	return validatePaths(c.Original, c.Modified)
}

func (c *Rows) options() tablediff.Options {
	return tablediff.Options{
		IgnoreCase:       c.IgnoreCase,
		IgnoreWhitespace: c.IgnoreWhitespace,
		NullAsEmpty:      c.NullAsEmpty,
	}
}

func (c *Rows) Run(g *Globals) error {
	original, modified, err := loadPair(context.Background(), g, &c.Input, c.Original, c.Modified)
	if err != nil {
		return trace.Errorf("rows: %w", err)
	}
	t := trace.NewTracker(g.Verbose)
	opts := c.options()
	result := tablediff.Compare(original.Table, modified.Table, opts)
	t.StepNext("compare %d and %d rows", len(original.Table), len(modified.Table))
	summary := tablediff.Summarize(result.Operations)
	g.DbgPrint("operations: %d", len(result.Operations))

	err = writeOutput(g, c.Output, func(w io.Writer) error {
		if c.Format == "json" {
			return report.Encode(w, report.NewRows(original, modified, opts, result, c.MaxRows))
		}
		return c.renderTable(g, w, result)
	})
	if err != nil {
		return trace.Errorf("rows: write output: %w", err)
	}
	if c.ExitCode && summary.HasChanges() {
		return ErrDiffer
	}
	return nil
}

func (c *Rows) renderTable(g *Globals, w io.Writer, result *tablediff.Result) error {
	panes := tablediff.Separate(result.View, c.MaxRows)
	cc := g.ColorConfig(w)
	opts := &tablediff.RenderOptions{
		Color:        cc,
		Header:       c.Header,
		MaxCellWidth: c.MaxCellWidth,
	}
	if c.MaxCellWidth == 0 {
		lineWidth := len(strconv.Itoa(max(panes.TotalRows, 1)))
		opts.MaxCellWidth = fitCellWidth(terminalWidth(w), panes.Columns, lineWidth)
	}
	if err := tablediff.Render(w, panes.Rows, opts); err != nil {
		return err
	}
	all := tablediff.Summarize(result.Operations)
	line := fmt.Sprintf("%d added, %d deleted, %d modified, %d unchanged",
		all.Additions, all.Deletions, all.Modifications, all.Unchanged)
	if panes.Omitted > 0 {
		line += fmt.Sprintf(" (%d unchanged rows not shown)", panes.Omitted)
	}
	_, err := fmt.Fprintln(w, cc.Paint(color.Meta, line))
	return err
}
