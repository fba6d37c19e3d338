// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"

	"github.com/antgroup/tabdiff/modules/intersect"
	"github.com/antgroup/tabdiff/modules/trace"
	"github.com/antgroup/tabdiff/pkg/report"
)

type Columns struct {
	A                string              `arg:"" name:"a" help:"First table: .csv, .tsv or .json, optionally .gz or .zst compressed; '-' for stdin"`
	ColumnA          intersect.ColumnRef `arg:"" name:"column-a" help:"Column of the first table: 0-based index or letter (A, B, ..., AA)"`
	B                string              `arg:"" name:"b" help:"Second table, same formats as the first"`
	ColumnB          intersect.ColumnRef `arg:"" name:"column-b" help:"Column of the second table"`
	IgnoreCase       bool                `name:"ignore-case" negatable:"" default:"true" help:"Compare values case-insensitively"`
	IgnoreWhitespace bool                `name:"ignore-whitespace" negatable:"" default:"true" help:"Ignore leading and trailing whitespace in values"`
	IgnoreEmpty      bool                `name:"ignore-empty" negatable:"" default:"true" help:"Never match empty values"`
	Format           string              `short:"f" name:"format" enum:"table,json" default:"table" help:"Output format: table or json"`
	Output           string              `short:"o" name:"output" default:"-" help:"Write the output to a file; .gz and .zst names are compressed"`
	ExitCode         bool                `name:"exit-code" help:"Exit with status 1 when any value is present in one table only"`
	Input            `embed:""`
}

func (c *Columns) Validate() error {
	return validatePaths(c.A, c.B)
}

func (c *Columns) options() intersect.Options {
	return intersect.Options{
		IgnoreCase:       c.IgnoreCase,
		IgnoreWhitespace: c.IgnoreWhitespace,
		IgnoreEmpty:      c.IgnoreEmpty,
	}
}

func (c *Columns) Run(g *Globals) error {
	a, b, err := loadPair(context.Background(), g, &c.Input, c.A, c.B)
	if err != nil {
		return trace.Errorf("columns: %w", err)
	}
	opts := c.options()
	result, err := intersect.Compare(a.Table, c.ColumnA, b.Table, c.ColumnB, opts)
	if err != nil {
		return trace.Errorf("columns: %w", err)
	}
	g.DbgPrint("common keys: %d", result.Stats.CommonKeys)
	err = writeOutput(g, c.Output, func(w io.Writer) error {
		if c.Format == "json" {
			return report.Encode(w, report.NewColumns(a, c.ColumnA, b, c.ColumnB, opts, result))
		}
		return intersect.Render(w, result, &intersect.RenderOptions{
			Color:  g.ColorConfig(w),
			LabelA: c.ColumnA.Label(),
			LabelB: c.ColumnB.Label(),
		})
	})
	if err != nil {
		return trace.Errorf("columns: write output: %w", err)
	}
	if c.ExitCode && (intersect.Count(result.A, intersect.Diff) != 0 || intersect.Count(result.B, intersect.Diff) != 0) {
		return ErrDiffer
	}
	return nil
}
