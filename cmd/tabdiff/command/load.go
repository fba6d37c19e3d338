// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/antgroup/tabdiff/modules/trace"
	"github.com/antgroup/tabdiff/pkg/sheet"
	"golang.org/x/sync/errgroup"
)

// Input holds the flags shared by commands that read tables.
type Input struct {
	Charset    string       `name:"charset" help:"Character set of text inputs, e.g. gbk, shift_jis, windows-1252"`
	InferTypes bool         `name:"infer-types" help:"Read numbers, booleans and empty fields of CSV/TSV inputs as typed cells"`
	As         sheet.Format `name:"as" help:"Input format when it cannot be told from the file name: csv, tsv or json" default:"auto"`
	Progress   bool         `name:"progress" negatable:"" default:"true" help:"Show loading progress when stderr is a terminal"`
}

func (i *Input) options() *sheet.Options {
	return &sheet.Options{
		Format:     i.As,
		Charset:    i.Charset,
		InferTypes: i.InferTypes,
	}
}

func validatePaths(a, b string) error {
	if a == "-" && b == "-" {
		return errors.New("only one input may be read from standard input")
	}
	return nil
}

// loadPair reads both tables concurrently.
func loadPair(ctx context.Context, g *Globals, in *Input, a, b string) (*sheet.Sheet, *sheet.Sheet, error) {
	t := trace.NewTracker(g.Verbose)
	var bars *loadProgress
	if in.Progress && stderrIsTerminal() {
		bars = newLoadProgress(os.Stderr, terminalWidth(os.Stderr))
	}
	paths := [2]string{a, b}
	var sheets [2]*sheet.Sheet
	eg, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		eg.Go(func() error {
			s, err := loadOne(ctx, p, in.options(), bars)
			if err != nil {
				return fmt.Errorf("load '%s': %w", p, err)
			}
			sheets[i] = s
			return nil
		})
	}
	err := eg.Wait()
	bars.wait()
	if err != nil {
		return nil, nil, err
	}
	t.StepNext("load inputs")
	for _, s := range sheets {
		g.DbgPrint("%s: %d rows, %d columns, %s/%s, %d bytes, blake3 %s",
			s.Info.Path, s.Info.Rows, s.Info.Columns, s.Info.Format, s.Info.Compression, s.Info.Size, s.Info.Digest)
	}
	return sheets[0], sheets[1], nil
}

func loadOne(ctx context.Context, path string, opts *sheet.Options, bars *loadProgress) (*sheet.Sheet, error) {
	rc, size, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	r, done := bars.track(path, size, rc)
	s, err := sheet.Read(ctx, r, path, opts)
	done(err == nil)
	return s, err
}
