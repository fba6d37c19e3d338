// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sheet

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/antgroup/tabdiff/modules/chardet"
	"github.com/antgroup/tabdiff/modules/streamio"
	"github.com/antgroup/tabdiff/modules/tabular"
	"github.com/zeebo/blake3"
)

var (
	ErrUnknownFormat = errors.New("unknown table format")
)

// Format is the text layout of a table file.
type Format int

const (
	Auto Format = iota
	CSV
	TSV
	JSON
)

var (
	formatNames = map[Format]string{
		Auto: "auto",
		CSV:  "csv",
		TSV:  "tsv",
		JSON: "json",
	}
)

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return "unknown"
}

// ParseFormat accepts a format name or a file extension with or without the
// leading dot.
func ParseFormat(s string) (Format, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	switch name {
	case "", "auto":
		return Auto, nil
	case "csv", "txt":
		return CSV, nil
	case "tsv", "tab":
		return TSV, nil
	case "json":
		return JSON, nil
	}
	return Auto, fmt.Errorf("'%s': %w", s, ErrUnknownFormat)
}

func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

type Options struct {
	Format     Format // Auto picks the format from the file extension
	Charset    string // empty means UTF-8
	InferTypes bool   // turn numeric, boolean and empty CSV fields into typed cells
	MaxBytes   int64  // upper bound on the decompressed size of a JSON document
}

// Info describes where a table came from.
type Info struct {
	Path        string `json:"path"`
	Format      string `json:"format"`
	Compression string `json:"compression"`
	Charset     string `json:"charset,omitempty"`
	Size        int64  `json:"size"`
	Digest      string `json:"blake3"` // over the file bytes as stored
	Rows        int    `json:"rows"`
	Columns     int    `json:"columns"`
}

type Sheet struct {
	Table tabular.Table
	Info  Info
}

// countingWriter feeds the digest and counts the bytes it sees.
type countingWriter struct {
	h *blake3.Hasher
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return w.h.Write(p)
}

// Load reads the table stored at path. "-" reads standard input, in which
// case the format must be given.
func Load(ctx context.Context, path string, opts *Options) (*Sheet, error) {
	if path == "-" {
		return Read(ctx, os.Stdin, "-", opts)
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Read(ctx, fd, path, opts)
}

// Read decodes a table from r. name supplies the format and compression
// when they are not forced by opts.
func Read(ctx context.Context, r io.Reader, name string, opts *Options) (*Sheet, error) {
	if opts == nil {
		opts = &Options{}
	}
	compression, base := streamio.Detect(name)
	format := opts.Format
	if format == Auto {
		var err error
		if format, err = ParseFormat(filepath.Ext(base)); err != nil || format == Auto {
			return nil, fmt.Errorf("%s: cannot tell format from extension: %w", name, ErrUnknownFormat)
		}
	}
	cw := &countingWriter{h: blake3.New()}
	raw := io.TeeReader(r, cw)
	zr, err := streamio.NewReader(raw, compression)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer zr.Close()
	text, err := chardet.NewReader(zr, opts.Charset)
	if err != nil {
		return nil, err
	}

	var table tabular.Table
	switch format {
	case CSV:
		table, err = ReadDelimited(ctx, text, ',', opts.InferTypes)
	case TSV:
		table, err = ReadDelimited(ctx, text, '\t', opts.InferTypes)
	case JSON:
		table, err = ReadJSON(text, opts.MaxBytes)
	default:
		err = fmt.Errorf("format %d: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	// digest the whole file even when the decoder stopped early
	if _, err := io.Copy(io.Discard, raw); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Sheet{
		Table: table,
		Info: Info{
			Path:        name,
			Format:      format.String(),
			Compression: compression.String(),
			Charset:     opts.Charset,
			Size:        cw.n,
			Digest:      hex.EncodeToString(cw.h.Sum(nil)),
			Rows:        len(table),
			Columns:     table.MaxColumns(),
		},
	}, nil
}
