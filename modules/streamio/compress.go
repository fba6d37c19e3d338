// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package streamio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Compression is the container format of a file, chosen by its extension.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
)

var (
	compressionNames = map[Compression]string{
		None: "none",
		Gzip: "gzip",
		Zstd: "zstd",
	}
)

func (c Compression) String() string {
	if n, ok := compressionNames[c]; ok {
		return n
	}
	return "unknown"
}

// Detect returns the compression of name and name without its compression
// extension: "a.csv.gz" yields Gzip and "a.csv".
func Detect(name string) (Compression, string) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".gz", ".gzip":
		return Gzip, name[:len(name)-len(ext)]
	case ".zst", ".zstd":
		return Zstd, name[:len(name)-len(ext)]
	}
	return None, name
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error {
	return r.close()
}

// NewReader decompresses r according to c. Closing the returned reader
// releases pooled decoders but does not close r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, nil
	case Zstd:
		zr, err := GetZstdReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return &readCloser{Reader: zr, close: func() error {
			PutZstdReader(zr)
			return nil
		}}, nil
	}
	return nil, fmt.Errorf("unsupported compression %d", c)
}

type writeCloser struct {
	io.Writer
	close func() error
}

func (w *writeCloser) Close() error {
	return w.close()
}

// NewWriter compresses into w according to c. Close flushes the compressed
// stream but does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case None:
		return &writeCloser{Writer: w, close: func() error { return nil }}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		zw := GetZstdWriter(w)
		return &writeCloser{Writer: zw, close: func() error {
			return PutZstdWriter(zw)
		}}, nil
	}
	return nil, fmt.Errorf("unsupported compression %d", c)
}
