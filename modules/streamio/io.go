// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package streamio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	ErrTooLarge = errors.New("input too large")
)

// ReadMax reads all of r, failing with ErrTooLarge once more than n bytes
// arrive. A non-positive n reads without limit.
func ReadMax(r io.Reader, n int64) ([]byte, error) {
	var buf bytes.Buffer
	if n <= 0 {
		if _, err := buf.ReadFrom(r); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	if _, err := buf.ReadFrom(io.LimitReader(r, n+1)); err != nil {
		return nil, err
	}
	if int64(buf.Len()) > n {
		return nil, fmt.Errorf("more than %d bytes: %w", n, ErrTooLarge)
	}
	return buf.Bytes(), nil
}
