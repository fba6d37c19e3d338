// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/antgroup/tabdiff/modules/streamio"
	"github.com/antgroup/tabdiff/modules/tabular"
)

const (
	DefaultMaxBytes = 512 << 20
)

// ReadJSON decodes a JSON array of row arrays. Numbers keep their decimal
// text until converted to cells; null becomes Empty.
func ReadJSON(r io.Reader, maxBytes int64) (tabular.Table, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	b, err := streamio.ReadMax(r, maxBytes)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode json: trailing data after the table")
	}
	return tabular.FromValues(v)
}
