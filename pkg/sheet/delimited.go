// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sheet

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/antgroup/tabdiff/modules/streamio"
	"github.com/antgroup/tabdiff/modules/tabular"
)

const (
	checkEvery = 1024
)

// ReadDelimited reads comma separated records. Records may have different
// lengths. Every field is a String cell unless infer is set.
func ReadDelimited(ctx context.Context, r io.Reader, comma rune, infer bool) (tabular.Table, error) {
	br := streamio.GetBufioReader(r)
	defer streamio.PutBufioReader(br)
	cr := csv.NewReader(br)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	table := make(tabular.Table, 0, 64)
	for {
		if len(table)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(tabular.Row, len(record))
		for i, field := range record {
			if infer {
				row[i] = InferCell(field)
				continue
			}
			row[i] = tabular.String(field)
		}
		table = append(table, row)
	}
	return table, nil
}

// InferCell types a text field: empty becomes Empty, true/false (any case)
// become Bool, finite decimal numbers become Number, anything else stays a
// String.
func InferCell(field string) tabular.Cell {
	s := strings.TrimSpace(field)
	if s == "" {
		return tabular.Empty()
	}
	switch strings.ToLower(s) {
	case "true":
		return tabular.Bool(true)
	case "false":
		return tabular.Bool(false)
	}
	if !looksDecimal(s) {
		return tabular.String(field)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return tabular.String(field)
	}
	return tabular.Number(n)
}

// looksDecimal rejects what ParseFloat accepts beyond plain decimals: hex,
// underscores, Inf and NaN spellings.
func looksDecimal(s string) bool {
	digits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' || c == 'e' || c == 'E':
		case c == '+' || c == '-':
			if i != 0 && s[i-1] != 'e' && s[i-1] != 'E' {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}
