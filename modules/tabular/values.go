// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports a table that is not an ordered sequence of rows.
	ErrInvalidInput = errors.New("invalid input")
)

// FromValues converts loosely typed data, such as the result of decoding a
// JSON array of arrays, into a Table. It fails before converting anything
// when v itself is not a sequence. A nil row becomes an empty row.
func FromValues(v any) (Table, error) {
	switch t := v.(type) {
	case Table:
		return t, nil
	case []Row:
		return Table(t), nil
	case [][]string:
		table := make(Table, len(t))
		for i, r := range t {
			table[i] = FromStrings(r)
		}
		return table, nil
	case [][]any:
		table := make(Table, len(t))
		for i, r := range t {
			row, err := rowFromValues(r)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			table[i] = row
		}
		return table, nil
	case []any:
		table := make(Table, len(t))
		for i, r := range t {
			row, err := RowFromValue(r)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			table[i] = row
		}
		return table, nil
	case nil:
		return nil, fmt.Errorf("table is nil: %w", ErrInvalidInput)
	}
	return nil, fmt.Errorf("table has type %T, want a sequence of rows: %w", v, ErrInvalidInput)
}

// RowFromValue converts one loosely typed row.
func RowFromValue(v any) (Row, error) {
	switch r := v.(type) {
	case nil:
		return Row{}, nil
	case Row:
		return r, nil
	case []Cell:
		return Row(r), nil
	case []string:
		return FromStrings(r), nil
	case []any:
		return rowFromValues(r)
	}
	return nil, fmt.Errorf("row has type %T, want a sequence of cells: %w", v, ErrInvalidInput)
}

func rowFromValues(values []any) (Row, error) {
	row := make(Row, len(values))
	for i, v := range values {
		c, err := CellFromValue(v)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		row[i] = c
	}
	return row, nil
}

// FromStrings wraps every string as a String cell.
func FromStrings(values []string) Row {
	row := make(Row, len(values))
	for i, s := range values {
		row[i] = String(s)
	}
	return row
}

// CellFromValue converts a plain Go value into a Cell.
func CellFromValue(v any) (Cell, error) {
	switch x := v.(type) {
	case nil:
		return Empty(), nil
	case Cell:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return Number(f), nil
		}
		return String(x.String()), nil
	}
	return Cell{}, fmt.Errorf("unsupported cell type %T: %w", v, ErrInvalidInput)
}

func (c Cell) MarshalJSON() ([]byte, error) {
	if c.kind == KindNumber && (c.n != c.n || c.n > maxJSONFloat || c.n < -maxJSONFloat) {
		// NaN and infinities have no JSON form
		return json.Marshal(formatNumber(c.n))
	}
	return json.Marshal(c.Value())
}

func (c *Cell) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	cell, err := CellFromValue(v)
	if err != nil {
		return err
	}
	*c = cell
	return nil
}

const maxJSONFloat = 1.7976931348623157e308
