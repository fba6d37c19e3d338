// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package intersect

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/antgroup/tabdiff/modules/tabular"
)

var (
	// ErrInvalidColumnReference reports a column that is neither a
	// non-negative index nor a spreadsheet letter label.
	ErrInvalidColumnReference = errors.New("invalid column reference")
)

// ColumnRef names a column by 0-based index or by letter label.
type ColumnRef struct {
	index  int
	label  string
	letter bool
}

// Index refers to a column by its 0-based position.
func Index(i int) ColumnRef {
	return ColumnRef{index: i}
}

// Letter refers to a column by its spreadsheet label, "A" being the first.
func Letter(label string) ColumnRef {
	return ColumnRef{label: label, letter: true}
}

// ParseColumnRef accepts a decimal index ("0", "12") or a letter label
// ("B", "aa"). Surrounding whitespace is ignored.
func ParseColumnRef(s string) (ColumnRef, error) {
	s = strings.TrimSpace(s)
	if s != "" && isDigits(s) {
		i, err := strconv.Atoi(s)
		if err != nil {
			return ColumnRef{}, fmt.Errorf("column '%s': %w", s, ErrInvalidColumnReference)
		}
		return Index(i), nil
	}
	ref := Letter(s)
	if _, err := ref.Resolve(); err != nil {
		return ColumnRef{}, err
	}
	return ref, nil
}

// Resolve returns the 0-based index the reference points at.
func (r ColumnRef) Resolve() (int, error) {
	if !r.letter {
		if r.index < 0 {
			return 0, fmt.Errorf("column index %d: %w", r.index, ErrInvalidColumnReference)
		}
		return r.index, nil
	}
	label := strings.ToUpper(strings.TrimSpace(r.label))
	if label == "" {
		return 0, fmt.Errorf("empty column label: %w", ErrInvalidColumnReference)
	}
	index := 0
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("column label '%s': %w", r.label, ErrInvalidColumnReference)
		}
		if index > (math.MaxInt32-26)/26 {
			return 0, fmt.Errorf("column label '%s' out of range: %w", r.label, ErrInvalidColumnReference)
		}
		index = index*26 + int(c-'A'+1)
	}
	return index - 1, nil
}

func (r ColumnRef) String() string {
	if r.letter {
		return r.label
	}
	return strconv.Itoa(r.index)
}

// Label returns the letter label of the column, or the raw reference when it
// does not resolve.
func (r ColumnRef) Label() string {
	i, err := r.Resolve()
	if err != nil {
		return r.String()
	}
	return tabular.ColumnLabel(i)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// UnmarshalText lets a ColumnRef be read from flags and config files.
func (r *ColumnRef) UnmarshalText(text []byte) error {
	ref, err := ParseColumnRef(string(text))
	if err != nil {
		return err
	}
	*r = ref
	return nil
}

func (r ColumnRef) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
