// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package intersect

import (
	"fmt"
	"slices"
	"strings"

	"github.com/antgroup/tabdiff/modules/tabular"
)

// Status tells whether a row's key value occurs in both tables.
type Status int8

const (
	// Diff: the key is present in one table only, or is an ignored empty key.
	Diff Status = iota
	// Same: the key is present in both tables.
	Same
)

func (s Status) String() string {
	if s == Same {
		return "SAME"
	}
	return "DIFF"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "SAME":
		*s = Same
	case "DIFF":
		*s = Diff
	default:
		return fmt.Errorf("unknown status '%s'", text)
	}
	return nil
}

// Options control how column values are matched.
type Options struct {
	IgnoreCase       bool `json:"ignoreCase"`
	IgnoreWhitespace bool `json:"ignoreWhitespace"`
	IgnoreEmpty      bool `json:"ignoreEmpty"` // empty keys never match
}

// DefaultOptions enables every option.
func DefaultOptions() Options {
	return Options{IgnoreCase: true, IgnoreWhitespace: true, IgnoreEmpty: true}
}

func (o Options) normalizer() *tabular.Normalizer {
	return tabular.NewNormalizer(tabular.NormalizeOptions{
		IgnoreCase:       o.IgnoreCase,
		IgnoreWhitespace: o.IgnoreWhitespace,
		NullAsEmpty:      true,
	})
}

// Classification is the verdict for one row of either table.
type Classification struct {
	RowIndex int         `json:"rowIndex"`
	Key      string      `json:"key"`
	Status   Status      `json:"status"`
	Data     tabular.Row `json:"data"`
}

// Stats summarizes a comparison.
type Stats struct {
	CommonKeys int `json:"commonKeys"` // distinct keys present in both tables
	TotalA     int `json:"totalA"`
	TotalB     int `json:"totalB"`
}

// Result holds the classifications of both tables in row order.
type Result struct {
	A     []Classification `json:"tableA"`
	B     []Classification `json:"tableB"`
	Stats Stats            `json:"stats"`
}

// Count returns how many classifications of side have status s.
func Count(side []Classification, s Status) int {
	n := 0
	for _, c := range side {
		if c.Status == s {
			n++
		}
	}
	return n
}

// Compare classifies every row of a and b by the value in column colA of a
// and colB of b. A key is SAME when its normalized text occurs in the chosen
// column of both tables, regardless of row order or multiplicity. Cells past
// the end of a row count as empty.
func Compare(a tabular.Table, colA ColumnRef, b tabular.Table, colB ColumnRef, opts Options) (*Result, error) {
	idxA, err := colA.Resolve()
	if err != nil {
		return nil, fmt.Errorf("table A: %w", err)
	}
	idxB, err := colB.Resolve()
	if err != nil {
		return nil, fmt.Errorf("table B: %w", err)
	}
	n := opts.normalizer()
	keysA := extractKeys(a, idxA, n)
	keysB := extractKeys(b, idxB, n)

	setB := keySet(keysB, opts.IgnoreEmpty)
	common := make(map[string]struct{})
	for k := range keySet(keysA, opts.IgnoreEmpty) {
		if _, ok := setB[k]; ok {
			common[k] = struct{}{}
		}
	}
	return &Result{
		A: classify(a, keysA, common, opts.IgnoreEmpty),
		B: classify(b, keysB, common, opts.IgnoreEmpty),
		Stats: Stats{
			CommonKeys: len(common),
			TotalA:     len(a),
			TotalB:     len(b),
		},
	}, nil
}

// CompareValues is Compare over loosely typed tables such as decoded JSON.
func CompareValues(a any, colA ColumnRef, b any, colB ColumnRef, opts Options) (*Result, error) {
	ta, err := tabular.FromValues(a)
	if err != nil {
		return nil, fmt.Errorf("table A: %w", err)
	}
	tb, err := tabular.FromValues(b)
	if err != nil {
		return nil, fmt.Errorf("table B: %w", err)
	}
	return Compare(ta, colA, tb, colB, opts)
}

func extractKeys(t tabular.Table, col int, n *tabular.Normalizer) []string {
	keys := make([]string, len(t))
	for i, row := range t {
		keys[i] = n.Normalize(row.At(col)).Text
	}
	return keys
}

func keySet(keys []string, ignoreEmpty bool) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if ignoreEmpty && k == "" {
			continue
		}
		set[k] = struct{}{}
	}
	return set
}

func classify(t tabular.Table, keys []string, common map[string]struct{}, ignoreEmpty bool) []Classification {
	out := make([]Classification, len(t))
	for i, k := range keys {
		status := Diff
		if _, ok := common[k]; ok && !(ignoreEmpty && k == "") {
			status = Same
		}
		out[i] = Classification{
			RowIndex: i,
			Key:      k,
			Status:   status,
			Data:     slices.Clone(t[i]),
		}
	}
	return out
}
