// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package tablediff

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/antgroup/tabdiff/modules/tabular"
)

// OpType classifies one aligned row.
type OpType int8

const (
	// Keep: the row is present on both sides with equal content.
	Keep OpType = iota
	// Modify: the rows at this position differ, see the cell diffs.
	Modify
	// Add: the row exists only in the modified table.
	Add
	// Delete: the row exists only in the original table.
	Delete
)

// NoIndex marks the side an operation does not refer to.
const NoIndex = -1

var (
	opTypeNameMap = map[OpType]string{
		Keep:   "KEEP",
		Modify: "MODIFY",
		Add:    "ADD",
		Delete: "DELETE",
	}
)

func (t OpType) String() string {
	if n, ok := opTypeNameMap[t]; ok {
		return n
	}
	return "UNKNOWN"
}

func (t OpType) MarshalText() ([]byte, error) {
	if _, ok := opTypeNameMap[t]; !ok {
		return nil, fmt.Errorf("unknown operation type %d", t)
	}
	return []byte(t.String()), nil
}

func (t *OpType) UnmarshalText(text []byte) error {
	for k, v := range opTypeNameMap {
		if strings.EqualFold(v, string(text)) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown operation type '%s'", text)
}

// Operation is one step of the alignment. Original and Modified are 0-based
// row indices, NoIndex when the operation has no row on that side. In JSON
// an absent side is null.
type Operation struct {
	Type     OpType
	Original int
	Modified int
}

type operationJSON struct {
	Type     OpType `json:"type"`
	Original *int   `json:"originalIndex"`
	Modified *int   `json:"modifiedIndex"`
}

// optionalIndex maps NoIndex to nil.
func optionalIndex(i int) *int {
	if i == NoIndex {
		return nil
	}
	return &i
}

func indexOrNone(p *int) int {
	if p == nil {
		return NoIndex
	}
	return *p
}

func (o Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal(&operationJSON{
		Type:     o.Type,
		Original: optionalIndex(o.Original),
		Modified: optionalIndex(o.Modified),
	})
}

func (o *Operation) UnmarshalJSON(b []byte) error {
	var v operationJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Operation{Type: v.Type, Original: indexOrNone(v.Original), Modified: indexOrNone(v.Modified)}
	return nil
}

func (o Operation) HasOriginal() bool {
	return o.Original != NoIndex
}

func (o Operation) HasModified() bool {
	return o.Modified != NoIndex
}

func (o Operation) String() string {
	switch o.Type {
	case Add:
		return fmt.Sprintf("%s(%d)", o.Type, o.Modified)
	case Delete:
		return fmt.Sprintf("%s(%d)", o.Type, o.Original)
	}
	return fmt.Sprintf("%s(%d,%d)", o.Type, o.Original, o.Modified)
}

// Options control row comparison.
type Options struct {
	IgnoreCase       bool `json:"ignoreCase"`
	IgnoreWhitespace bool `json:"ignoreWhitespace"`
	NullAsEmpty      bool `json:"nullAsEmpty"`
}

// DefaultOptions enables every normalization rule.
func DefaultOptions() Options {
	return Options{IgnoreCase: true, IgnoreWhitespace: true, NullAsEmpty: true}
}

func (o Options) normalizer() *tabular.Normalizer {
	return tabular.NewNormalizer(tabular.NormalizeOptions{
		IgnoreCase:       o.IgnoreCase,
		IgnoreWhitespace: o.IgnoreWhitespace,
		NullAsEmpty:      o.NullAsEmpty,
	})
}

// Result is the outcome of Compare.
type Result struct {
	Operations []Operation `json:"operations"`
	View       []ViewRow   `json:"view"`
}

// Compare aligns the rows of original and modified and builds the view.
// Neither table is modified.
func Compare(original, modified tabular.Table, opts Options) *Result {
	n := opts.normalizer()
	h := tabular.NewHasher(n)
	ops := Align(h.HashTable(original), h.HashTable(modified))
	return &Result{
		Operations: ops,
		View:       BuildView(ops, original, modified, n),
	}
}

// CompareValues is Compare over loosely typed tables. Both inputs are
// validated before any alignment work; a value that is not a sequence of
// rows yields tabular.ErrInvalidInput.
func CompareValues(original, modified any, opts Options) (*Result, error) {
	a, err := tabular.FromValues(original)
	if err != nil {
		return nil, fmt.Errorf("original table: %w", err)
	}
	b, err := tabular.FromValues(modified)
	if err != nil {
		return nil, fmt.Errorf("modified table: %w", err)
	}
	return Compare(a, b, opts), nil
}
