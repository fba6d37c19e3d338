// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeOptions control how cells are canonicalized before comparison.
type NormalizeOptions struct {
	IgnoreCase       bool // fold to lower case
	IgnoreWhitespace bool // trim leading and trailing whitespace, inner whitespace is kept
	NullAsEmpty      bool // Empty cells normalize to "" instead of the null key
}

// Key is the normalized form of a cell. The null key equals only other null keys.
type Key struct {
	Text string
	Null bool
}

// NullKey is the key of an Empty cell when NullAsEmpty is off.
var NullKey = Key{Null: true}

func (k Key) String() string {
	if k.Null {
		return "<null>"
	}
	return k.Text
}

// Normalizer maps cells to keys. It carries a case folder and is not safe
// for concurrent use; create one per comparison.
type Normalizer struct {
	opts  NormalizeOptions
	lower cases.Caser
}

func NewNormalizer(opts NormalizeOptions) *Normalizer {
	n := &Normalizer{opts: opts}
	if opts.IgnoreCase {
		n.lower = cases.Lower(language.Und)
	}
	return n
}

func (n *Normalizer) Options() NormalizeOptions {
	return n.opts
}

// Normalize returns the comparison key of c.
func (n *Normalizer) Normalize(c Cell) Key {
	if c.IsEmpty() {
		if n.opts.NullAsEmpty {
			return Key{}
		}
		return NullKey
	}
	return Key{Text: n.NormalizeText(c.Text())}
}

// NormalizeText applies the whitespace and case rules to s.
func (n *Normalizer) NormalizeText(s string) string {
	if n.opts.IgnoreWhitespace {
		s = strings.TrimSpace(s)
	}
	if n.opts.IgnoreCase {
		s = n.lower.String(s)
	}
	return s
}
