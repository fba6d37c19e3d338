// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint summarizes a normalized row. Equal key sequences always
// produce equal fingerprints.
type Fingerprint uint64

const (
	tagNull byte = 0x00
	tagText byte = 0x01
)

// Hasher computes row fingerprints.
//
// Every key is encoded as a tag byte, the uvarint byte length of its text and
// the text itself. The encoding is prefix free, so no cell content can be
// mistaken for a column boundary and shifted cells never collide by
// construction. The cost is linear in the total text length of the row.
type Hasher struct {
	n      *Normalizer
	digest *xxhash.Digest
	buf    [binary.MaxVarintLen64 + 1]byte
}

func NewHasher(n *Normalizer) *Hasher {
	return &Hasher{n: n, digest: xxhash.New()}
}

// HashRow returns the fingerprint of row. An empty row hashes to xxhash of
// no bytes.
func (h *Hasher) HashRow(row Row) Fingerprint {
	h.digest.Reset()
	for _, c := range row {
		h.writeKey(h.n.Normalize(c))
	}
	return Fingerprint(h.digest.Sum64())
}

func (h *Hasher) writeKey(k Key) {
	if k.Null {
		h.buf[0] = tagNull
		_, _ = h.digest.Write(h.buf[:1])
		return
	}
	h.buf[0] = tagText
	n := binary.PutUvarint(h.buf[1:], uint64(len(k.Text)))
	_, _ = h.digest.Write(h.buf[:n+1])
	_, _ = h.digest.WriteString(k.Text)
}

// HashTable fingerprints every row of t in order.
func (h *Hasher) HashTable(t Table) []Fingerprint {
	hashes := make([]Fingerprint, len(t))
	for i, row := range t {
		hashes[i] = h.HashRow(row)
	}
	return hashes
}
