// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package chardet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	ErrUnknownCharset = errors.New("unknown charset")
)

// common aliases that spreadsheet exports use and the IANA index lacks or
// spells differently
var encodings = map[string]encoding.Encoding{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-8i":  charmap.ISO8859_8I,
	"cp1250":       charmap.Windows1250,
	"cp1251":       charmap.Windows1251,
	"cp1252":       charmap.Windows1252,
	"windows-874":  charmap.Windows874,
	"gbk":          simplifiedchinese.GBK,
	"cp936":        simplifiedchinese.GBK,
	"gb18030":      simplifiedchinese.GB18030,
	"big5":         traditionalchinese.Big5,
	"euc-jp":       japanese.EUCJP,
	"iso-2022-jp":  japanese.ISO2022JP,
	"shift_jis":    japanese.ShiftJIS,
	"sjis":         japanese.ShiftJIS,
	"cp932":        japanese.ShiftJIS,
	"euc-kr":       korean.EUCKR,
	"cp949":        korean.EUCKR,
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16":       unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM),
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
	"windows-1252": charmap.Windows1252,
}

// Lookup resolves a charset label. An empty label selects UTF-8.
func Lookup(charset string) (encoding.Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" {
		return unicode.UTF8, nil
	}
	if e, ok := encodings[name]; ok {
		return e, nil
	}
	e, err := ianaindex.IANA.Encoding(name)
	if err != nil || e == nil {
		return nil, fmt.Errorf("charset '%s': %w", charset, ErrUnknownCharset)
	}
	return e, nil
}

// NewReader converts text in charset to UTF-8. A leading byte order mark
// always wins over charset and is dropped.
func NewReader(r io.Reader, charset string) (io.Reader, error) {
	e, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, unicode.BOMOverride(e.NewDecoder())), nil
}

// NewWriter converts UTF-8 text written to it into charset.
func NewWriter(w io.Writer, charset string) (io.Writer, error) {
	e, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	return e.NewEncoder().Writer(w), nil
}

// DecodeFromCharset decodes input to UTF-8.
func DecodeFromCharset(input []byte, charset string) ([]byte, error) {
	e, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	b, _, err := transform.Bytes(unicode.BOMOverride(e.NewDecoder()), input)
	return b, err
}

// EncodeToCharset encodes UTF-8 input to charset.
func EncodeToCharset(input []byte, charset string) ([]byte, error) {
	e, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	return e.NewEncoder().Bytes(input)
}
