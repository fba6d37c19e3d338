// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package tabular

// ColumnLabel returns the spreadsheet label of a 0-based column index:
// 0 is "A", 25 is "Z", 26 is "AA". Negative indices yield "".
func ColumnLabel(index int) string {
	var buf [16]byte
	pos := len(buf)
	for index >= 0 {
		pos--
		buf[pos] = byte('A' + index%26)
		index = index/26 - 1
	}
	return string(buf[pos:])
}
