// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package tablediff

// Summary counts operations by type.
type Summary struct {
	Additions     int `json:"additions"`
	Deletions     int `json:"deletions"`
	Modifications int `json:"modifications"`
	Unchanged     int `json:"unchanged"`
}

func Summarize(ops []Operation) Summary {
	var s Summary
	for _, op := range ops {
		s.count(op.Type)
	}
	return s
}

func (s *Summary) count(t OpType) {
	switch t {
	case Add:
		s.Additions++
	case Delete:
		s.Deletions++
	case Modify:
		s.Modifications++
	default:
		s.Unchanged++
	}
}

func (s Summary) HasChanges() bool {
	return s.Additions+s.Deletions+s.Modifications != 0
}
