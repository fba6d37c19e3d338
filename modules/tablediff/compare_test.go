package tablediff

import (
	"encoding/json"
	"testing"

	"github.com/antgroup/tabdiff/modules/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(rows ...[]any) tabular.Table {
	t := make(tabular.Table, len(rows))
	for i, r := range rows {
		row := make(tabular.Row, len(r))
		for j, v := range r {
			c, err := tabular.CellFromValue(v)
			if err != nil {
				panic(err)
			}
			row[j] = c
		}
		t[i] = row
	}
	return t
}

func modifiedFlags(diffs []CellDiff) []bool {
	flags := make([]bool, len(diffs))
	for i, d := range diffs {
		flags[i] = d.Modified
	}
	return flags
}

func TestCompareIdentity(t *testing.T) {
	tables := []tabular.Table{
		nil,
		table([]any{1, "x"}, []any{2, "y"}),
		table([]any{"dup"}, []any{"dup"}, []any{nil}, []any{}, []any{"dup"}),
		table([]any{1.5, true, nil, " a "}, []any{}, []any{"b", "c"}),
	}
	for _, tbl := range tables {
		for _, opts := range []Options{{}, DefaultOptions()} {
			res := Compare(tbl, tbl, opts)
			require.Len(t, res.Operations, len(tbl))
			for i, op := range res.Operations {
				assert.Equal(t, keep(i, i), op)
				assert.Nil(t, res.View[i].CellDiffs)
			}
		}
	}
}

func TestCompareSingleRowEdit(t *testing.T) {
	a := table([]any{1, "x"}, []any{2, "y"}, []any{3, "z"})
	b := table([]any{1, "x"}, []any{2, "Y"}, []any{3, "z"})
	res := Compare(a, b, Options{IgnoreCase: false})
	require.Equal(t, []Operation{keep(0, 0), modify(1, 1), keep(2, 2)}, res.Operations)
	row := res.View[1]
	assert.Equal(t, Modify, row.Type)
	assert.Equal(t, []bool{false, true}, modifiedFlags(row.CellDiffs))
	require.NotNil(t, row.CellDiffs[1].Original)
	assert.Equal(t, tabular.String("y"), *row.CellDiffs[1].Original)
	assert.Nil(t, row.CellDiffs[0].Original)

	// folded case makes the rows equal
	res = Compare(a, b, Options{IgnoreCase: true})
	assert.Equal(t, []Operation{keep(0, 0), keep(1, 1), keep(2, 2)}, res.Operations)
}

func TestCompareDeletion(t *testing.T) {
	res := Compare(table([]any{1}, []any{2}, []any{3}), table([]any{1}, []any{3}), DefaultOptions())
	assert.Equal(t, []Operation{keep(0, 0), del(1), keep(2, 1)}, res.Operations)
	v := res.View[1]
	assert.Equal(t, Side{LineNo: 2, Data: tabular.Row{tabular.Number(2)}}, v.Original)
	assert.Equal(t, Side{}, v.Modified)
	assert.False(t, v.Modified.Present())
}

func TestCompareInsertion(t *testing.T) {
	res := Compare(table([]any{1}, []any{2}), table([]any{1}, []any{1.5}, []any{2}), DefaultOptions())
	assert.Equal(t, []Operation{keep(0, 0), add(1), keep(1, 2)}, res.Operations)
	v := res.View[1]
	assert.Equal(t, Side{}, v.Original)
	assert.Equal(t, 2, v.Modified.LineNo)
	assert.Equal(t, 3, res.View[2].Modified.LineNo)
	assert.Equal(t, 2, res.View[2].Original.LineNo)
}

func TestCellDiffsRaggedRows(t *testing.T) {
	n := tabular.NewNormalizer(tabular.NormalizeOptions{})
	a := tabular.Row{tabular.String("a"), tabular.String("b")}
	b := tabular.Row{tabular.String("a")}
	diffs := CellDiffs(a, b, n)
	assert.Equal(t, []bool{false, true}, modifiedFlags(diffs))
	require.NotNil(t, diffs[1].Original)
	assert.Equal(t, tabular.String("b"), *diffs[1].Original)

	// a column that appears only in the modified row has no original value
	diffs = CellDiffs(b, a, n)
	assert.Equal(t, []bool{false, true}, modifiedFlags(diffs))
	assert.Nil(t, diffs[1].Original)
}

func TestCellDiffsNormalization(t *testing.T) {
	a := tabular.Row{tabular.String(" Apple "), tabular.Empty(), tabular.Number(1)}
	b := tabular.Row{tabular.String("apple"), tabular.String(""), tabular.String("1")}
	n := tabular.NewNormalizer(tabular.NormalizeOptions{IgnoreCase: true, IgnoreWhitespace: true, NullAsEmpty: true})
	assert.Equal(t, []bool{false, false, false}, modifiedFlags(CellDiffs(a, b, n)))
	n = tabular.NewNormalizer(tabular.NormalizeOptions{})
	assert.Equal(t, []bool{true, true, false}, modifiedFlags(CellDiffs(a, b, n)))
}

func TestCompareNullHandling(t *testing.T) {
	a := table([]any{"k", nil})
	b := table([]any{"k", ""})
	assert.Equal(t, Keep, Compare(a, b, Options{NullAsEmpty: true}).Operations[0].Type)
	res := Compare(a, b, Options{NullAsEmpty: false})
	assert.Equal(t, Modify, res.Operations[0].Type)
	assert.Equal(t, []bool{false, true}, modifiedFlags(res.View[0].CellDiffs))
}

func TestCompareNoMutation(t *testing.T) {
	a := table([]any{1, " X "}, []any{2, nil}, []any{}, []any{3, "z", true})
	b := table([]any{1, "x"}, []any{9}, []any{3, "Z", true}, []any{4})
	snapA, snapB := a.Clone(), b.Clone()
	_ = Compare(a, b, DefaultOptions())
	_ = Compare(a, b, Options{})
	assert.Equal(t, snapA, a)
	assert.Equal(t, snapB, b)
}

func TestCompareViewMatchesOperations(t *testing.T) {
	a := table([]any{"a"}, []any{"b"}, []any{"c"}, []any{"d"})
	b := table([]any{"a"}, []any{"x"}, []any{"c"}, []any{"e"}, []any{"f"})
	res := Compare(a, b, DefaultOptions())
	require.Len(t, res.View, len(res.Operations))
	for i, op := range res.Operations {
		v := res.View[i]
		assert.Equal(t, op.Type, v.Type)
		if op.HasOriginal() {
			assert.Equal(t, op.Original+1, v.Original.LineNo)
			assert.Equal(t, a[op.Original], v.Original.Data)
		}
		if op.HasModified() {
			assert.Equal(t, op.Modified+1, v.Modified.LineNo)
			assert.Equal(t, b[op.Modified], v.Modified.Data)
		}
		assert.Equal(t, op.Type == Modify, v.CellDiffs != nil)
	}
	assert.Equal(t, Summary{Additions: 1, Modifications: 2, Unchanged: 2}, Summarize(res.Operations))
}

func TestCompareValues(t *testing.T) {
	var a, b any
	require.NoError(t, json.Unmarshal([]byte(`[[1,"x"],[2,"y"]]`), &a))
	require.NoError(t, json.Unmarshal([]byte(`[[1,"x"],[2,"z"]]`), &b))
	res, err := CompareValues(a, b, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []Operation{keep(0, 0), modify(1, 1)}, res.Operations)

	_, err = CompareValues("not a table", b, DefaultOptions())
	assert.ErrorIs(t, err, tabular.ErrInvalidInput)
	_, err = CompareValues(a, map[string]any{}, DefaultOptions())
	assert.ErrorIs(t, err, tabular.ErrInvalidInput)
}

func TestResultJSON(t *testing.T) {
	res := Compare(table([]any{1, "y"}), table([]any{1, "z"}, []any{2}), Options{})
	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"operations": [
			{"type": "MODIFY", "originalIndex": 0, "modifiedIndex": 0},
			{"type": "ADD", "originalIndex": null, "modifiedIndex": 1}
		],
		"view": [
			{
				"type": "MODIFY",
				"original": {"lineNo": 1, "data": [1, "y"]},
				"modified": {"lineNo": 1, "data": [1, "z"]},
				"cellDiffs": [{"isModified": false}, {"isModified": true, "originalValue": "y"}]
			},
			{
				"type": "ADD",
				"original": {"lineNo": null, "data": null},
				"modified": {"lineNo": 2, "data": [2]}
			}
		]
	}`, string(data))
}

func TestResultJSONRoundTrip(t *testing.T) {
	res := Compare(table([]any{1}, []any{3}), table([]any{1}, []any{2}, []any{4}), Options{})
	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "-1")
	assert.NotContains(t, string(data), `"lineNo":0`)

	var back Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, res.Operations, back.Operations)
	for i, r := range back.View {
		assert.Equal(t, res.View[i].Original.LineNo, r.Original.LineNo)
		assert.Equal(t, res.View[i].Modified.LineNo, r.Modified.LineNo)
		assert.Equal(t, res.View[i].Original.Present(), r.Original.Present())
	}
}

func TestOpTypeText(t *testing.T) {
	for _, typ := range []OpType{Keep, Modify, Add, Delete} {
		b, err := typ.MarshalText()
		require.NoError(t, err)
		var back OpType
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, typ, back)
	}
	var bad OpType
	assert.Error(t, bad.UnmarshalText([]byte("MOVE")))
	assert.Equal(t, "DELETE(3)", del(3).String())
	assert.Equal(t, "KEEP(1,2)", keep(1, 2).String())
}
