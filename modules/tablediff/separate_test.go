package tablediff

import (
	"testing"

	"github.com/antgroup/tabdiff/modules/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeparate(t *testing.T) {
	a := table([]any{"a", 1}, []any{"b", 2}, []any{"c", 3})
	b := table([]any{"a", 1}, []any{"b", 5}, []any{"d", 4, "x"})
	res := Compare(a, b, DefaultOptions())
	// a keeps, b modifies, c/d has no anchor and modifies too
	p := Separate(res.View, 0)
	require.Len(t, p.Left, 3)
	assert.Equal(t, 3, p.Columns)
	assert.Equal(t, []int{1, 2, 3}, p.LeftLines)
	assert.Equal(t, []int{1, 2, 3}, p.RightLines)
	assert.Equal(t, []OpType{Keep, Modify, Modify}, p.Types)
	assert.Equal(t, []bool{false, false, false}, p.CellChanges[0])
	assert.Equal(t, []bool{false, true}, p.CellChanges[1])
	assert.Equal(t, []bool{true, true, true}, p.CellChanges[2])
	assert.Equal(t, Summary{Modifications: 2, Unchanged: 1}, p.Statistics)
	assert.Zero(t, p.Omitted)
}

func TestSeparateFillers(t *testing.T) {
	res := Compare(table([]any{"a"}, []any{"gone"}), table([]any{"a"}, []any{"new", "wide"}), DefaultOptions())
	// gone/new share no anchor: positional MODIFY
	assert.Equal(t, []OpType{Keep, Modify}, Separate(res.View, 0).Types)

	res = Compare(table([]any{"a"}, []any{"gone"}), table([]any{"a"}), DefaultOptions())
	p := Separate(res.View, 0)
	assert.Equal(t, []OpType{Keep, Delete}, p.Types)
	assert.Equal(t, make(tabular.Row, 1), p.Right[1])
	assert.Equal(t, 0, p.RightLines[1])
	assert.Equal(t, tabular.Row{tabular.String("gone")}, p.Left[1])
}

func TestSeparateDefaultColumns(t *testing.T) {
	p := Separate(nil, 0)
	assert.Equal(t, DefaultPaneColumns, p.Columns)
	assert.Empty(t, p.Left)
}

func TestSeparateMaxRows(t *testing.T) {
	var a, b tabular.Table
	for i := range 10 {
		a = append(a, tabular.Row{tabular.Number(float64(i))})
		b = append(b, tabular.Row{tabular.Number(float64(i))})
	}
	// one modification at row 8 and one addition at the end
	b[8] = tabular.Row{tabular.String("changed")}
	b = append(b, tabular.Row{tabular.String("added")})
	res := Compare(a, b, DefaultOptions())
	p := Separate(res.View, 4)
	require.Len(t, p.Rows, 4)
	assert.Equal(t, []OpType{Keep, Keep, Modify, Add}, p.Types)
	assert.Equal(t, []int{1, 2, 9, 0}, p.LeftLines)
	assert.Equal(t, 11, p.TotalRows)
	assert.Equal(t, 7, p.Omitted)

	// changed rows are never dropped, even past the limit
	p = Separate(res.View, 1)
	assert.Equal(t, []OpType{Modify, Add}, p.Types)
}
