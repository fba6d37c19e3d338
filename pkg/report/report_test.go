package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/antgroup/tabdiff/modules/intersect"
	"github.com/antgroup/tabdiff/modules/tablediff"
	"github.com/antgroup/tabdiff/pkg/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, name, content string) *sheet.Sheet {
	t.Helper()
	s, err := sheet.Read(context.Background(), strings.NewReader(content), name, nil)
	require.NoError(t, err)
	return s
}

func TestRowsDocument(t *testing.T) {
	a := load(t, "a.csv", "id,name\n1,x\n2,y\n3,z\n4,w\n")
	b := load(t, "b.csv", "id,name\n1,x\n2,Y2\n3,z\n4,w\n")
	opts := tablediff.DefaultOptions()
	res := tablediff.Compare(a.Table, b.Table, opts)

	doc := NewRows(a, b, opts, res, 2)
	assert.Equal(t, "rows", doc.Kind)
	assert.Len(t, doc.Inputs, 2)
	assert.Equal(t, tablediff.Summary{Modifications: 1, Unchanged: 4}, doc.Summary)
	assert.Len(t, doc.Operations, 5)
	assert.Len(t, doc.View, 2)
	assert.Equal(t, 3, doc.Omitted)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "rows", m["kind"])
	assert.Contains(t, m, "generator")
	assert.Contains(t, m, "summary")
	inputs := m["inputs"].([]any)
	assert.Equal(t, a.Info.Digest, inputs[0].(map[string]any)["blake3"])
	opt := m["options"].(map[string]any)
	assert.Equal(t, true, opt["nullAsEmpty"])
}

func TestColumnsDocument(t *testing.T) {
	a := load(t, "a.csv", "k\nApple\npear\n")
	b := load(t, "b.tsv", "x\tapple\n")
	opts := intersect.DefaultOptions()
	res, err := intersect.Compare(a.Table, intersect.Index(0), b.Table, intersect.Letter("b"), opts)
	require.NoError(t, err)

	doc := NewColumns(a, intersect.Index(0), b, intersect.Letter("b"), opts, res)
	assert.Equal(t, [2]string{"A", "B"}, doc.Columns)
	assert.Equal(t, 1, doc.Stats.CommonKeys)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))
	assert.Contains(t, buf.String(), `"status": "SAME"`)
	assert.Contains(t, buf.String(), `"kind": "columns"`)
}
