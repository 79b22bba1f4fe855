package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlgate/pkg/apperr"
	"sqlgate/pkg/server/store"
)

type fakeExecutionStore struct {
	rows    map[string][]map[string]interface{}
	queries []string
}

func (f *fakeExecutionStore) Exec(_ context.Context, _ string) error { return nil }

func (f *fakeExecutionStore) Query(_ context.Context, sql string, _ ...interface{}) ([]map[string]interface{}, error) {
	f.queries = append(f.queries, sql)
	rows, ok := f.rows[sql]
	if !ok {
		return nil, apperr.New(apperr.KindTableNotFound, "Table not found")
	}
	return rows, nil
}

func (f *fakeExecutionStore) Tables(_ context.Context) ([]string, error) { return nil, nil }

func (f *fakeExecutionStore) Columns(_ context.Context, _ string) ([]store.Column, error) {
	return nil, nil
}

const summaryTemplate = `# Order summary

{{range .Rows}}- {{.xname}}: {{.total}}
{{end}}`

func newGenerator(t *testing.T, exec store.ExecutionStore) (*Generator, string) {
	t.Helper()
	templateDir := t.TempDir()
	outputDir := t.TempDir()
	err := os.WriteFile(filepath.Join(templateDir, "summary"+TemplateExt), []byte(summaryTemplate), 0o644)
	require.NoError(t, err)
	return NewGenerator(exec, templateDir, outputDir), outputDir
}

func TestGenerateMarkdown(t *testing.T) {
	exec := &fakeExecutionStore{rows: map[string][]map[string]interface{}{
		"select xname, total from tb_orders": {
			{"xname": "first", "total": int64(10)},
			{"xname": "second", "total": int64(20)},
		},
	}}
	g, outputDir := newGenerator(t, exec)

	path, err := g.Generate(context.Background(), Request{
		Template: "summary",
		Output:   "summary.md",
		Query:    "select xname, total from tb_orders",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "summary.md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Order summary")
	assert.Contains(t, string(content), "- first: 10")
	assert.Contains(t, string(content), "- second: 20")
}

func TestGenerateHTML(t *testing.T) {
	exec := &fakeExecutionStore{rows: map[string][]map[string]interface{}{
		"select xname, total from tb_orders": {
			{"xname": "first", "total": int64(10)},
		},
	}}
	g, _ := newGenerator(t, exec)

	path, err := g.Generate(context.Background(), Request{
		Template: "summary",
		Output:   "summary.html",
		Query:    "select xname, total from tb_orders",
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<h1>Order summary</h1>")
	assert.Contains(t, string(content), "<li>first: 10</li>")
}

func TestGenerateDetailQuery(t *testing.T) {
	exec := &fakeExecutionStore{rows: map[string][]map[string]interface{}{
		"select 1": {{"n": int64(1)}},
		"select 2": {{"n": int64(2)}},
	}}
	g, _ := newGenerator(t, exec)

	_, err := g.Generate(context.Background(), Request{
		Template:    "summary",
		Output:      "out.md",
		Query:       "select 1",
		DetailQuery: "select 2",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"select 1", "select 2"}, exec.queries)
}

func TestGenerateUnknownTemplate(t *testing.T) {
	g, _ := newGenerator(t, &fakeExecutionStore{})

	_, err := g.Generate(context.Background(), Request{
		Template: "missing",
		Output:   "out.md",
		Query:    "select 1",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindTableNotFound))
}

func TestGenerateRejectsPathEscapes(t *testing.T) {
	g, _ := newGenerator(t, &fakeExecutionStore{})

	for _, name := range []string{"../etc/passwd", "a/b", ".hidden", ""} {
		_, err := g.Generate(context.Background(), Request{
			Template: name,
			Output:   "out.md",
			Query:    "select 1",
		})
		require.Error(t, err, name)
		assert.True(t, apperr.IsKind(err, apperr.KindWrongEndpoint), name)
	}
}

func TestGenerateQueryErrorPassesThrough(t *testing.T) {
	g, outputDir := newGenerator(t, &fakeExecutionStore{})

	_, err := g.Generate(context.Background(), Request{
		Template: "summary",
		Output:   "out.md",
		Query:    "select * from tb_missing",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindTableNotFound))

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no file should be written on failure")
}

func TestGenerateRequiresQuery(t *testing.T) {
	g, _ := newGenerator(t, &fakeExecutionStore{})

	_, err := g.Generate(context.Background(), Request{
		Template: "summary",
		Output:   "out.md",
		Query:    "   ",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindWrongEndpoint))
	if !strings.Contains(err.Error(), "query is required") {
		t.Errorf("unexpected error: %v", err)
	}
}
