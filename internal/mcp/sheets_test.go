package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobboard/internal/mcp/tools"
)

type writeCall struct {
	op     string
	sheet  string
	cells  string
	values [][]any
}

type fakeWriter struct {
	calls []writeCall
	err   error
}

func (f *fakeWriter) AppendValues(_ context.Context, id, cells string, values [][]any) error {
	f.calls = append(f.calls, writeCall{"append", id, cells, values})
	return f.err
}

func (f *fakeWriter) UpdateValues(_ context.Context, id, cells string, values [][]any) error {
	f.calls = append(f.calls, writeCall{"update", id, cells, values})
	return f.err
}

func (f *fakeWriter) ClearValues(_ context.Context, id, cells string) error {
	f.calls = append(f.calls, writeCall{"clear", id, cells, nil})
	return f.err
}

func exportParams() tools.SheetsExportParams {
	return tools.SheetsExportParams{Sheet: tools.SheetTarget{SpreadsheetID: "sheet-1", Tab: "Jobs"}}
}

func TestSheetsExporterAppends(t *testing.T) {
	w := &fakeWriter{}
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	e := &sheetsExporter{client: w, clock: func() time.Time { return now }}

	res, err := e.Export(context.Background(), exportParams(), []tools.SheetRow{
		{ID: 1, Title: "SRE", Company: "Acme", Technologies: "Go, Docker", Applied: true},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.WrittenRows)
	assert.Equal(t, now, res.CompletedAt)
	require.Len(t, w.calls, 1)
	assert.Equal(t, "append", w.calls[0].op)
	assert.Equal(t, "Jobs!A1", w.calls[0].cells)
	assert.Equal(t, []any{1, "SRE", "Acme", "", "Go, Docker", "", "", "yes"}, w.calls[0].values[0])
}

func TestSheetsExporterUpsertWithClear(t *testing.T) {
	w := &fakeWriter{}
	e := &sheetsExporter{client: w}

	params := exportParams()
	params.Upsert = true
	params.ClearTab = true

	_, err := e.Export(context.Background(), params, []tools.SheetRow{{ID: 1}, {ID: 2}})
	require.NoError(t, err)

	require.Len(t, w.calls, 2)
	assert.Equal(t, writeCall{op: "clear", sheet: "sheet-1", cells: "Jobs!A2:Z"}, w.calls[0])
	assert.Equal(t, "update", w.calls[1].op)
	assert.Equal(t, "Jobs!A2", w.calls[1].cells)
	assert.Len(t, w.calls[1].values, 2)
}

func TestSheetsExporterNoRows(t *testing.T) {
	w := &fakeWriter{}
	e := &sheetsExporter{client: w}

	res, err := e.Export(context.Background(), exportParams(), nil)
	require.NoError(t, err)
	assert.Equal(t, "no rows to export", res.Message)
	assert.Empty(t, w.calls)
}

func TestSheetsExporterErrors(t *testing.T) {
	_, err := (&sheetsExporter{}).Export(context.Background(), exportParams(), nil)
	assert.Error(t, err)

	boom := errors.New("quota exceeded")
	e := &sheetsExporter{client: &fakeWriter{err: boom}}
	_, err = e.Export(context.Background(), exportParams(), []tools.SheetRow{{ID: 1}})
	assert.ErrorIs(t, err, boom)
}

func TestBuildRangeDefaults(t *testing.T) {
	assert.Equal(t, "Sheet1!A1", buildRange(tools.SheetsExportParams{}))
	assert.Equal(t, "Sheet1!A2", buildRange(tools.SheetsExportParams{Upsert: true}))
	assert.Equal(t, "Other!C3", buildRange(tools.SheetsExportParams{Sheet: tools.SheetTarget{Range: "Other!C3"}}))
	assert.Equal(t, "Sheet1!A2:Z", buildClearRange(""))
}
