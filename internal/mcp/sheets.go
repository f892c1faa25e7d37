package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/jobboard/internal/mcp/tools"
)

// valuesWriter is the subset of the Sheets client the exporter needs
type valuesWriter interface {
	AppendValues(ctx context.Context, spreadsheetID, cellRange string, values [][]any) error
	UpdateValues(ctx context.Context, spreadsheetID, cellRange string, values [][]any) error
	ClearValues(ctx context.Context, spreadsheetID, cellRange string) error
}

type sheetsExporter struct {
	client valuesWriter
	clock  func() time.Time
}

var _ tools.SheetsExporter = (*sheetsExporter)(nil)

func (e *sheetsExporter) Export(ctx context.Context, params tools.SheetsExportParams, rows []tools.SheetRow) (tools.SheetsExportResult, error) {
	if e.client == nil {
		return tools.SheetsExportResult{
			SpreadsheetID: params.Sheet.SpreadsheetID,
			Tab:           params.Sheet.Tab,
			Message:       "Google Sheets client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)",
		}, fmt.Errorf("sheets: client not configured")
	}

	clock := e.clock
	if clock == nil {
		clock = time.Now
	}

	result := tools.SheetsExportResult{
		SpreadsheetID: params.Sheet.SpreadsheetID,
		Tab:           params.Sheet.Tab,
		CompletedAt:   clock().UTC(),
	}

	if params.ClearTab {
		if err := e.client.ClearValues(ctx, params.Sheet.SpreadsheetID, buildClearRange(params.Sheet.Tab)); err != nil {
			return result, fmt.Errorf("sheets: failed to clear sheet: %w", err)
		}
	}

	if len(rows) == 0 {
		result.Message = "no rows to export"
		return result, nil
	}

	cellRange := buildRange(params)
	values := convertRowsToValues(rows)

	if params.Upsert {
		if err := e.client.UpdateValues(ctx, params.Sheet.SpreadsheetID, cellRange, values); err != nil {
			return result, fmt.Errorf("sheets: failed to upsert rows: %w", err)
		}
	} else {
		if err := e.client.AppendValues(ctx, params.Sheet.SpreadsheetID, cellRange, values); err != nil {
			return result, fmt.Errorf("sheets: failed to append rows: %w", err)
		}
	}

	result.WrittenRows = len(rows)
	result.Message = fmt.Sprintf("successfully exported %d row(s)", result.WrittenRows)

	return result, nil
}

func buildRange(params tools.SheetsExportParams) string {
	if params.Sheet.Range != "" {
		return params.Sheet.Range
	}

	tab := params.Sheet.Tab
	if tab == "" {
		tab = "Sheet1"
	}

	// row 1 is left for the header when rows are rewritten in place
	if params.Upsert {
		return fmt.Sprintf("%s!A2", tab)
	}
	return fmt.Sprintf("%s!A1", tab)
}

func buildClearRange(tab string) string {
	if tab == "" {
		tab = "Sheet1"
	}
	return fmt.Sprintf("%s!A2:Z", tab)
}

func convertRowsToValues(rows []tools.SheetRow) [][]any {
	values := make([][]any, len(rows))
	for i, row := range rows {
		applied := "no"
		if row.Applied {
			applied = "yes"
		}
		values[i] = []any{
			row.ID,
			row.Title,
			row.Company,
			row.Location,
			row.Technologies,
			row.Contract,
			row.Experience,
			applied,
		}
	}
	return values
}
