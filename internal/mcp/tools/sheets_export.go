package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/session"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// SheetsExporter writes job rows to a spreadsheet
type SheetsExporter interface {
	Export(ctx context.Context, params SheetsExportParams, rows []SheetRow) (SheetsExportResult, error)
}

// SheetTarget names the destination of an export
type SheetTarget struct {
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name, Sheet1 by default"`
	Range         string `json:"range,omitempty" jsonschema:"Explicit A1 range overriding the tab"`
}

// SheetsExportParams defines the arguments for the sheets_export tool
type SheetsExportParams struct {
	SessionID string      `json:"session_id" jsonschema:"Session whose current results are exported"`
	Sheet     SheetTarget `json:"sheet" jsonschema:"Destination sheet information"`
	ClearTab  bool        `json:"clear_tab,omitempty" jsonschema:"Clear existing rows below the header first"`
	Upsert    bool        `json:"upsert,omitempty" jsonschema:"Overwrite from row 2 instead of appending"`
}

// SheetRow is one exported job
type SheetRow struct {
	ID           int
	Title        string
	Company      string
	Location     string
	Technologies string
	Contract     string
	Experience   string
	Applied      bool
}

// SheetsExportResult is the structured response of sheets_export
type SheetsExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id"`
	Tab           string    `json:"tab,omitempty"`
	WrittenRows   int       `json:"written_rows"`
	CompletedAt   time.Time `json:"completed_at"`
	Message       string    `json:"message,omitempty"`
}

type sheetsExportTool struct {
	sessions *session.Registry
	exporter SheetsExporter
	logger   *logging.Logger
}

// WithSheetsExport registers the sheets_export tool
func WithSheetsExport(sessions *session.Registry, exporter SheetsExporter, logger *logging.Logger) Option {
	return func(reg *registry) {
		if err := RegisterExportTools(reg.server, sessions, exporter, logger); err != nil {
			nopIfNil(logger).Error("failed to register export tools", "err", err)
		}
	}
}

// RegisterExportTools adds the sheets_export tool to server; sessions is required
func RegisterExportTools(server *sdkmcp.Server, sessions *session.Registry, exporter SheetsExporter, logger *logging.Logger) error {
	if sessions == nil {
		return fmt.Errorf("export tools: session registry is required")
	}
	logger = nopIfNil(logger)

	handler := sheetsExportTool{sessions: sessions, exporter: exporter, logger: logger}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "sheets_export",
		Description: "Export every job of a session's current results to Google Sheets",
	}, handler.handle)
	return nil
}

func (t sheetsExportTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params SheetsExportParams) (*sdkmcp.CallToolResult, SheetsExportResult, error) {
	if t.exporter == nil {
		return nil, SheetsExportResult{}, fmt.Errorf("sheets exporter not configured")
	}
	if strings.TrimSpace(params.Sheet.SpreadsheetID) == "" {
		return nil, SheetsExportResult{}, fmt.Errorf("sheet.spreadsheet_id is required")
	}

	s, err := t.sessions.Get(params.SessionID)
	if err != nil {
		return nil, SheetsExportResult{}, err
	}

	var rows []SheetRow
	if _, err := s.Do(func(b *job.Browser) error {
		rows = sheetRows(b.Results(), b.Applied)
		return nil
	}); err != nil {
		return nil, SheetsExportResult{}, err
	}

	t.logger.Info("sheets_export request",
		"session_id", params.SessionID,
		"spreadsheet_id", params.Sheet.SpreadsheetID,
		"rows", len(rows),
	)

	result, err := t.exporter.Export(ctx, params, rows)
	if err != nil {
		t.logger.Error("sheets_export failed", "err", err)
		return nil, SheetsExportResult{}, fmt.Errorf("export failed: %w", err)
	}

	return textResult(fmt.Sprintf("[sheets_export] %s", result.Message)), result, nil
}

func sheetRows(jobs []domain.Job, applied func(domain.JobID) bool) []SheetRow {
	rows := make([]SheetRow, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, SheetRow{
			ID:           j.ID,
			Title:        j.Title,
			Company:      j.Company,
			Location:     j.Location,
			Technologies: strings.Join(j.Technologies, ", "),
			Contract:     j.Contract,
			Experience:   j.Experience,
			Applied:      applied(j.ID),
		})
	}
	return rows
}
