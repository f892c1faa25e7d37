package mcp

import (
	"context"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/mcp/tools"
	"github.com/honeycarbs/jobboard/internal/session"
	"github.com/honeycarbs/jobboard/pkg/logging"
	sheetsclient "github.com/honeycarbs/jobboard/pkg/sheets"
)

// Resources holds the dependencies the MCP tools are built from
type Resources struct {
	Sessions   *session.Registry
	Exporter   tools.SheetsExporter
	SourceName string
}

func newResources(sessions *session.Registry, exporter tools.SheetsExporter, source job.Source) *Resources {
	return &Resources{
		Sessions:   sessions,
		Exporter:   exporter,
		SourceName: source.Name(),
	}
}

// provideBrowserFactory gives every session its own browser over the shared source
func provideBrowserFactory(source job.Source, cfg config.Config, logger *logging.Logger) session.Factory {
	return func(p job.Presenter) (*job.Browser, error) {
		return job.NewBrowser(
			job.WithSource(source),
			job.WithPresenter(p),
			job.WithPageSize(cfg.Jobs.PageSize),
			job.WithLogger(logger),
		)
	}
}

// provideSheetsExporter falls back to an unconfigured exporter when credentials are missing,
// so the rest of the server still starts
func provideSheetsExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) tools.SheetsExporter {
	if cfg.Sheets.CredentialsPath == "" {
		logger.Info("Google Sheets export disabled", "reason", "GOOGLE_SHEETS_CREDENTIALS_PATH not set")
		return &sheetsExporter{}
	}

	client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		logger.Warn("failed to initialize Google Sheets client", "err", err)
		return &sheetsExporter{}
	}

	logger.Info("Google Sheets client initialized")
	return &sheetsExporter{client: client}
}
