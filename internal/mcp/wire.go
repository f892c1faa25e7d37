//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/internal/session"
	"github.com/honeycarbs/jobboard/internal/source"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, func(), error) {
	wire.Build(
		// Job source - Neo4j graph or JSON feed
		source.New,

		// Sessions
		provideBrowserFactory,
		session.NewRegistry,

		// Export
		provideSheetsExporter,

		newResources,
	)

	return nil, nil, nil
}
