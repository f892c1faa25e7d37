package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/session"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// OpenParams defines the arguments for the browse_open tool
type OpenParams struct{}

// SessionParams identifies a browsing session
type SessionParams struct {
	SessionID string `json:"session_id" jsonschema:"Session identifier returned by browse_open"`
}

// FacetApplyParams defines the arguments for the browse_facet_apply tool
type FacetApplyParams struct {
	SessionID string   `json:"session_id" jsonschema:"Session identifier returned by browse_open"`
	Category  string   `json:"category" jsonschema:"Facet: technologies, locations, contracts or experiences"`
	Values    []string `json:"values,omitempty" jsonschema:"Selected values; an empty list clears the facet"`
}

// FacetClearParams defines the arguments for the browse_facet_clear tool
type FacetClearParams struct {
	SessionID string `json:"session_id" jsonschema:"Session identifier returned by browse_open"`
	Category  string `json:"category" jsonschema:"Facet: technologies, locations, contracts or experiences"`
}

// SearchParams defines the arguments for the browse_search tool
type SearchParams struct {
	SessionID string `json:"session_id" jsonschema:"Session identifier returned by browse_open"`
	Query     string `json:"query,omitempty" jsonschema:"Free text matched against title, company, description and technologies"`
}

// PageParams defines the arguments for the browse_page tool
type PageParams struct {
	SessionID string `json:"session_id" jsonschema:"Session identifier returned by browse_open"`
	Page      int    `json:"page" jsonschema:"1-based page number"`
}

// FacetOptionsParams defines the arguments for the browse_facet_options tool
type FacetOptionsParams struct {
	SessionID string `json:"session_id" jsonschema:"Session identifier returned by browse_open"`
	Category  string `json:"category" jsonschema:"Facet: technologies, locations, contracts or experiences"`
	Filter    string `json:"filter,omitempty" jsonschema:"Optional case-insensitive substring narrowing the options"`
}

// ApplyParams defines the arguments for the browse_apply tool
type ApplyParams struct {
	SessionID string `json:"session_id" jsonschema:"Session identifier returned by browse_open"`
	JobID     int    `json:"job_id" jsonschema:"Identifier of the job to apply to"`
}

// PageClickResult reports whether navigation happened
type PageClickResult struct {
	Changed bool         `json:"changed"`
	Page    session.Page `json:"page"`
}

// FacetOptionsResult lists the values available for a facet
type FacetOptionsResult struct {
	Category string   `json:"category"`
	Options  []string `json:"options"`
}

// CloseResult confirms a closed session
type CloseResult struct {
	SessionID string `json:"session_id"`
	Closed    bool   `json:"closed"`
}

type browseTools struct {
	sessions *session.Registry
	logger   *logging.Logger
}

// WithBrowseTools registers the browse_* tools backed by sessions
func WithBrowseTools(sessions *session.Registry, logger *logging.Logger) Option {
	return func(reg *registry) {
		if err := RegisterBrowseTools(reg.server, sessions, logger); err != nil {
			nopIfNil(logger).Error("failed to register browse tools", "err", err)
		}
	}
}

// RegisterBrowseTools adds the browse_* tools to server; sessions is required
func RegisterBrowseTools(server *sdkmcp.Server, sessions *session.Registry, logger *logging.Logger) error {
	if sessions == nil {
		return fmt.Errorf("browse tools: session registry is required")
	}
	logger = nopIfNil(logger)

	t := browseTools{sessions: sessions, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "browse_open",
		Description: "Open a job browsing session, load the job list and show the first page",
	}, t.open)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "browse_facet_apply",
		Description: "Replace the selected values of one facet filter and show the first page of results",
	}, t.facetApply)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "browse_facet_clear",
		Description: "Clear one facet filter and show the first page of results",
	}, t.facetClear)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "browse_search",
		Description: "Set the free-text search query and show the first page of results",
	}, t.search)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "browse_page",
		Description: "Navigate to a page of the current results; out of range pages are ignored",
	}, t.page)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "browse_reset",
		Description: "Clear every facet and the search query",
	}, t.reset)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "browse_facet_options",
		Description: "List the values a facet can take in the loaded jobs",
	}, t.facetOptions)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "browse_apply",
		Description: "Mark a job as applied for the rest of the session",
	}, t.apply)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "browse_close",
		Description: "Close a browsing session",
	}, t.close)

	logger.Info("browse tools registered")
	return nil
}

func (t browseTools) open(ctx context.Context, _ *sdkmcp.CallToolRequest, _ OpenParams) (*sdkmcp.CallToolResult, session.Page, error) {
	s, err := t.sessions.Open(ctx)
	if err != nil {
		t.logger.Error("browse_open failed", "err", err)
		return nil, session.Page{}, err
	}

	page, err := s.Do(nil)
	if err != nil {
		return nil, session.Page{}, err
	}
	return textResult(formatPage("browse_open", page)), page, nil
}

func (t browseTools) facetApply(_ context.Context, _ *sdkmcp.CallToolRequest, params FacetApplyParams) (*sdkmcp.CallToolResult, session.Page, error) {
	category, err := domain.ParseCategory(params.Category)
	if err != nil {
		return nil, session.Page{}, err
	}
	return t.mutate("browse_facet_apply", params.SessionID, func(b *job.Browser) error {
		return b.ApplyFacet(category, params.Values)
	})
}

func (t browseTools) facetClear(_ context.Context, _ *sdkmcp.CallToolRequest, params FacetClearParams) (*sdkmcp.CallToolResult, session.Page, error) {
	category, err := domain.ParseCategory(params.Category)
	if err != nil {
		return nil, session.Page{}, err
	}
	return t.mutate("browse_facet_clear", params.SessionID, func(b *job.Browser) error {
		return b.ClearFacet(category)
	})
}

func (t browseTools) search(_ context.Context, _ *sdkmcp.CallToolRequest, params SearchParams) (*sdkmcp.CallToolResult, session.Page, error) {
	return t.mutate("browse_search", params.SessionID, func(b *job.Browser) error {
		b.SearchInput(params.Query)
		return nil
	})
}

func (t browseTools) reset(_ context.Context, _ *sdkmcp.CallToolRequest, params SessionParams) (*sdkmcp.CallToolResult, session.Page, error) {
	return t.mutate("browse_reset", params.SessionID, func(b *job.Browser) error {
		b.ClearAll()
		return nil
	})
}

func (t browseTools) apply(_ context.Context, _ *sdkmcp.CallToolRequest, params ApplyParams) (*sdkmcp.CallToolResult, session.Page, error) {
	return t.mutate("browse_apply", params.SessionID, func(b *job.Browser) error {
		return b.Apply(params.JobID)
	})
}

func (t browseTools) page(_ context.Context, _ *sdkmcp.CallToolRequest, params PageParams) (*sdkmcp.CallToolResult, PageClickResult, error) {
	s, err := t.sessions.Get(params.SessionID)
	if err != nil {
		return nil, PageClickResult{}, err
	}

	var changed bool
	page, err := s.Do(func(b *job.Browser) error {
		changed = b.PageClick(params.Page)
		return nil
	})
	if err != nil {
		return nil, PageClickResult{}, err
	}

	t.logger.Debug("browse_page", "session_id", params.SessionID, "page", params.Page, "changed", changed)

	msg := formatPage("browse_page", page)
	if !changed {
		msg = fmt.Sprintf("[browse_page] Page %d is out of range; staying on page %d\n%s", params.Page, page.Meta.CurrentPage, msg)
	}
	return textResult(msg), PageClickResult{Changed: changed, Page: page}, nil
}

func (t browseTools) facetOptions(_ context.Context, _ *sdkmcp.CallToolRequest, params FacetOptionsParams) (*sdkmcp.CallToolResult, FacetOptionsResult, error) {
	category, err := domain.ParseCategory(params.Category)
	if err != nil {
		return nil, FacetOptionsResult{}, err
	}

	s, err := t.sessions.Get(params.SessionID)
	if err != nil {
		return nil, FacetOptionsResult{}, err
	}

	var options []string
	_, err = s.Do(func(b *job.Browser) error {
		var optErr error
		options, optErr = b.FacetOptions(category, params.Filter)
		return optErr
	})
	if err != nil {
		return nil, FacetOptionsResult{}, err
	}

	msg := fmt.Sprintf("[browse_facet_options] %s: %s", category, strings.Join(options, ", "))
	if len(options) == 0 {
		msg = fmt.Sprintf("[browse_facet_options] %s: no options", category)
	}
	return textResult(msg), FacetOptionsResult{Category: string(category), Options: options}, nil
}

func (t browseTools) close(_ context.Context, _ *sdkmcp.CallToolRequest, params SessionParams) (*sdkmcp.CallToolResult, CloseResult, error) {
	if err := t.sessions.Close(params.SessionID); err != nil {
		return nil, CloseResult{}, err
	}
	return textResult(fmt.Sprintf("[browse_close] Session %s closed", params.SessionID)),
		CloseResult{SessionID: params.SessionID, Closed: true}, nil
}

func (t browseTools) mutate(tool, sessionID string, fn func(b *job.Browser) error) (*sdkmcp.CallToolResult, session.Page, error) {
	s, err := t.sessions.Get(sessionID)
	if err != nil {
		return nil, session.Page{}, err
	}

	page, err := s.Do(fn)
	if err != nil {
		t.logger.Debug(tool+" rejected", "session_id", sessionID, "err", err)
		return nil, session.Page{}, err
	}

	t.logger.Debug(tool, "session_id", sessionID, "total_items", page.TotalItems)
	return textResult(formatPage(tool, page)), page, nil
}
