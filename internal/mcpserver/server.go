// Package mcpserver exposes the catalog reports as MCP tools.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jwulff/meetingbank/internal/catalog"
	"github.com/jwulff/meetingbank/internal/report"
	"github.com/jwulff/meetingbank/internal/table"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is reported to MCP clients.
const Version = "0.1.0"

type handlers struct {
	src  catalog.Source
	opts catalog.Options
}

// New returns an MCP server with the list_reports, run_report and run_all
// tools.
func New(src catalog.Source, opts catalog.Options) *server.MCPServer {
	h := &handlers{src: src, opts: opts.Normalize()}

	s := server.NewMCPServer("meetingbank", Version,
		server.WithToolCapabilities(false),
	)

	var ids []string
	for _, r := range report.Reports(h.opts) {
		ids = append(ids, r.ID)
	}

	s.AddTool(mcp.NewTool("list_reports",
		mcp.WithDescription("List the meeting transcript reports with their IDs and titles."),
	), h.listReports)

	s.AddTool(mcp.NewTool("run_report",
		mcp.WithDescription("Run one meeting transcript report and return it as a text table."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Report ID, e.g. q1"),
			mcp.Enum(ids...),
		),
	), h.runReport)

	s.AddTool(mcp.NewTool("run_all",
		mcp.WithDescription("Run every meeting transcript report and return the text tables."),
	), h.runAll)

	return s
}

// Serve runs the server over stdin/stdout until the client disconnects.
func Serve(src catalog.Source, opts catalog.Options) error {
	return server.ServeStdio(New(src, opts))
}

func (h *handlers) listReports(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var rows []table.Row
	for _, r := range report.Reports(h.opts) {
		rows = append(rows, table.Row{{Key: "id", Value: r.ID}, {Key: "title", Value: r.Title}})
	}
	return mcp.NewToolResultText(table.Render(table.FromRows("Reports", rows))), nil
}

func (h *handlers) runReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r, err := report.Lookup(h.opts, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	t, err := r.Build(ctx, h.src, h.opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("run %s: %v", r.ID, err)), nil
	}
	return mcp.NewToolResultText(table.Render(t)), nil
}

func (h *handlers) runAll(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	err := report.Run(ctx, h.src, h.opts, table.NewPrinter(&b))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return mcp.NewToolResultError(fmt.Sprintf("run reports: %v", err)), nil
	}
	return mcp.NewToolResultText(b.String()), nil
}
