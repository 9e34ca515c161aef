// Package mcp implements the Model Context Protocol server for Gingham.
//
// The MCP server exposes the same planning pipelines as the HTTP API through
// MCP tools, allowing MCP-compatible AI agents to generate goal plans, picnic
// plans, and weather outlooks.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/gingham-app/gingham/internal/geocode"
	"github.com/gingham-app/gingham/internal/model"
	"github.com/gingham-app/gingham/internal/plan"
	"github.com/gingham-app/gingham/internal/storage"
	"github.com/gingham-app/gingham/internal/weather"
)

// Server wraps the MCP server with Gingham's plan engine and provider clients.
type Server struct {
	mcpServer *mcpserver.MCPServer
	generator *plan.Generator
	weather   *weather.Client
	geocode   *geocode.Client
	db        *storage.DB // nil = stateless
	logger    *slog.Logger
}

// New creates and configures a new MCP server with all tools and resources.
// db may be nil; generated plans are then returned without being persisted.
func New(generator *plan.Generator, weatherClient *weather.Client, geocodeClient *geocode.Client, db *storage.DB, logger *slog.Logger, version string) *Server {
	s := &Server{
		generator: generator,
		weather:   weatherClient,
		geocode:   geocodeClient,
		db:        db,
		logger:    logger,
	}

	s.mcpServer = mcpserver.NewMCPServer(
		"gingham",
		version,
		mcpserver.WithResourceCapabilities(true, true),
		mcpserver.WithToolCapabilities(true),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// MCPServer returns the underlying mcp-go server for transport setup.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpServer
}

func (s *Server) registerResources() {
	// gingham://plans/latest/{kind}: most recently generated plan of a kind.
	s.mcpServer.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"gingham://plans/latest/{kind}",
			"Latest Plan",
			mcplib.WithTemplateDescription("The most recently generated plan of the given kind (goal or picnic)"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		s.handleLatestPlan,
	)
}

func (s *Server) handleLatestPlan(ctx context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	if s.db == nil {
		return nil, storage.ErrNotFound
	}

	kind := model.PlanKindGoal
	if len(request.Params.URI) > 0 && request.Params.URI == "gingham://plans/latest/picnic" {
		kind = model.PlanKindPicnic
	}

	stored, err := s.db.GetLatestPlan(ctx, kind)
	if err != nil {
		return nil, err
	}

	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(stored.Payload),
		},
	}, nil
}

// jsonResult marshals a value into a text tool result.
func jsonResult(v any) *mcplib.CallToolResult {
	data, _ := json.MarshalIndent(v, "", "  ")
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{
			mcplib.TextContent{Type: "text", Text: string(data)},
		},
	}
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{
			mcplib.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
