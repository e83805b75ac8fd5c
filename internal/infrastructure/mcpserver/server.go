package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Tomas-vilte/jira-issue-mcp/internal/domain/ports"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/i18n"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/logger"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName          = "jira-issue-mcp"
	GetIssueSummaryTool = "get_issue_summary"
)

type GetIssueSummaryArgs struct {
	IssueKey string `json:"issue_key" jsonschema:"Jira issue key (e.g. \"KEY-123\")"`
}

// Server exposes the issue summary service as MCP tools.
type Server struct {
	server  *mcp.Server
	service ports.IssueSummaryService
}

func NewServer(service ports.IssueSummaryService, t *i18n.Translations, version string) *Server {
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{
			Name:    ServerName,
			Version: version,
		}, nil),
		service: service,
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        GetIssueSummaryTool,
		Title:       t.GetMessage("get_issue_summary_tool_title", 0, nil),
		Description: t.GetMessage("get_issue_summary_tool_description", 0, nil),
	}, s.getIssueSummary)

	return s
}

// Run atiende la sesión sobre el transporte hasta que el cliente se desconecta
// o se cancela ctx.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	logger.Info(ctx, "mcp server listening", "tool", GetIssueSummaryTool)
	if err := s.server.Run(ctx, transport); err != nil {
		return fmt.Errorf("mcp server stopped: %w", err)
	}
	return nil
}

// Connect opens a single session, mainly for in-memory transports.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}

func (s *Server) getIssueSummary(ctx context.Context, _ *mcp.CallToolRequest, args GetIssueSummaryArgs) (*mcp.CallToolResult, any, error) {
	ctx = logger.With(ctx, "tool", GetIssueSummaryTool)
	logger.Debug(ctx, "tool called", "issue_key", args.IssueKey)

	summary, err := s.service.GetIssueSummary(ctx, args.IssueKey)
	if err != nil {
		logger.Warn(ctx, "tool call failed", "error", err)
		return nil, nil, err
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding issue summary: %w", err)
	}

	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: string(data)}},
		StructuredContent: summary,
	}, nil, nil
}
