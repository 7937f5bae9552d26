// Package mcpserver exposes a parsed archive over stdio MCP so agent
// frontends can browse and search the backup without re-parsing it.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rikkatools/rikkaview/internal/model"
	"github.com/rikkatools/rikkaview/internal/query"
)

// Serve runs a stdio MCP server over the archive until stdin closes.
func Serve(archive *model.Archive) error {
	s := server.NewMCPServer("rikkaview", "1.0.0")

	listTool := mcp.NewTool("list_conversations",
		mcp.WithDescription("List every conversation in the backup with its title, message count and last update time."),
	)
	s.AddTool(listTool, func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		lines := query.List(archive)
		if len(lines) == 0 {
			return mcp.NewToolResultText("no conversations in backup"), nil
		}
		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})

	searchTool := mcp.NewTool("search_messages",
		mcp.WithDescription("Search message text across all conversations; returns matches with surrounding context."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to look for, case-insensitive."),
		),
	)
	s.AddTool(searchTool, func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q, _ := req.GetArguments()["query"].(string)
		if q == "" {
			return mcp.NewToolResultError("query is required"), nil
		}
		matches := query.Search(archive, q)
		if len(matches) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("no messages contain %q", q)), nil
		}
		var b strings.Builder
		for _, m := range matches {
			fmt.Fprintf(&b, "%s · #%d (%s): %s\n", m.Conversation.Title, m.MessageIndex+1, m.Role, m.Context)
		}
		return mcp.NewToolResultText(b.String()), nil
	})

	return server.ServeStdio(s)
}
