// Package mcp exposes inkrypt operations as MCP tools and forwards watcher
// change batches to connected clients as notifications.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"inkrypt/internal/application"
	"inkrypt/internal/application/commands"
	"inkrypt/internal/ports"
)

// Deps are the services tool handlers call into
type Deps struct {
	Manager ports.VaultManager
	Watcher ports.VaultWatcher
	Index   ports.NoteIndex
}

// RegisterReadTools adds all read-only vault tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(listVaultsTool(), listVaultsHandler(deps))
	s.AddTool(listEntriesTool(), listEntriesHandler(deps))
	s.AddTool(readNoteTool(), readNoteHandler(deps))
	if deps.Index != nil {
		s.AddTool(searchNotesTool(), searchNotesHandler(deps))
	}
}

// --- list_vaults ---

func listVaultsTool() mcp.Tool {
	return mcp.NewTool("list_vaults",
		mcp.WithDescription("List every registered vault that can still be loaded. Returns a JSON array of {id, name, path, version, created_at, updated_at}."),
	)
}

func listVaultsHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewListVaultsCommand(deps.Manager).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(result.Vaults)
	}
}

// --- list_entries ---

func listEntriesTool() mcp.Tool {
	return mcp.NewTool("list_entries",
		mcp.WithDescription("List the immediate children of a directory in a vault. Directories come first, then notes, each sorted by name."),
		mcp.WithString("vault_id",
			mcp.Description("Vault ID"),
			mcp.Required(),
		),
		mcp.WithString("dir",
			mcp.Description("Vault-relative directory using '/' separators. Omit to list the vault root."),
		),
	)
}

func listEntriesHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListEntriesCommand(deps.Manager,
			req.GetString("vault_id", ""),
			req.GetString("dir", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(result.Entries)
	}
}

// --- read_note ---

func readNoteTool() mcp.Tool {
	return mcp.NewTool("read_note",
		mcp.WithDescription("Read the full content of a note."),
		mcp.WithString("vault_id",
			mcp.Description("Vault ID"),
			mcp.Required(),
		),
		mcp.WithString("path",
			mcp.Description("Vault-relative note path (e.g. projects/plan.md)"),
			mcp.Required(),
		),
	)
}

func readNoteHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewReadNoteCommand(deps.Manager,
			req.GetString("vault_id", ""),
			req.GetString("path", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Content), nil
	}
}

// --- search_notes ---

func searchNotesTool() mcp.Tool {
	return mcp.NewTool("search_notes",
		mcp.WithDescription("Search entry names in a vault (case-insensitive substring). Directories are listed first."),
		mcp.WithString("vault_id",
			mcp.Description("Vault ID"),
			mcp.Required(),
		),
		mcp.WithString("query",
			mcp.Description("Text to look for in entry names"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum number of results (default %d)", commands.DefaultSearchLimit)),
		),
	)
}

func searchNotesHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSearchNotesCommand(deps.Manager, deps.Index,
			req.GetString("vault_id", ""),
			req.GetString("query", ""),
			req.GetInt("limit", 0),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Hits) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, h := range result.Hits {
			marker := " "
			if h.EntryType == application.EntryTypeDirectory {
				marker = "/"
			}
			fmt.Fprintf(&sb, "%s %s\n", marker, h.Path)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(fmt.Errorf("encoding result: %w", err))
	}
	return mcp.NewToolResultText(string(data)), nil
}
