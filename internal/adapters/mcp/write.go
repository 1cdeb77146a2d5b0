package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"inkrypt/internal/application/commands"
)

// RegisterWriteTools adds all write vault tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(createVaultTool(), createVaultHandler(deps))
	s.AddTool(openVaultTool(), openVaultHandler(deps))
	s.AddTool(closeVaultTool(), closeVaultHandler(deps))
	s.AddTool(deleteVaultTool(), deleteVaultHandler(deps))
	s.AddTool(renameVaultTool(), renameVaultHandler(deps))

	s.AddTool(createNoteTool(), createNoteHandler(deps))
	s.AddTool(createDirectoryTool(), createDirectoryHandler(deps))
	s.AddTool(editNoteTool("edit_note"), editNoteHandler(deps))
	s.AddTool(editNoteTool("write_file"), editNoteHandler(deps))
	s.AddTool(deleteEntryTool(), deleteEntryHandler(deps))
	s.AddTool(renameEntryTool(), renameEntryHandler(deps))
}

func vaultIDParam() mcp.ToolOption {
	return mcp.WithString("vault_id",
		mcp.Description("Vault ID"),
		mcp.Required(),
	)
}

func pathParam(desc string) mcp.ToolOption {
	return mcp.WithString("path",
		mcp.Description(desc),
		mcp.Required(),
	)
}

// --- create_vault ---

func createVaultTool() mcp.Tool {
	return mcp.NewTool("create_vault",
		mcp.WithDescription("Create a new vault directory named name inside root and register it."),
		mcp.WithString("name",
			mcp.Description("Vault directory name (a single path segment)"),
			mcp.Required(),
		),
		mcp.WithString("root",
			mcp.Description("Existing parent directory for the vault"),
			mcp.Required(),
		),
	)
}

func createVaultHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateVaultCommand(deps.Manager,
			req.GetString("name", ""),
			req.GetString("root", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(result.Vault)
	}
}

// --- open_vault ---

func openVaultTool() mcp.Tool {
	return mcp.NewTool("open_vault",
		mcp.WithDescription("Open an existing vault directory, register it and start watching it for external changes. Only one vault is watched at a time."),
		pathParam("Absolute path of the vault directory"),
	)
}

func openVaultHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewOpenVaultCommand(deps.Manager, deps.Watcher, req.GetString("path", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(result.Vault)
	}
}

// --- close_vault ---

func closeVaultTool() mcp.Tool {
	return mcp.NewTool("close_vault",
		mcp.WithDescription("Stop watching a vault. Does nothing if the vault is not being watched."),
		vaultIDParam(),
	)
}

func closeVaultHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewCloseVaultCommand(deps.Watcher, req.GetString("vault_id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_vault ---

func deleteVaultTool() mcp.Tool {
	return mcp.NewTool("delete_vault",
		mcp.WithDescription("Delete a vault: stops watching it, removes its directory tree and unregisters it."),
		vaultIDParam(),
	)
}

func deleteVaultHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDeleteVaultCommand(deps.Manager, deps.Watcher, req.GetString("vault_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rename_vault ---

func renameVaultTool() mcp.Tool {
	return mcp.NewTool("rename_vault",
		mcp.WithDescription("Rename a vault directory. The vault keeps its ID and creation time."),
		vaultIDParam(),
		mcp.WithString("name",
			mcp.Description("New directory name"),
			mcp.Required(),
		),
	)
}

func renameVaultHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRenameVaultCommand(deps.Manager, deps.Watcher,
			req.GetString("vault_id", ""),
			req.GetString("name", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(result.Vault)
	}
}

// --- create_note ---

func createNoteTool() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create an empty note, creating parent directories as needed. Fails if the note already exists."),
		vaultIDParam(),
		pathParam("Vault-relative note path"),
	)
}

func createNoteHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateNoteCommand(deps.Manager, deps.Watcher,
			req.GetString("vault_id", ""),
			req.GetString("path", ""),
		)
		return entryResult(cmd.Execute(ctx))
	}
}

// --- create_directory ---

func createDirectoryTool() mcp.Tool {
	return mcp.NewTool("create_directory",
		mcp.WithDescription("Create a directory and any missing parents."),
		vaultIDParam(),
		pathParam("Vault-relative directory path"),
	)
}

func createDirectoryHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateDirectoryCommand(deps.Manager, deps.Watcher,
			req.GetString("vault_id", ""),
			req.GetString("path", ""),
		)
		return entryResult(cmd.Execute(ctx))
	}
}

// --- edit_note / write_file ---

func editNoteTool(name string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription("Replace the content of a note, creating it and its parent directories if needed."),
		vaultIDParam(),
		pathParam("Vault-relative note path"),
		mcp.WithString("content",
			mcp.Description("New note content"),
			mcp.Required(),
		),
	)
}

func editNoteHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewEditNoteCommand(deps.Manager, deps.Watcher,
			req.GetString("vault_id", ""),
			req.GetString("path", ""),
			req.GetString("content", ""),
		)
		return entryResult(cmd.Execute(ctx))
	}
}

// --- delete_entry ---

func deleteEntryTool() mcp.Tool {
	return mcp.NewTool("delete_entry",
		mcp.WithDescription("Delete a note, or a directory and everything inside it."),
		vaultIDParam(),
		pathParam("Vault-relative path of the note or directory"),
	)
}

func deleteEntryHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDeleteEntryCommand(deps.Manager, deps.Watcher,
			req.GetString("vault_id", ""),
			req.GetString("path", ""),
		)
		return entryResult(cmd.Execute(ctx))
	}
}

// --- rename_entry ---

func renameEntryTool() mcp.Tool {
	return mcp.NewTool("rename_entry",
		mcp.WithDescription("Move or rename a note or directory within a vault. Fails if the destination exists."),
		vaultIDParam(),
		mcp.WithString("old_path",
			mcp.Description("Current vault-relative path"),
			mcp.Required(),
		),
		mcp.WithString("new_path",
			mcp.Description("New vault-relative path"),
			mcp.Required(),
		),
	)
}

func renameEntryHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRenameEntryCommand(deps.Manager, deps.Watcher,
			req.GetString("vault_id", ""),
			req.GetString("old_path", ""),
			req.GetString("new_path", ""),
		)
		return entryResult(cmd.Execute(ctx))
	}
}

func entryResult(result *commands.EntryResult, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}
