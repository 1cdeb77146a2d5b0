package commands

import (
	"context"
	"fmt"

	"inkrypt/internal/application"
	"inkrypt/internal/ports"

	"github.com/google/uuid"
)

// EntryResult contains the result of a mutating entry operation
type EntryResult struct {
	Path    string
	Message string
}

// markPending resolves each entry path and registers it with the watcher
// so the change the caller is about to make is not reported back as external.
func markPending(manager ports.VaultManager, pending ports.PendingMarker, id uuid.UUID, rels ...string) error {
	paths := make([]string, 0, len(rels))
	for _, rel := range rels {
		full, err := manager.ResolveEntryPath(id, rel)
		if err != nil {
			return err
		}
		paths = append(paths, full)
	}
	pending.MarkPending(paths...)
	return nil
}

// entryArgs holds the arguments shared by single-path entry commands
type entryArgs struct {
	VaultID string
	Path    string
}

func (a entryArgs) parse(allowRoot bool) (uuid.UUID, error) {
	id, err := application.ParseVaultID("vaultID", a.VaultID)
	if err != nil {
		return uuid.Nil, err
	}
	if err := application.ValidateEntryPath("path", a.Path, allowRoot); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ListEntriesResult contains one directory level
type ListEntriesResult struct {
	Entries []application.Entry
	Message string
}

// ListEntriesCommand lists the immediate children of a vault directory.
// An empty Dir lists the vault root.
type ListEntriesCommand struct {
	manager ports.VaultManager
	VaultID string
	Dir     string
}

// NewListEntriesCommand creates a new ListEntriesCommand
func NewListEntriesCommand(manager ports.VaultManager, vaultID, dir string) *ListEntriesCommand {
	return &ListEntriesCommand{manager: manager, VaultID: vaultID, Dir: dir}
}

// Execute runs the list entries command
func (c *ListEntriesCommand) Execute(ctx context.Context) (*ListEntriesResult, error) {
	id, err := entryArgs{VaultID: c.VaultID, Path: c.Dir}.parse(true)
	if err != nil {
		return nil, err
	}

	entries, err := c.manager.ListEntries(id, c.Dir)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []application.Entry{}
	}

	return &ListEntriesResult{
		Entries: entries,
		Message: fmt.Sprintf("Found %d entries", len(entries)),
	}, nil
}

// ReadNoteResult contains a note's content
type ReadNoteResult struct {
	Path    string
	Content string
}

// ReadNoteCommand reads a note
type ReadNoteCommand struct {
	manager ports.VaultManager
	entryArgs
}

// NewReadNoteCommand creates a new ReadNoteCommand
func NewReadNoteCommand(manager ports.VaultManager, vaultID, path string) *ReadNoteCommand {
	return &ReadNoteCommand{manager: manager, entryArgs: entryArgs{VaultID: vaultID, Path: path}}
}

// Execute runs the read note command
func (c *ReadNoteCommand) Execute(ctx context.Context) (*ReadNoteResult, error) {
	id, err := c.parse(false)
	if err != nil {
		return nil, err
	}

	content, err := c.manager.ReadNote(id, c.Path)
	if err != nil {
		return nil, err
	}
	return &ReadNoteResult{Path: c.Path, Content: content}, nil
}

// EditNoteCommand replaces a note's content, creating it if needed
type EditNoteCommand struct {
	manager ports.VaultManager
	pending ports.PendingMarker
	entryArgs
	Content string
}

// NewEditNoteCommand creates a new EditNoteCommand
func NewEditNoteCommand(manager ports.VaultManager, pending ports.PendingMarker, vaultID, path, content string) *EditNoteCommand {
	return &EditNoteCommand{
		manager:   manager,
		pending:   pending,
		entryArgs: entryArgs{VaultID: vaultID, Path: path},
		Content:   content,
	}
}

// Execute runs the edit note command
func (c *EditNoteCommand) Execute(ctx context.Context) (*EntryResult, error) {
	id, err := c.parse(false)
	if err != nil {
		return nil, err
	}
	if err := markPending(c.manager, c.pending, id, c.Path); err != nil {
		return nil, err
	}
	if err := c.manager.EditNote(id, c.Path, c.Content); err != nil {
		return nil, err
	}

	return &EntryResult{
		Path:    c.Path,
		Message: fmt.Sprintf("Saved %s (%d bytes)", c.Path, len(c.Content)),
	}, nil
}

// CreateNoteCommand creates an empty note
type CreateNoteCommand struct {
	manager ports.VaultManager
	pending ports.PendingMarker
	entryArgs
}

// NewCreateNoteCommand creates a new CreateNoteCommand
func NewCreateNoteCommand(manager ports.VaultManager, pending ports.PendingMarker, vaultID, path string) *CreateNoteCommand {
	return &CreateNoteCommand{manager: manager, pending: pending, entryArgs: entryArgs{VaultID: vaultID, Path: path}}
}

// Execute runs the create note command
func (c *CreateNoteCommand) Execute(ctx context.Context) (*EntryResult, error) {
	id, err := c.parse(false)
	if err != nil {
		return nil, err
	}
	if err := markPending(c.manager, c.pending, id, c.Path); err != nil {
		return nil, err
	}
	if err := c.manager.CreateNote(id, c.Path); err != nil {
		return nil, err
	}

	return &EntryResult{Path: c.Path, Message: fmt.Sprintf("Created note %s", c.Path)}, nil
}

// CreateDirectoryCommand creates a directory and any missing parents
type CreateDirectoryCommand struct {
	manager ports.VaultManager
	pending ports.PendingMarker
	entryArgs
}

// NewCreateDirectoryCommand creates a new CreateDirectoryCommand
func NewCreateDirectoryCommand(manager ports.VaultManager, pending ports.PendingMarker, vaultID, path string) *CreateDirectoryCommand {
	return &CreateDirectoryCommand{manager: manager, pending: pending, entryArgs: entryArgs{VaultID: vaultID, Path: path}}
}

// Execute runs the create directory command
func (c *CreateDirectoryCommand) Execute(ctx context.Context) (*EntryResult, error) {
	id, err := c.parse(false)
	if err != nil {
		return nil, err
	}
	if err := markPending(c.manager, c.pending, id, c.Path); err != nil {
		return nil, err
	}
	if err := c.manager.CreateDirectory(id, c.Path); err != nil {
		return nil, err
	}

	return &EntryResult{Path: c.Path, Message: fmt.Sprintf("Created directory %s", c.Path)}, nil
}

// DeleteEntryCommand deletes a note or a directory tree
type DeleteEntryCommand struct {
	manager ports.VaultManager
	pending ports.PendingMarker
	entryArgs
}

// NewDeleteEntryCommand creates a new DeleteEntryCommand
func NewDeleteEntryCommand(manager ports.VaultManager, pending ports.PendingMarker, vaultID, path string) *DeleteEntryCommand {
	return &DeleteEntryCommand{manager: manager, pending: pending, entryArgs: entryArgs{VaultID: vaultID, Path: path}}
}

// Execute runs the delete entry command
func (c *DeleteEntryCommand) Execute(ctx context.Context) (*EntryResult, error) {
	id, err := c.parse(false)
	if err != nil {
		return nil, err
	}
	if err := markPending(c.manager, c.pending, id, c.Path); err != nil {
		return nil, err
	}
	if err := c.manager.DeleteEntry(id, c.Path); err != nil {
		return nil, err
	}

	return &EntryResult{Path: c.Path, Message: fmt.Sprintf("Deleted %s", c.Path)}, nil
}

// RenameEntryCommand moves an entry within a vault
type RenameEntryCommand struct {
	manager ports.VaultManager
	pending ports.PendingMarker
	VaultID string
	OldPath string
	NewPath string
}

// NewRenameEntryCommand creates a new RenameEntryCommand
func NewRenameEntryCommand(manager ports.VaultManager, pending ports.PendingMarker, vaultID, oldPath, newPath string) *RenameEntryCommand {
	return &RenameEntryCommand{
		manager: manager,
		pending: pending,
		VaultID: vaultID,
		OldPath: oldPath,
		NewPath: newPath,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameEntryCommand) Validate() error {
	if _, err := application.ParseVaultID("vaultID", c.VaultID); err != nil {
		return err
	}
	if err := application.ValidateEntryPath("oldPath", c.OldPath, false); err != nil {
		return err
	}
	return application.ValidateEntryPath("newPath", c.NewPath, false)
}

// Execute runs the rename entry command. Both paths are marked pending.
func (c *RenameEntryCommand) Execute(ctx context.Context) (*EntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	id, _ := application.ParseVaultID("vaultID", c.VaultID)

	if err := markPending(c.manager, c.pending, id, c.OldPath, c.NewPath); err != nil {
		return nil, err
	}
	if err := c.manager.RenameEntry(id, c.OldPath, c.NewPath); err != nil {
		return nil, err
	}

	return &EntryResult{
		Path:    c.NewPath,
		Message: fmt.Sprintf("Renamed %s to %s", c.OldPath, c.NewPath),
	}, nil
}
