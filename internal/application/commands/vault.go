package commands

import (
	"context"
	"fmt"
	"strings"

	"inkrypt/internal/application"
	"inkrypt/internal/logger"
	"inkrypt/internal/ports"

	"github.com/google/uuid"
)

// CreateVaultResult contains the result of creating a vault
type CreateVaultResult struct {
	Vault   *application.Vault
	Message string
}

// CreateVaultCommand creates a new vault directory under Root
type CreateVaultCommand struct {
	manager ports.VaultManager
	Name    string
	Root    string
}

// NewCreateVaultCommand creates a new CreateVaultCommand
func NewCreateVaultCommand(manager ports.VaultManager, name, root string) *CreateVaultCommand {
	return &CreateVaultCommand{
		manager: manager,
		Name:    name,
		Root:    root,
	}
}

// Validate checks if the create operation is valid
func (c *CreateVaultCommand) Validate() error {
	if err := application.ValidateVaultName("name", c.Name); err != nil {
		return err
	}
	return application.ValidateRequired("root", c.Root)
}

// Execute runs the create vault command
func (c *CreateVaultCommand) Execute(ctx context.Context) (*CreateVaultResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	vault, err := c.manager.CreateVault(strings.TrimSpace(c.Root), c.Name)
	if err != nil {
		return nil, err
	}

	return &CreateVaultResult{
		Vault:   vault,
		Message: fmt.Sprintf("Created vault %s at %s", vault.Name, vault.Path),
	}, nil
}

// ListVaultsResult contains every loadable registered vault
type ListVaultsResult struct {
	Vaults  []application.Vault
	Message string
}

// ListVaultsCommand lists registered vaults
type ListVaultsCommand struct {
	manager ports.VaultManager
}

// NewListVaultsCommand creates a new ListVaultsCommand
func NewListVaultsCommand(manager ports.VaultManager) *ListVaultsCommand {
	return &ListVaultsCommand{manager: manager}
}

// Execute runs the list vaults command
func (c *ListVaultsCommand) Execute(ctx context.Context) (*ListVaultsResult, error) {
	vaults, err := c.manager.ListVaults()
	if err != nil {
		return nil, err
	}
	if vaults == nil {
		vaults = []application.Vault{}
	}

	return &ListVaultsResult{
		Vaults:  vaults,
		Message: fmt.Sprintf("Found %d vault(s)", len(vaults)),
	}, nil
}

// OpenVaultResult contains the opened vault and whether it is being watched
type OpenVaultResult struct {
	Vault    *application.Vault
	Watching bool
	Message  string
}

// OpenVaultCommand registers an existing vault and starts watching it
type OpenVaultCommand struct {
	manager ports.VaultManager
	watcher ports.VaultWatcher
	Path    string
}

// NewOpenVaultCommand creates a new OpenVaultCommand
func NewOpenVaultCommand(manager ports.VaultManager, watcher ports.VaultWatcher, path string) *OpenVaultCommand {
	return &OpenVaultCommand{
		manager: manager,
		watcher: watcher,
		Path:    path,
	}
}

// Validate checks if the open operation is valid
func (c *OpenVaultCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute opens the vault. A failure to start watching is logged and the
// open still succeeds.
func (c *OpenVaultCommand) Execute(ctx context.Context) (*OpenVaultResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	vault, err := c.manager.OpenVault(strings.TrimSpace(c.Path))
	if err != nil {
		return nil, err
	}

	result := &OpenVaultResult{
		Vault:   vault,
		Message: fmt.Sprintf("Opened vault %s", vault.Name),
	}
	if err := c.watcher.Watch(vault.ID, vault.Path); err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Str("vault_id", vault.ID.String()).
			Str("path", vault.Path).
			Msg("failed to start watching vault")
		result.Message += " (change notifications unavailable)"
		return result, nil
	}

	result.Watching = true
	return result, nil
}

// CloseVaultResult contains the result of closing a vault
type CloseVaultResult struct {
	Message string
}

// CloseVaultCommand stops watching a vault. Closing a vault that is not
// being watched is a no-op.
type CloseVaultCommand struct {
	watcher ports.VaultWatcher
	VaultID string
}

// NewCloseVaultCommand creates a new CloseVaultCommand
func NewCloseVaultCommand(watcher ports.VaultWatcher, vaultID string) *CloseVaultCommand {
	return &CloseVaultCommand{watcher: watcher, VaultID: vaultID}
}

// Execute runs the close vault command
func (c *CloseVaultCommand) Execute(ctx context.Context) (*CloseVaultResult, error) {
	id, err := application.ParseVaultID("vaultID", c.VaultID)
	if err != nil {
		return nil, err
	}

	c.watcher.Unwatch(id)
	return &CloseVaultResult{Message: fmt.Sprintf("Closed vault %s", id)}, nil
}

// DeleteVaultResult contains the result of deleting a vault
type DeleteVaultResult struct {
	Message string
}

// DeleteVaultCommand stops watching a vault, then removes it from disk and the registry
type DeleteVaultCommand struct {
	manager ports.VaultManager
	watcher ports.VaultWatcher
	VaultID string
}

// NewDeleteVaultCommand creates a new DeleteVaultCommand
func NewDeleteVaultCommand(manager ports.VaultManager, watcher ports.VaultWatcher, vaultID string) *DeleteVaultCommand {
	return &DeleteVaultCommand{
		manager: manager,
		watcher: watcher,
		VaultID: vaultID,
	}
}

// Execute runs the delete vault command
func (c *DeleteVaultCommand) Execute(ctx context.Context) (*DeleteVaultResult, error) {
	id, err := application.ParseVaultID("vaultID", c.VaultID)
	if err != nil {
		return nil, err
	}

	c.watcher.Unwatch(id)
	if err := c.manager.DeleteVault(id); err != nil {
		return nil, err
	}

	return &DeleteVaultResult{Message: fmt.Sprintf("Deleted vault %s", id)}, nil
}

// RenameVaultResult contains the renamed vault
type RenameVaultResult struct {
	Vault   *application.Vault
	Message string
}

// RenameVaultCommand renames a vault directory. A watched vault keeps being
// watched at its new location.
type RenameVaultCommand struct {
	manager ports.VaultManager
	watcher ports.VaultWatcher
	VaultID string
	NewName string
}

// NewRenameVaultCommand creates a new RenameVaultCommand
func NewRenameVaultCommand(manager ports.VaultManager, watcher ports.VaultWatcher, vaultID, newName string) *RenameVaultCommand {
	return &RenameVaultCommand{
		manager: manager,
		watcher: watcher,
		VaultID: vaultID,
		NewName: newName,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameVaultCommand) Validate() error {
	if _, err := application.ParseVaultID("vaultID", c.VaultID); err != nil {
		return err
	}
	return application.ValidateVaultName("newName", c.NewName)
}

// Execute runs the rename vault command
func (c *RenameVaultCommand) Execute(ctx context.Context) (*RenameVaultResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	id, _ := application.ParseVaultID("vaultID", c.VaultID)

	// The watched root is about to move, so stop before and resume after
	current, _, watching := c.watcher.Current()
	watching = watching && current == id
	if watching {
		c.watcher.Unwatch(id)
	}

	vault, err := c.manager.RenameVault(id, c.NewName)
	if err != nil {
		if watching {
			c.rewatch(ctx, id)
		}
		return nil, err
	}

	if watching {
		if err := c.watcher.Watch(vault.ID, vault.Path); err != nil {
			logger.FromContext(ctx).Error().Err(err).
				Str("vault_id", vault.ID.String()).
				Msg("failed to resume watching renamed vault")
		}
	}

	return &RenameVaultResult{
		Vault:   vault,
		Message: fmt.Sprintf("Renamed vault to %s", vault.Name),
	}, nil
}

// rewatch restores the watch on the unchanged vault after a failed rename
func (c *RenameVaultCommand) rewatch(ctx context.Context, id uuid.UUID) {
	vault, err := c.manager.GetVault(id)
	if err == nil {
		err = c.watcher.Watch(vault.ID, vault.Path)
	}
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Str("vault_id", id.String()).
			Msg("failed to resume watching vault")
	}
}
