// Package ports declares the interfaces between inkrypt's commands and its adapters.
package ports

//go:generate mockgen -source=vault.go -destination=../mock/vault_manager_mock.go -package=mock

import (
	"inkrypt/internal/domain"

	"github.com/google/uuid"
)

// VaultManager owns the vault registry and performs every vault and entry
// operation. Entry paths are vault-relative with '/' separators.
type VaultManager interface {
	// Vault lifecycle
	CreateVault(root, name string) (*domain.Vault, error)
	OpenVault(path string) (*domain.Vault, error)
	ListVaults() ([]domain.Vault, error)
	GetVault(id uuid.UUID) (*domain.Vault, error)
	DeleteVault(id uuid.UUID) error
	RenameVault(id uuid.UUID, newName string) (*domain.Vault, error)

	// Entry operations
	CreateDirectory(id uuid.UUID, rel string) error
	CreateNote(id uuid.UUID, rel string) error
	EditNote(id uuid.UUID, rel, content string) error
	ReadNote(id uuid.UUID, rel string) (string, error)
	DeleteEntry(id uuid.UUID, rel string) error
	RenameEntry(id uuid.UUID, oldRel, newRel string) error
	ListEntries(id uuid.UUID, dir string) ([]domain.Entry, error)

	// ResolveEntryPath returns the absolute location of rel after containment checks
	ResolveEntryPath(id uuid.UUID, rel string) (string, error)
}
