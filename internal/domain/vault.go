package domain

import (
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MetadataDirName is the internal directory every vault carries at its root
	MetadataDirName = ".inkrypt"
	// MetadataFileName holds the VaultMetadata inside MetadataDirName
	MetadataFileName = "vault.json"
	// RegistryFileName is the application-level registry file inside the data directory
	RegistryFileName = "vaults.json"
)

// Vault represents a self-contained directory tree of notes
type Vault struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"` // final path segment, not persisted
	Path      string    `json:"path"` // absolute directory path
	Version   uint32    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VaultMetadata is the self-describing identity stored inside a vault.
// It is the source of truth; the registry only caches where vaults live.
type VaultMetadata struct {
	ID        uuid.UUID `json:"id"`
	Version   uint32    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// NewVaultMetadata allocates a fresh time-ordered identity at version 0
func NewVaultMetadata(now time.Time) (VaultMetadata, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return VaultMetadata{}, err
	}
	return VaultMetadata{
		ID:        id,
		Version:   0,
		CreatedAt: now.UTC(),
	}, nil
}

// MetadataDir returns the internal metadata directory of a vault rooted at vaultPath
func MetadataDir(vaultPath string) string {
	return filepath.Join(vaultPath, MetadataDirName)
}

// MetadataPath returns the location of vault.json for a vault rooted at vaultPath
func MetadataPath(vaultPath string) string {
	return filepath.Join(vaultPath, MetadataDirName, MetadataFileName)
}

// VaultFromMetadata builds the Vault view of a vault directory.
// The display name always comes from the directory name.
func VaultFromMetadata(meta VaultMetadata, vaultPath string, now time.Time) Vault {
	name := filepath.Base(vaultPath)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "Unnamed Vault"
	}
	return Vault{
		ID:        meta.ID,
		Name:      name,
		Path:      vaultPath,
		Version:   meta.Version,
		CreatedAt: meta.CreatedAt,
		UpdatedAt: now.UTC(),
	}
}

// EntryType distinguishes directories from notes in a listing
type EntryType string

const (
	EntryTypeDirectory EntryType = "directory"
	EntryTypeNote      EntryType = "note"
)

// Entry is a single-level listing projection of a file or directory inside a vault
type Entry struct {
	Name      string     `json:"name"`
	Path      string     `json:"path"` // vault-relative, '/' separated
	EntryType EntryType  `json:"entryType"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// IsDir reports whether the entry is a directory
func (e Entry) IsDir() bool {
	return e.EntryType == EntryTypeDirectory
}

// SortEntries orders entries directories first, then ascending by name
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if a.IsDir() != b.IsDir() {
			if a.IsDir() {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
}
