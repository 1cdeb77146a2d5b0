package ports

//go:generate mockgen -source=index.go -destination=../mock/note_index_mock.go -package=mock

import (
	"inkrypt/internal/domain"

	"github.com/google/uuid"
)

// NoteIndex provides cached name search over one vault
type NoteIndex interface {
	// Lifecycle
	Open(vaultID uuid.UUID, vaultPath string) error
	Close() error
	VaultID() uuid.UUID

	// Sync operations
	NeedsFullRebuild() bool
	SyncFull() (*domain.SyncStats, error)
	SyncIncremental() (*domain.SyncStats, error)
	Apply(batch []domain.FileSystemEvent) error

	Search(query string, limit int) ([]domain.SearchHit, error)
}
