package ports

//go:generate mockgen -source=watcher.go -destination=../mock/vault_watcher_mock.go -package=mock

import (
	"inkrypt/internal/domain"

	"github.com/google/uuid"
)

// ChangeHandler receives one debounced, deduplicated batch.
// Handlers run on the watcher goroutine and must not block.
type ChangeHandler func(batch []domain.FileSystemEvent)

// PendingMarker suppresses notifications for paths the application is about to change
type PendingMarker interface {
	MarkPending(paths ...string)
}

// VaultWatcher observes at most one vault at a time
type VaultWatcher interface {
	PendingMarker

	Watch(vaultID uuid.UUID, path string) error
	// Unwatch stops the active watch if it belongs to vaultID
	Unwatch(vaultID uuid.UUID)
	Current() (uuid.UUID, string, bool)
	Subscribe(h ChangeHandler) (cancel func())
	Close() error
}
