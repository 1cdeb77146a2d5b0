package sqlite

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inkrypt/internal/domain"
)

// SyncFull performs a complete rebuild of the index
func (idx *Index) SyncFull() (*domain.SyncStats, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if idx.db == nil {
		return nil, ErrNotOpen
	}

	start := time.Now()
	stats := &domain.SyncStats{}

	tx, err := idx.beginTx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Clear existing data
	if err := tx.clear(); err != nil {
		return nil, fmt.Errorf("failed to clear index: %w", err)
	}

	err = idx.walk(idx.vaultPath, func(entry *domain.IndexEntry) error {
		stats.FilesScanned++
		if _, err := tx.upsertEntry(entry); err != nil {
			return err
		}
		stats.EntriesAdded++
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("failed to walk vault: %w", err)
	}

	if err := idx.writeMeta(tx, start); err != nil {
		return stats, err
	}
	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit sync: %w", err)
	}

	stats.Duration = time.Since(start)
	idx.log.Info().Int("entries", stats.EntriesAdded).Dur("duration", stats.Duration).Msg("index rebuilt")
	return stats, nil
}

// SyncIncremental updates only entries that changed since last sync
func (idx *Index) SyncIncremental() (*domain.SyncStats, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if idx.db == nil {
		return nil, ErrNotOpen
	}

	start := time.Now()
	stats := &domain.SyncStats{}

	tx, err := idx.beginTx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	lastSync := tx.lastSync()

	// Track existing paths to detect deletions
	existingPaths, err := tx.paths()
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}
	seenPaths := make(map[string]bool, len(existingPaths))

	err = idx.walk(idx.vaultPath, func(entry *domain.IndexEntry) error {
		seenPaths[entry.Path] = true
		stats.FilesScanned++

		// mtime has second granularity, so the sync second itself is rechecked
		if existingPaths[entry.Path] && entry.Mtime < lastSync {
			return nil
		}
		added, err := tx.upsertEntry(entry)
		if err != nil {
			return err
		}
		if added {
			stats.EntriesAdded++
		} else {
			stats.EntriesUpdated++
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("failed to walk vault: %w", err)
	}

	// Delete entries that no longer exist
	for path := range existingPaths {
		if seenPaths[path] {
			continue
		}
		n, err := tx.deleteTree(path)
		if err != nil {
			return stats, fmt.Errorf("failed to delete %s: %w", path, err)
		}
		stats.EntriesDeleted += n
	}

	if err := idx.writeMeta(tx, start); err != nil {
		return stats, err
	}
	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit sync: %w", err)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// Apply folds a batch of watcher events into the index.
// Events for other vaults and hidden paths are ignored.
func (idx *Index) Apply(batch []domain.FileSystemEvent) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if idx.db == nil {
		return ErrNotOpen
	}

	tx, err := idx.beginTx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, event := range batch {
		if event.VaultID != idx.vaultID {
			continue
		}
		rel, err := domain.CleanEntryPath(event.Path)
		if err != nil || rel == "" || hiddenPath(rel) {
			continue
		}
		if err := idx.applyEvent(tx, event.EventType, rel); err != nil {
			return fmt.Errorf("failed to apply %s %s: %w", event.EventType, rel, err)
		}
	}

	return tx.Commit()
}

func (idx *Index) applyEvent(tx *indexTx, kind domain.FileEventType, rel string) error {
	if kind == domain.FileEventDelete {
		_, err := tx.deleteTree(rel)
		return err
	}

	full := domain.JoinEntryPath(idx.vaultPath, rel)
	info, err := os.Lstat(full)
	if errors.Is(err, fs.ErrNotExist) {
		// gone again before the batch was flushed
		_, err := tx.deleteTree(rel)
		return err
	}
	if err != nil {
		return err
	}

	if _, err := tx.upsertEntry(indexEntry(rel, info)); err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}
	// A directory moved into the vault arrives as a single create.
	return idx.walk(full, func(entry *domain.IndexEntry) error {
		_, err := tx.upsertEntry(entry)
		return err
	})
}

func (idx *Index) writeMeta(tx *indexTx, at time.Time) error {
	meta := map[string]string{
		"schema_version":  schemaVersion,
		"vault_path_hash": hashVaultPath(idx.vaultPath),
		"vault_id":        idx.vaultID.String(),
	}
	for key, value := range meta {
		if err := tx.setMeta(key, value); err != nil {
			return fmt.Errorf("failed to update meta: %w", err)
		}
	}
	return tx.markSynced(at)
}

// walk visits every visible entry beneath root, relative to the vault root
func (idx *Index) walk(root string, fn func(entry *domain.IndexEntry) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil // Skip unreadable entries
		}
		if path == root {
			return nil
		}
		if domain.IsHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, ok := domain.RelativeEventPath(idx.vaultPath, path)
		if !ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		return fn(indexEntry(rel, info))
	})
}

func indexEntry(rel string, info fs.FileInfo) *domain.IndexEntry {
	entryType := domain.EntryTypeNote
	if info.IsDir() {
		entryType = domain.EntryTypeDirectory
	}
	return &domain.IndexEntry{
		Path:      rel,
		Name:      info.Name(),
		EntryType: entryType,
		Mtime:     info.ModTime().Unix(),
	}
}

// hiddenPath reports whether any component of a cleaned path is hidden
func hiddenPath(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if domain.IsHidden(part) {
			return true
		}
	}
	return false
}
