package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"inkrypt/internal/domain"
)

// indexTx batches cache updates into one transaction
type indexTx struct {
	tx *sql.Tx
}

func (idx *Index) beginTx() (*indexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &indexTx{tx: tx}, nil
}

// upsertEntry inserts or updates an entry, reporting whether it was new
func (t *indexTx) upsertEntry(entry *domain.IndexEntry) (bool, error) {
	var existing int
	err := t.tx.QueryRow(`SELECT 1 FROM entries WHERE path = ?`, entry.Path).Scan(&existing)
	isNew := errors.Is(err, sql.ErrNoRows)
	if err != nil && !isNew {
		return false, err
	}

	_, err = t.tx.Exec(`
		INSERT OR REPLACE INTO entries (path, name, entry_type, mtime)
		VALUES (?, ?, ?, ?)
	`, entry.Path, entry.Name, string(entry.EntryType), entry.Mtime)
	return isNew, err
}

// deleteTree removes path and everything beneath it
func (t *indexTx) deleteTree(path string) (int, error) {
	// '0' sorts right after '/', so the range holds exactly the descendants
	res, err := t.tx.Exec(`
		DELETE FROM entries WHERE path = ? OR (path > ? AND path < ?)
	`, path, path+"/", path+"0")
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (t *indexTx) clear() error {
	_, err := t.tx.Exec(`DELETE FROM entries`)
	return err
}

// paths returns every indexed path
func (t *indexTx) paths() (map[string]bool, error) {
	rows, err := t.tx.Query(`SELECT path FROM entries`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		existing[path] = true
	}
	return existing, rows.Err()
}

func (t *indexTx) setMeta(key, value string) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

func (t *indexTx) lastSync() int64 {
	var value string
	if err := t.tx.QueryRow(`SELECT value FROM meta WHERE key = 'last_sync_time'`).Scan(&value); err != nil {
		return 0
	}
	n, _ := strconv.ParseInt(value, 10, 64)
	return n
}

func (t *indexTx) markSynced(at time.Time) error {
	return t.setMeta("last_sync_time", strconv.FormatInt(at.Unix(), 10))
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	return t.tx.Rollback()
}
