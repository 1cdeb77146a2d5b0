package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"inkrypt/internal/domain"
	"inkrypt/internal/logger"
	"inkrypt/internal/ports"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const (
	schemaVersion      = "1"
	defaultSearchLimit = 50
)

// ErrNotOpen is returned when the index is used before Open
var ErrNotOpen = errors.New("index not open")

// Index implements ports.NoteIndex using SQLite.
// One database file per vault path lives under dir.
type Index struct {
	dir string
	log *logger.Logger

	mu        sync.RWMutex
	db        *sql.DB
	vaultID   uuid.UUID
	vaultPath string
	dbPath    string
}

// Ensure Index implements NoteIndex
var _ ports.NoteIndex = (*Index)(nil)

// NewIndex creates an index that stores its databases in dir
func NewIndex(dir string, log *logger.Logger) *Index {
	if log == nil {
		log = logger.Nop()
	}
	return &Index{dir: dir, log: log}
}

// Open initializes the index for the given vault, closing any previous one
func (idx *Index) Open(vaultID uuid.UUID, vaultPath string) error {
	vaultPath, err := filepath.Abs(vaultPath)
	if err != nil {
		return fmt.Errorf("failed to resolve vault path: %w", err)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.db != nil {
		idx.db.Close()
		idx.db = nil
	}

	dbPath := databasePath(idx.dir, vaultPath)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -16000;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS entries (
			path TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			entry_type TEXT NOT NULL,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entries_name ON entries(name COLLATE NOCASE);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	idx.db = db
	idx.vaultID = vaultID
	idx.vaultPath = vaultPath
	idx.dbPath = dbPath
	idx.log.Debug().Str("vault_id", vaultID.String()).Str("db", dbPath).Msg("index opened")
	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.db == nil {
		return nil
	}
	err := idx.db.Close()
	idx.db = nil
	return err
}

// VaultID returns the vault the index is open for, or uuid.Nil
func (idx *Index) VaultID() uuid.UUID {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if idx.db == nil {
		return uuid.Nil
	}
	return idx.vaultID
}

// NeedsFullRebuild returns true if the index should be fully rebuilt
func (idx *Index) NeedsFullRebuild() bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if idx.db == nil {
		return true
	}

	version := idx.metaValue("schema_version")
	vaultHash := idx.metaValue("vault_path_hash")
	vaultID := idx.metaValue("vault_id")

	return version != schemaVersion ||
		vaultHash != hashVaultPath(idx.vaultPath) ||
		vaultID != idx.vaultID.String()
}

// Search returns entries whose name contains query, case-insensitively.
// Directories come first, then names ascending.
func (idx *Index) Search(query string, limit int) ([]domain.SearchHit, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if idx.db == nil {
		return nil, ErrNotOpen
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	rows, err := idx.db.Query(`
		SELECT name, path, entry_type
		FROM entries
		WHERE name LIKE ? ESCAPE '\'
		ORDER BY CASE entry_type WHEN 'directory' THEN 0 ELSE 1 END, name COLLATE NOCASE, path
		LIMIT ?
	`, "%"+escapeLike(query)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}
	defer rows.Close()

	var hits []domain.SearchHit
	for rows.Next() {
		var hit domain.SearchHit
		var entryType string
		if err := rows.Scan(&hit.Name, &hit.Path, &entryType); err != nil {
			return nil, err
		}
		hit.EntryType = domain.EntryType(entryType)
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}

// databasePath returns the path for the SQLite database of a vault
func databasePath(dir, vaultPath string) string {
	return filepath.Join(dir, hashVaultPath(vaultPath)+".db")
}

// hashVaultPath returns a short hash of the vault path
func hashVaultPath(vaultPath string) string {
	h := sha256.Sum256([]byte(vaultPath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// metaValue reads a meta key; missing keys read as ""
func (idx *Index) metaValue(key string) string {
	var value string
	if err := idx.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value); err != nil {
		return ""
	}
	return value
}

// escapeLike escapes LIKE wildcards so user input matches literally
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
