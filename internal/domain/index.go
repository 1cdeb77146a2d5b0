package domain

import "time"

// IndexEntry is a cached vault entry used for search
type IndexEntry struct {
	Path      string    // vault-relative, '/' separated (primary key)
	Name      string    // final path segment
	EntryType EntryType // directory or note
	Mtime     int64     // unix seconds, drives incremental sync
}

// SyncStats holds statistics from a sync operation
type SyncStats struct {
	EntriesAdded   int
	EntriesUpdated int
	EntriesDeleted int
	FilesScanned   int
	Duration       time.Duration
}

// SearchHit is a single search_notes result
type SearchHit struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	EntryType EntryType `json:"entryType"`
}
