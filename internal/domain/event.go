package domain

import "github.com/google/uuid"

// FileEventType classifies a change observed inside a watched vault
type FileEventType string

const (
	FileEventCreate FileEventType = "create"
	FileEventModify FileEventType = "modify"
	FileEventDelete FileEventType = "delete"
	// FileEventRename is part of the wire format but is never produced:
	// a rename arrives as a delete of the old path followed by a create of the new one.
	FileEventRename FileEventType = "rename"
)

// FileSystemEvent is a single externally caused change, relative to the vault root
type FileSystemEvent struct {
	EventType FileEventType `json:"eventType"`
	Path      string        `json:"path"`
	VaultID   uuid.UUID     `json:"vaultId"`
}

type eventKey struct {
	vaultID uuid.UUID
	path    string
}

// DeduplicateEvents keeps only the most recent event per (vault, path),
// preserving the chronological order of the kept events.
func DeduplicateEvents(events []FileSystemEvent) []FileSystemEvent {
	if len(events) == 0 {
		return nil
	}

	seen := make(map[eventKey]struct{}, len(events))
	kept := make([]FileSystemEvent, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		key := eventKey{vaultID: events[i].VaultID, path: events[i].Path}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, events[i])
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}
