package filesystem

import (
	"io/fs"
	"time"

	"inkrypt/internal/domain"
)

// entryFromInfo builds the listing projection of a file.
// Timestamps are truncated to whole seconds in UTC.
func entryFromInfo(fullPath, rel string, info fs.FileInfo) domain.Entry {
	entryType := domain.EntryTypeNote
	if info.IsDir() {
		entryType = domain.EntryTypeDirectory
	}

	updated := secondsUTC(info.ModTime())
	entry := domain.Entry{
		Name:      info.Name(),
		Path:      rel,
		EntryType: entryType,
		UpdatedAt: &updated,
	}
	if born, ok := birthTime(fullPath, info); ok {
		created := secondsUTC(born)
		entry.CreatedAt = &created
	}
	return entry
}

func secondsUTC(t time.Time) time.Time {
	return time.Unix(t.Unix(), 0).UTC()
}
