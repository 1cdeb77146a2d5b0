package application

import "inkrypt/internal/domain"

// Re-export domain types for use by adapters
type (
	Vault           = domain.Vault
	Entry           = domain.Entry
	EntryType       = domain.EntryType
	FileSystemEvent = domain.FileSystemEvent
	SearchHit       = domain.SearchHit
)

const (
	EntryTypeDirectory = domain.EntryTypeDirectory
	EntryTypeNote      = domain.EntryTypeNote
)
