package commands

import (
	"context"
	"fmt"
	"strings"

	"inkrypt/internal/application"
	"inkrypt/internal/domain"
	"inkrypt/internal/logger"
	"inkrypt/internal/ports"
)

// DefaultSearchLimit caps search results when no limit is given
const DefaultSearchLimit = 50

// SearchNotesResult contains matching entries
type SearchNotesResult struct {
	Hits    []application.SearchHit
	Stats   *domain.SyncStats
	Message string
}

// SearchNotesCommand searches entry names in a vault through the index.
// The index is switched to the vault and brought up to date first.
type SearchNotesCommand struct {
	manager ports.VaultManager
	index   ports.NoteIndex
	VaultID string
	Query   string
	Limit   int
}

// NewSearchNotesCommand creates a new SearchNotesCommand
func NewSearchNotesCommand(manager ports.VaultManager, index ports.NoteIndex, vaultID, query string, limit int) *SearchNotesCommand {
	return &SearchNotesCommand{
		manager: manager,
		index:   index,
		VaultID: vaultID,
		Query:   query,
		Limit:   limit,
	}
}

// Validate checks if the search is valid
func (c *SearchNotesCommand) Validate() error {
	if _, err := application.ParseVaultID("vaultID", c.VaultID); err != nil {
		return err
	}
	if err := application.ValidateRequired("query", c.Query); err != nil {
		return err
	}
	if c.Limit < 0 {
		return &application.ValidationError{Field: "limit", Message: "limit must not be negative"}
	}
	return nil
}

// Execute runs the search
func (c *SearchNotesCommand) Execute(ctx context.Context) (*SearchNotesResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	id, _ := application.ParseVaultID("vaultID", c.VaultID)

	// Confirms the vault is registered and valid before touching the index
	vault, err := c.manager.GetVault(id)
	if err != nil {
		return nil, err
	}

	if c.index.VaultID() != vault.ID {
		if err := c.index.Open(vault.ID, vault.Path); err != nil {
			return nil, fmt.Errorf("failed to open index: %w", err)
		}
	}

	var stats *domain.SyncStats
	if c.index.NeedsFullRebuild() {
		stats, err = c.index.SyncFull()
	} else {
		stats, err = c.index.SyncIncremental()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to sync index: %w", err)
	}
	logger.FromContext(ctx).Debug().
		Int("added", stats.EntriesAdded).
		Int("updated", stats.EntriesUpdated).
		Int("deleted", stats.EntriesDeleted).
		Dur("duration", stats.Duration).
		Msg("index synced")

	limit := c.Limit
	if limit == 0 {
		limit = DefaultSearchLimit
	}
	hits, err := c.index.Search(strings.TrimSpace(c.Query), limit)
	if err != nil {
		return nil, err
	}
	if hits == nil {
		hits = []application.SearchHit{}
	}

	return &SearchNotesResult{
		Hits:    hits,
		Stats:   stats,
		Message: fmt.Sprintf("Found %d match(es) for %q", len(hits), strings.TrimSpace(c.Query)),
	}, nil
}
