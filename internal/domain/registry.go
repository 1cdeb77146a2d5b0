package domain

import (
	"maps"

	"github.com/google/uuid"
)

// VaultRegistry maps vault identity to its last known location.
// It is an index only: the metadata file inside each vault stays authoritative.
type VaultRegistry struct {
	Vaults map[uuid.UUID]string `json:"vaults"`
}

// NewVaultRegistry returns an empty registry
func NewVaultRegistry() *VaultRegistry {
	return &VaultRegistry{Vaults: make(map[uuid.UUID]string)}
}

// Insert records path for id, overwriting any previous location
func (r *VaultRegistry) Insert(id uuid.UUID, path string) {
	if r.Vaults == nil {
		r.Vaults = make(map[uuid.UUID]string)
	}
	r.Vaults[id] = path
}

// Remove forgets id
func (r *VaultRegistry) Remove(id uuid.UUID) {
	delete(r.Vaults, id)
}

// Lookup returns the registered path for id
func (r *VaultRegistry) Lookup(id uuid.UUID) (string, bool) {
	path, ok := r.Vaults[id]
	return path, ok
}

// All returns a copy of every (id, path) pair
func (r *VaultRegistry) All() map[uuid.UUID]string {
	return maps.Clone(r.Vaults)
}

// Len returns the number of registered vaults
func (r *VaultRegistry) Len() int {
	return len(r.Vaults)
}

// Clone returns a deep copy safe to serialize outside the owner's lock
func (r *VaultRegistry) Clone() *VaultRegistry {
	clone := NewVaultRegistry()
	maps.Copy(clone.Vaults, r.Vaults)
	return clone
}
