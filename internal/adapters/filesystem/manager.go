package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"inkrypt/internal/domain"
	"inkrypt/internal/logger"
	"inkrypt/internal/ports"

	"github.com/google/uuid"
)

// Manager implements ports.VaultManager on the local filesystem.
// The registry lock is never held across file I/O.
type Manager struct {
	mu       sync.RWMutex
	registry *domain.VaultRegistry
	seq      uint64

	store *registryStore
	log   *logger.Logger
	now   func() time.Time
}

// Ensure Manager implements VaultManager
var _ ports.VaultManager = (*Manager)(nil)

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger used for degraded conditions
func WithLogger(l *logger.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager loads (or initializes) the registry at registryPath
func NewManager(registryPath string, opts ...Option) (*Manager, error) {
	m := &Manager{
		log: logger.Nop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.store = newRegistryStore(registryPath, m.log, m.now)
	reg, err := m.store.load()
	if err != nil {
		return nil, err
	}
	m.registry = reg
	return m, nil
}

// commit applies fn to the registry and persists the resulting snapshot
func (m *Manager) commit(fn func(r *domain.VaultRegistry)) error {
	m.mu.Lock()
	fn(m.registry)
	m.seq++
	seq := m.seq
	snap := m.registry.Clone()
	m.mu.Unlock()

	return m.store.save(snap, seq)
}

func (m *Manager) lookup(id uuid.UUID) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.registry.Lookup(id)
}

// loadVault resolves id through the registry and revalidates the vault's metadata
func (m *Manager) loadVault(op string, id uuid.UUID) (*domain.Vault, error) {
	vaultPath, ok := m.lookup(id)
	if !ok {
		return nil, domain.NewVaultError(op, id.String(), domain.ErrNotFound, nil)
	}

	meta, err := readMetadata(op, vaultPath)
	if err != nil {
		return nil, err
	}
	if meta.ID != id {
		return nil, domain.NewVaultError(op, vaultPath, domain.ErrInvalidVault,
			fmt.Errorf("metadata id %s does not match %s", meta.ID, id))
	}

	v := domain.VaultFromMetadata(meta, vaultPath, m.now())
	return &v, nil
}

// CreateVault creates root/name with fresh metadata and registers it
func (m *Manager) CreateVault(root, name string) (*domain.Vault, error) {
	const op = "create vault"

	if err := domain.ValidateVaultName(name); err != nil {
		return nil, domain.NewVaultError(op, name, domain.ErrInvalidPath, err)
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, domain.NewVaultError(op, root, domain.ErrIO, err)
	}
	vaultPath := filepath.Join(root, name)

	if _, err := os.Lstat(vaultPath); err == nil {
		return nil, domain.NewVaultError(op, vaultPath, domain.ErrAlreadyExists, errDirectoryExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, domain.NewVaultError(op, vaultPath, domain.ErrIO, err)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, domain.NewVaultError(op, root, domain.ErrIO, err)
	}
	if err := os.Mkdir(vaultPath, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, domain.NewVaultError(op, vaultPath, domain.ErrAlreadyExists, errDirectoryExists)
		}
		return nil, domain.NewVaultError(op, vaultPath, domain.ErrIO, err)
	}

	metaDir := domain.MetadataDir(vaultPath)
	if err := os.Mkdir(metaDir, 0o755); err != nil {
		return nil, domain.NewVaultError(op, metaDir, domain.ErrIO, err)
	}
	if err := hideDir(metaDir); err != nil {
		m.log.Warn().Err(err).Str("path", metaDir).Msg("failed to mark metadata directory hidden")
	}

	now := m.now()
	meta, err := domain.NewVaultMetadata(now)
	if err != nil {
		return nil, domain.NewVaultError(op, vaultPath, domain.ErrIO, err)
	}
	if err := writeMetadata(op, vaultPath, meta); err != nil {
		return nil, err
	}

	if err := m.commit(func(r *domain.VaultRegistry) { r.Insert(meta.ID, vaultPath) }); err != nil {
		return nil, err
	}

	m.log.Info().Str("vault_id", meta.ID.String()).Str("path", vaultPath).Msg("vault created")
	v := domain.VaultFromMetadata(meta, vaultPath, now)
	return &v, nil
}

// OpenVault registers an existing vault directory under the id in its metadata
func (m *Manager) OpenVault(vaultPath string) (*domain.Vault, error) {
	const op = "open vault"

	vaultPath, err := filepath.Abs(vaultPath)
	if err != nil {
		return nil, domain.NewVaultError(op, vaultPath, domain.ErrIO, err)
	}

	meta, err := readMetadata(op, vaultPath)
	if err != nil {
		return nil, err
	}

	if err := m.commit(func(r *domain.VaultRegistry) { r.Insert(meta.ID, vaultPath) }); err != nil {
		return nil, err
	}

	v := domain.VaultFromMetadata(meta, vaultPath, m.now())
	return &v, nil
}

// ListVaults returns every registered vault that still validates.
// Entries whose directory or metadata is missing, corrupt or mismatched are skipped.
func (m *Manager) ListVaults() ([]domain.Vault, error) {
	m.mu.RLock()
	entries := m.registry.All()
	m.mu.RUnlock()

	vaults := make([]domain.Vault, 0, len(entries))
	for id, vaultPath := range entries {
		meta, err := readMetadata("list vaults", vaultPath)
		if err != nil {
			m.log.Debug().Err(err).Str("vault_id", id.String()).Msg("skipping unreadable vault")
			continue
		}
		if meta.ID != id {
			m.log.Debug().
				Str("vault_id", id.String()).
				Str("found_id", meta.ID.String()).
				Str("path", vaultPath).
				Msg("skipping vault with mismatched id")
			continue
		}
		vaults = append(vaults, domain.VaultFromMetadata(meta, vaultPath, m.now()))
	}

	slices.SortFunc(vaults, func(a, b domain.Vault) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return vaults, nil
}

// GetVault returns a registered vault after revalidating its metadata
func (m *Manager) GetVault(id uuid.UUID) (*domain.Vault, error) {
	return m.loadVault("get vault", id)
}

// DeleteVault removes the vault directory and its registry entry.
// Unknown ids are a no-op. The directory is only removed when it still holds
// this vault's metadata; otherwise just the registry entry goes.
func (m *Manager) DeleteVault(id uuid.UUID) error {
	const op = "delete vault"

	vaultPath, ok := m.lookup(id)
	if !ok {
		return nil
	}

	if err := m.removeVaultDir(op, id, vaultPath); err != nil {
		return err
	}

	if err := m.commit(func(r *domain.VaultRegistry) { r.Remove(id) }); err != nil {
		return err
	}

	m.log.Info().Str("vault_id", id.String()).Str("path", vaultPath).Msg("vault deleted")
	return nil
}

func (m *Manager) removeVaultDir(op string, id uuid.UUID, vaultPath string) error {
	if _, err := os.Lstat(vaultPath); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	meta, err := readMetadata(op, vaultPath)
	switch {
	case errors.Is(err, domain.ErrInvalidVault):
		m.log.Warn().
			Err(err).
			Str("vault_id", id.String()).
			Str("path", vaultPath).
			Msg("registered path is not a vault, removing registry entry only")
		return nil
	case err != nil:
		return err
	case meta.ID != id:
		m.log.Warn().
			Str("vault_id", id.String()).
			Str("found_id", meta.ID.String()).
			Str("path", vaultPath).
			Msg("registered path holds another vault, removing registry entry only")
		return nil
	}

	if err := os.RemoveAll(vaultPath); err != nil {
		return domain.NewVaultError(op, vaultPath, domain.ErrIO, err)
	}
	return nil
}

// RenameVault moves the vault directory to a sibling named newName
func (m *Manager) RenameVault(id uuid.UUID, newName string) (*domain.Vault, error) {
	const op = "rename vault"

	if err := domain.ValidateVaultName(newName); err != nil {
		return nil, domain.NewVaultError(op, newName, domain.ErrInvalidPath, err)
	}

	v, err := m.loadVault(op, id)
	if err != nil {
		return nil, err
	}

	newPath := filepath.Join(filepath.Dir(v.Path), newName)
	if _, err := os.Lstat(newPath); err == nil {
		return nil, domain.NewVaultError(op, newPath, domain.ErrAlreadyExists, errDirectoryExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, domain.NewVaultError(op, newPath, domain.ErrIO, err)
	}

	if err := os.Rename(v.Path, newPath); err != nil {
		return nil, domain.NewVaultError(op, v.Path, domain.ErrIO, err)
	}

	if err := m.commit(func(r *domain.VaultRegistry) { r.Insert(id, newPath) }); err != nil {
		return nil, err
	}

	v.Name = newName
	v.Path = newPath
	v.UpdatedAt = m.now().UTC()
	return v, nil
}

var (
	errDirectoryExists = errors.New("a directory with this name already exists")
	errRootEntry       = errors.New("path addresses the vault root")
)

// resolve validates rel and maps it onto the vault's directory
func (m *Manager) resolve(op string, id uuid.UUID, rel string, allowRoot bool) (vault *domain.Vault, abs, cleaned string, err error) {
	cleaned, err = domain.CleanEntryPath(rel)
	if err != nil {
		return nil, "", "", domain.NewVaultError(op, rel, domain.ErrInvalidPath, err)
	}
	if cleaned == "" && !allowRoot {
		return nil, "", "", domain.NewVaultError(op, rel, domain.ErrInvalidPath, errRootEntry)
	}

	vault, err = m.loadVault(op, id)
	if err != nil {
		return nil, "", "", err
	}
	return vault, domain.JoinEntryPath(vault.Path, cleaned), cleaned, nil
}

// ResolveEntryPath returns the absolute path of rel inside vault id
func (m *Manager) ResolveEntryPath(id uuid.UUID, rel string) (string, error) {
	_, abs, _, err := m.resolve("resolve entry", id, rel, false)
	return abs, err
}

// CreateDirectory creates rel and any missing parents
func (m *Manager) CreateDirectory(id uuid.UUID, rel string) error {
	const op = "create directory"

	_, abs, _, err := m.resolve(op, id, rel, false)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return domain.NewVaultError(op, abs, domain.ErrIO, err)
	}
	return nil
}

// CreateNote creates an empty note. An existing note is never truncated.
func (m *Manager) CreateNote(id uuid.UUID, rel string) error {
	const op = "create note"

	_, abs, _, err := m.resolve(op, id, rel, false)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return domain.NewVaultError(op, abs, domain.ErrIO, err)
	}

	f, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return domain.NewVaultError(op, abs, domain.ErrAlreadyExists, err)
	}
	if err != nil {
		return domain.NewVaultError(op, abs, domain.ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return domain.NewVaultError(op, abs, domain.ErrIO, err)
	}
	return nil
}

// EditNote replaces the content of rel, creating it and its parents if needed
func (m *Manager) EditNote(id uuid.UUID, rel, content string) error {
	const op = "edit note"

	_, abs, _, err := m.resolve(op, id, rel, false)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return domain.NewVaultError(op, abs, domain.ErrIO, err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return domain.NewVaultError(op, abs, domain.ErrIO, err)
	}
	return nil
}

// ReadNote returns the full content of rel
func (m *Manager) ReadNote(id uuid.UUID, rel string) (string, error) {
	const op = "read note"

	_, abs, _, err := m.resolve(op, id, rel, false)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", domain.NewVaultError(op, abs, domain.ErrIO, err)
	}
	return string(data), nil
}

// DeleteEntry removes a note or a directory tree. A missing entry is a no-op.
func (m *Manager) DeleteEntry(id uuid.UUID, rel string) error {
	const op = "delete entry"

	_, abs, _, err := m.resolve(op, id, rel, false)
	if err != nil {
		return err
	}

	info, err := os.Lstat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return domain.NewVaultError(op, abs, domain.ErrIO, err)
	}

	if info.IsDir() {
		err = os.RemoveAll(abs)
	} else {
		err = os.Remove(abs)
	}
	if err != nil {
		return domain.NewVaultError(op, abs, domain.ErrIO, err)
	}
	return nil
}

// RenameEntry moves oldRel to newRel, creating newRel's parents
func (m *Manager) RenameEntry(id uuid.UUID, oldRel, newRel string) error {
	const op = "rename entry"

	vault, oldAbs, _, err := m.resolve(op, id, oldRel, false)
	if err != nil {
		return err
	}
	newClean, err := domain.CleanEntryPath(newRel)
	if err != nil {
		return domain.NewVaultError(op, newRel, domain.ErrInvalidPath, err)
	}
	if newClean == "" {
		return domain.NewVaultError(op, newRel, domain.ErrInvalidPath, errRootEntry)
	}
	newAbs := domain.JoinEntryPath(vault.Path, newClean)

	if _, err := os.Lstat(newAbs); err == nil {
		return domain.NewVaultError(op, newAbs, domain.ErrAlreadyExists, fs.ErrExist)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return domain.NewVaultError(op, newAbs, domain.ErrIO, err)
	}

	if err := os.MkdirAll(filepath.Dir(newAbs), 0o755); err != nil {
		return domain.NewVaultError(op, newAbs, domain.ErrIO, err)
	}
	if err := os.Rename(oldAbs, newAbs); err != nil {
		return domain.NewVaultError(op, oldAbs, domain.ErrIO, err)
	}
	return nil
}

// ListEntries lists one level of dir (the vault root when dir is empty).
// Hidden names are skipped; directories sort first, then by name.
func (m *Manager) ListEntries(id uuid.UUID, dir string) ([]domain.Entry, error) {
	const op = "list entries"

	_, abs, cleaned, err := m.resolve(op, id, dir, true)
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		return nil, domain.NewVaultError(op, abs, domain.ErrIO, err)
	}

	entries := make([]domain.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if domain.IsHidden(de.Name()) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		full := filepath.Join(abs, de.Name())
		entries = append(entries, entryFromInfo(full, path.Join(cleaned, de.Name()), info))
	}

	domain.SortEntries(entries)
	return entries, nil
}
