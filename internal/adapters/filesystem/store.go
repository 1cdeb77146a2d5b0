package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"inkrypt/internal/domain"
	"inkrypt/internal/logger"
)

// registryStore persists VaultRegistry snapshots to a single JSON file.
// Snapshots carry a sequence number; a snapshot older than the last one
// written is skipped so the file never regresses.
type registryStore struct {
	path string
	log  *logger.Logger
	now  func() time.Time

	mu      sync.Mutex
	written uint64
}

func newRegistryStore(path string, log *logger.Logger, now func() time.Time) *registryStore {
	return &registryStore{path: path, log: log, now: now}
}

// load reads the registry file. A missing file yields an empty registry.
// An unparseable file is moved aside as <path>.corrupt-<unix> and also
// yields an empty registry.
func (s *registryStore) load() (*domain.VaultRegistry, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, domain.NewVaultError("load registry", s.path, domain.ErrIO, err)
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewVaultRegistry(), nil
	}
	if err != nil {
		return nil, domain.NewVaultError("load registry", s.path, domain.ErrIO, err)
	}

	var reg domain.VaultRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		backup := fmt.Sprintf("%s.corrupt-%d", s.path, s.now().Unix())
		if rerr := os.Rename(s.path, backup); rerr != nil {
			s.log.Warn().Err(rerr).Str("path", s.path).Msg("failed to preserve corrupt vault registry")
			backup = ""
		}
		s.log.Warn().
			Err(err).
			Str("path", s.path).
			Str("backup", backup).
			Msg("vault registry is corrupt, starting with an empty registry")
		return domain.NewVaultRegistry(), nil
	}
	if reg.Vaults == nil {
		return domain.NewVaultRegistry(), nil
	}
	return &reg, nil
}

// save writes snap if seq is newer than anything written so far
func (s *registryStore) save(snap *domain.VaultRegistry, seq uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.written {
		s.log.Debug().Uint64("seq", seq).Uint64("written", s.written).Msg("skipping stale registry snapshot")
		return nil
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return domain.NewVaultError("save registry", s.path, domain.ErrSerialization, err)
	}
	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return domain.NewVaultError("save registry", s.path, domain.ErrIO, err)
	}
	s.written = seq
	return nil
}

// writeFileAtomic replaces path with data via a sibling temp file and rename
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
