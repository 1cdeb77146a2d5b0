package filesystem

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"inkrypt/internal/domain"
)

var errMetadataMissing = errors.New("vault.json not found")

func readMetadata(op, vaultPath string) (domain.VaultMetadata, error) {
	data, err := os.ReadFile(domain.MetadataPath(vaultPath))
	if errors.Is(err, fs.ErrNotExist) {
		return domain.VaultMetadata{}, domain.NewVaultError(op, vaultPath, domain.ErrInvalidVault, errMetadataMissing)
	}
	if err != nil {
		return domain.VaultMetadata{}, domain.NewVaultError(op, vaultPath, domain.ErrIO, err)
	}

	var meta domain.VaultMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return domain.VaultMetadata{}, domain.NewVaultError(op, vaultPath, domain.ErrInvalidVault, err)
	}
	return meta, nil
}

func writeMetadata(op, vaultPath string, meta domain.VaultMetadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return domain.NewVaultError(op, vaultPath, domain.ErrSerialization, err)
	}
	if err := writeFileAtomic(domain.MetadataPath(vaultPath), data, 0o644); err != nil {
		return domain.NewVaultError(op, vaultPath, domain.ErrIO, err)
	}
	return nil
}
