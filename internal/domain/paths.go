package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// ErrInvalidName is returned for vault names that are not a single directory name
var ErrInvalidName = errors.New("invalid vault name")

// IsHidden reports whether a file name is hidden from listings
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// CleanEntryPath normalizes a vault-relative entry path to '/' separators and
// rejects anything that would resolve outside the vault root or inside the
// metadata directory. The vault root itself is returned as "".
func CleanEntryPath(rel string) (string, error) {
	slashed := strings.ReplaceAll(rel, `\`, "/")
	if strings.HasPrefix(slashed, "/") || filepath.IsAbs(rel) || filepath.VolumeName(rel) != "" {
		return "", fmt.Errorf("%q is absolute", rel)
	}

	cleaned := path.Clean(slashed)
	if cleaned == "." {
		return "", nil
	}
	if !fs.ValidPath(cleaned) {
		return "", fmt.Errorf("%q escapes the vault root", rel)
	}

	first, _, _ := strings.Cut(cleaned, "/")
	if first == MetadataDirName {
		return "", fmt.Errorf("%q is inside %s", rel, MetadataDirName)
	}
	return cleaned, nil
}

// JoinEntryPath joins a cleaned entry path onto a vault root
func JoinEntryPath(vaultPath, cleaned string) string {
	if cleaned == "" {
		return vaultPath
	}
	return filepath.Join(vaultPath, filepath.FromSlash(cleaned))
}

// HasMetadataComponent reports whether any element of p equals the metadata directory name
func HasMetadataComponent(p string) bool {
	for _, part := range strings.Split(filepath.ToSlash(p), "/") {
		if part == MetadataDirName {
			return true
		}
	}
	return false
}

// RelativeEventPath expresses an absolute path relative to root with '/' separators.
// The root itself is "". It reports false when p is not inside root.
func RelativeEventPath(root, p string) (string, bool) {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	switch {
	case rel == ".":
		return "", true
	case rel == "..", strings.HasPrefix(rel, "../"):
		return "", false
	}
	return rel, true
}

// ValidateVaultName checks that name can be used as a single directory name
func ValidateVaultName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	case trimmed != name:
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidName, name)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case name == MetadataDirName:
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	}
	return nil
}
