package application

import (
	"fmt"
	"strings"

	"inkrypt/internal/domain"

	"github.com/google/uuid"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "vaultID" -> "vault ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"vaultID": "vault ID",
		"oldPath": "old path",
		"newPath": "new path",
		"newName": "new name",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ParseVaultID parses a vault identifier, reporting malformed input as a ValidationError
func ParseVaultID(fieldName, raw string) (uuid.UUID, error) {
	if err := ValidateRequired(fieldName, raw); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("invalid %s: %s", formatFieldName(fieldName), raw),
		}
	}
	return id, nil
}

// ValidateVaultName checks that name is usable as a single directory name
func ValidateVaultName(fieldName, name string) error {
	if err := domain.ValidateVaultName(name); err != nil {
		return &ValidationError{Field: fieldName, Message: err.Error()}
	}
	return nil
}

// ValidateEntryPath checks that rel stays inside the vault. The vault root
// itself ("" or ".") is only accepted when allowRoot is set.
func ValidateEntryPath(fieldName, rel string, allowRoot bool) error {
	cleaned, err := domain.CleanEntryPath(rel)
	if err != nil {
		return &ValidationError{Field: fieldName, Message: err.Error()}
	}
	if cleaned == "" && !allowRoot {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}
