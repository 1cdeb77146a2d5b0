package application

import (
	"fmt"

	"inkrypt/internal/domain"
)

// Re-exported domain sentinels so adapters can classify failures without
// importing the domain package
var (
	ErrAlreadyExists = domain.ErrAlreadyExists
	ErrNotFound      = domain.ErrNotFound
	ErrInvalidVault  = domain.ErrInvalidVault
	ErrInvalidPath   = domain.ErrInvalidPath
	ErrIO            = domain.ErrIO
	ErrSerialization = domain.ErrSerialization
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
