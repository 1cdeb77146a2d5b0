package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the vault error taxonomy
var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("vault not found")
	ErrInvalidVault  = errors.New("not a valid vault")
	ErrInvalidPath   = errors.New("invalid entry path")
	ErrIO            = errors.New("filesystem operation failed")
	ErrSerialization = errors.New("serialization failed")
)

// VaultError describes a failed vault operation.
// errors.Is matches it against its Kind; errors.Unwrap yields the cause.
type VaultError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *VaultError) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	msg = fmt.Sprintf("%s: %v", msg, e.Kind)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *VaultError) Is(target error) bool {
	return target == e.Kind
}

func (e *VaultError) Unwrap() error {
	return e.Err
}

// NewVaultError builds a VaultError of the given kind
func NewVaultError(op, path string, kind, err error) *VaultError {
	return &VaultError{Op: op, Path: path, Kind: kind, Err: err}
}
