package commands

import (
	"context"
	"errors"
	"testing"

	"inkrypt/internal/application"
	"inkrypt/internal/domain"
	"inkrypt/internal/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testVault(name string) *domain.Vault {
	return &domain.Vault{ID: uuid.New(), Name: name, Path: "/vaults/" + name}
}

func TestCreateVaultCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)

	vault := testVault("notes")
	manager.EXPECT().CreateVault("/vaults", "notes").Return(vault, nil)

	result, err := NewCreateVaultCommand(manager, "notes", " /vaults ").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, vault, result.Vault)
	assert.Equal(t, "Created vault notes at /vaults/notes", result.Message)
}

func TestCreateVaultCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		vaultName string
		root      string
		field     string
	}{
		{name: "empty name", vaultName: "", root: "/vaults", field: "name"},
		{name: "name with separator", vaultName: "a/b", root: "/vaults", field: "name"},
		{name: "reserved name", vaultName: ".inkrypt", root: "/vaults", field: "name"},
		{name: "empty root", vaultName: "notes", root: "  ", field: "root"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			manager := mock.NewMockVaultManager(ctrl)

			_, err := NewCreateVaultCommand(manager, tt.vaultName, tt.root).Execute(context.Background())
			var verr *application.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCreateVaultCommand_AlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)

	manager.EXPECT().CreateVault("/vaults", "notes").
		Return(nil, domain.NewVaultError("create vault", "/vaults/notes", domain.ErrAlreadyExists, nil))

	_, err := NewCreateVaultCommand(manager, "notes", "/vaults").Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrAlreadyExists)
}

func TestListVaultsCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)

	manager.EXPECT().ListVaults().Return(nil, nil)

	result, err := NewListVaultsCommand(manager).Execute(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result.Vaults)
	assert.Empty(t, result.Vaults)
	assert.Equal(t, "Found 0 vault(s)", result.Message)
}

func TestOpenVaultCommand_StartsWatching(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)
	watcher := mock.NewMockVaultWatcher(ctrl)

	vault := testVault("notes")
	gomock.InOrder(
		manager.EXPECT().OpenVault("/vaults/notes").Return(vault, nil),
		watcher.EXPECT().Watch(vault.ID, vault.Path).Return(nil),
	)

	result, err := NewOpenVaultCommand(manager, watcher, "/vaults/notes").Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Watching)
	assert.Equal(t, vault, result.Vault)
}

func TestOpenVaultCommand_WatchFailureStillOpens(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)
	watcher := mock.NewMockVaultWatcher(ctrl)

	vault := testVault("notes")
	manager.EXPECT().OpenVault("/vaults/notes").Return(vault, nil)
	watcher.EXPECT().Watch(vault.ID, vault.Path).Return(errors.New("too many open files"))

	result, err := NewOpenVaultCommand(manager, watcher, "/vaults/notes").Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Watching)
	assert.Equal(t, vault, result.Vault)
}

func TestOpenVaultCommand_InvalidVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)
	watcher := mock.NewMockVaultWatcher(ctrl)

	manager.EXPECT().OpenVault("/tmp/plain").
		Return(nil, domain.NewVaultError("open vault", "/tmp/plain", domain.ErrInvalidVault, nil))

	_, err := NewOpenVaultCommand(manager, watcher, "/tmp/plain").Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrInvalidVault)
}

func TestCloseVaultCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	watcher := mock.NewMockVaultWatcher(ctrl)

	id := uuid.New()
	watcher.EXPECT().Unwatch(id)

	_, err := NewCloseVaultCommand(watcher, id.String()).Execute(context.Background())
	require.NoError(t, err)

	_, err = NewCloseVaultCommand(watcher, "not-a-uuid").Execute(context.Background())
	var verr *application.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "vaultID", verr.Field)
}

func TestDeleteVaultCommand_UnwatchesFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)
	watcher := mock.NewMockVaultWatcher(ctrl)

	id := uuid.New()
	gomock.InOrder(
		watcher.EXPECT().Unwatch(id),
		manager.EXPECT().DeleteVault(id).Return(nil),
	)

	_, err := NewDeleteVaultCommand(manager, watcher, id.String()).Execute(context.Background())
	require.NoError(t, err)
}

func TestRenameVaultCommand_Unwatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)
	watcher := mock.NewMockVaultWatcher(ctrl)

	vault := testVault("renamed")
	watcher.EXPECT().Current().Return(uuid.Nil, "", false)
	manager.EXPECT().RenameVault(vault.ID, "renamed").Return(vault, nil)

	result, err := NewRenameVaultCommand(manager, watcher, vault.ID.String(), "renamed").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Renamed vault to renamed", result.Message)
}

func TestRenameVaultCommand_WatchedVaultFollowsMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)
	watcher := mock.NewMockVaultWatcher(ctrl)

	vault := testVault("renamed")
	gomock.InOrder(
		watcher.EXPECT().Current().Return(vault.ID, "/vaults/old", true),
		watcher.EXPECT().Unwatch(vault.ID),
		manager.EXPECT().RenameVault(vault.ID, "renamed").Return(vault, nil),
		watcher.EXPECT().Watch(vault.ID, "/vaults/renamed").Return(nil),
	)

	_, err := NewRenameVaultCommand(manager, watcher, vault.ID.String(), "renamed").Execute(context.Background())
	require.NoError(t, err)
}

func TestRenameVaultCommand_FailureRestoresWatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)
	watcher := mock.NewMockVaultWatcher(ctrl)

	vault := testVault("old")
	gomock.InOrder(
		watcher.EXPECT().Current().Return(vault.ID, vault.Path, true),
		watcher.EXPECT().Unwatch(vault.ID),
		manager.EXPECT().RenameVault(vault.ID, "taken").
			Return(nil, domain.NewVaultError("rename vault", "/vaults/taken", domain.ErrAlreadyExists, nil)),
		manager.EXPECT().GetVault(vault.ID).Return(vault, nil),
		watcher.EXPECT().Watch(vault.ID, vault.Path).Return(nil),
	)

	_, err := NewRenameVaultCommand(manager, watcher, vault.ID.String(), "taken").Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrAlreadyExists)
}

func TestRenameVaultCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		vaultID string
		newName string
		errMsg  string
	}{
		{name: "missing id", vaultID: "", newName: "x", errMsg: "vault ID is required"},
		{name: "bad id", vaultID: "123", newName: "x", errMsg: "invalid vault ID"},
		{name: "missing name", vaultID: uuid.NewString(), newName: "", errMsg: "name is required"},
		{name: "separator", vaultID: uuid.NewString(), newName: "../x", errMsg: "path separator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &RenameVaultCommand{VaultID: tt.vaultID, NewName: tt.newName}
			err := cmd.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
