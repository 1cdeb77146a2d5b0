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

func TestSearchNotesCommand_OpensAndRebuilds(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)
	index := mock.NewMockNoteIndex(ctrl)

	vault := testVault("notes")
	hits := []domain.SearchHit{{Name: "plan.md", Path: "plan.md", EntryType: domain.EntryTypeNote}}
	gomock.InOrder(
		manager.EXPECT().GetVault(vault.ID).Return(vault, nil),
		index.EXPECT().VaultID().Return(uuid.Nil),
		index.EXPECT().Open(vault.ID, vault.Path).Return(nil),
		index.EXPECT().NeedsFullRebuild().Return(true),
		index.EXPECT().SyncFull().Return(&domain.SyncStats{EntriesAdded: 1}, nil),
		index.EXPECT().Search("plan", DefaultSearchLimit).Return(hits, nil),
	)

	result, err := NewSearchNotesCommand(manager, index, vault.ID.String(), " plan ", 0).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, hits, result.Hits)
	assert.Equal(t, 1, result.Stats.EntriesAdded)
	assert.Equal(t, `Found 1 match(es) for "plan"`, result.Message)
}

func TestSearchNotesCommand_ReusesOpenIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)
	index := mock.NewMockNoteIndex(ctrl)

	vault := testVault("notes")
	manager.EXPECT().GetVault(vault.ID).Return(vault, nil)
	index.EXPECT().VaultID().Return(vault.ID)
	index.EXPECT().NeedsFullRebuild().Return(false)
	index.EXPECT().SyncIncremental().Return(&domain.SyncStats{}, nil)
	index.EXPECT().Search("x", 5).Return(nil, nil)

	result, err := NewSearchNotesCommand(manager, index, vault.ID.String(), "x", 5).Execute(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result.Hits)
	assert.Empty(t, result.Hits)
}

func TestSearchNotesCommand_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)
	index := mock.NewMockNoteIndex(ctrl)

	_, err := NewSearchNotesCommand(manager, index, uuid.NewString(), "  ", 0).Execute(context.Background())
	var verr *application.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "query", verr.Field)

	_, err = NewSearchNotesCommand(manager, index, uuid.NewString(), "x", -1).Execute(context.Background())
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "limit", verr.Field)

	vault := testVault("notes")
	manager.EXPECT().GetVault(vault.ID).Return(vault, nil)
	index.EXPECT().VaultID().Return(uuid.Nil)
	index.EXPECT().Open(vault.ID, vault.Path).Return(errors.New("disk full"))

	_, err = NewSearchNotesCommand(manager, index, vault.ID.String(), "x", 0).Execute(context.Background())
	assert.ErrorContains(t, err, "failed to open index: disk full")
}
