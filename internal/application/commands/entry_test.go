package commands

import (
	"context"
	"testing"

	"inkrypt/internal/application"
	"inkrypt/internal/domain"
	"inkrypt/internal/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type entryMocks struct {
	manager *mock.MockVaultManager
	pending *mock.MockPendingMarker
	id      uuid.UUID
}

func newEntryMocks(t *testing.T) *entryMocks {
	ctrl := gomock.NewController(t)
	return &entryMocks{
		manager: mock.NewMockVaultManager(ctrl),
		pending: mock.NewMockPendingMarker(ctrl),
		id:      uuid.New(),
	}
}

// expectPending expects rel to be resolved and marked before the mutation
func (m *entryMocks) expectPending(rel string) *gomock.Call {
	return m.manager.EXPECT().ResolveEntryPath(m.id, rel).Return("/v/"+rel, nil)
}

func TestMutatingEntryCommands_MarkPendingBeforeMutation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *entryMocks) *gomock.Call
		run    func(m *entryMocks) (*EntryResult, error)
	}{
		{
			name: "create note",
			mutate: func(m *entryMocks) *gomock.Call {
				return m.manager.EXPECT().CreateNote(m.id, "a.md").Return(nil)
			},
			run: func(m *entryMocks) (*EntryResult, error) {
				return NewCreateNoteCommand(m.manager, m.pending, m.id.String(), "a.md").Execute(context.Background())
			},
		},
		{
			name: "edit note",
			mutate: func(m *entryMocks) *gomock.Call {
				return m.manager.EXPECT().EditNote(m.id, "a.md", "body").Return(nil)
			},
			run: func(m *entryMocks) (*EntryResult, error) {
				return NewEditNoteCommand(m.manager, m.pending, m.id.String(), "a.md", "body").Execute(context.Background())
			},
		},
		{
			name: "create directory",
			mutate: func(m *entryMocks) *gomock.Call {
				return m.manager.EXPECT().CreateDirectory(m.id, "a.md").Return(nil)
			},
			run: func(m *entryMocks) (*EntryResult, error) {
				return NewCreateDirectoryCommand(m.manager, m.pending, m.id.String(), "a.md").Execute(context.Background())
			},
		},
		{
			name: "delete entry",
			mutate: func(m *entryMocks) *gomock.Call {
				return m.manager.EXPECT().DeleteEntry(m.id, "a.md").Return(nil)
			},
			run: func(m *entryMocks) (*EntryResult, error) {
				return NewDeleteEntryCommand(m.manager, m.pending, m.id.String(), "a.md").Execute(context.Background())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newEntryMocks(t)
			gomock.InOrder(
				m.expectPending("a.md"),
				m.pending.EXPECT().MarkPending("/v/a.md"),
				tt.mutate(m),
			)

			result, err := tt.run(m)
			require.NoError(t, err)
			assert.Equal(t, "a.md", result.Path)
		})
	}
}

func TestRenameEntryCommand_MarksBothPaths(t *testing.T) {
	m := newEntryMocks(t)
	gomock.InOrder(
		m.expectPending("old.md"),
		m.expectPending("dir/new.md"),
		m.pending.EXPECT().MarkPending("/v/old.md", "/v/dir/new.md"),
		m.manager.EXPECT().RenameEntry(m.id, "old.md", "dir/new.md").Return(nil),
	)

	result, err := NewRenameEntryCommand(m.manager, m.pending, m.id.String(), "old.md", "dir/new.md").
		Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Renamed old.md to dir/new.md", result.Message)
}

func TestRenameEntryCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		oldPath string
		newPath string
		field   string
	}{
		{name: "missing old", oldPath: "", newPath: "b.md", field: "oldPath"},
		{name: "escaping new", oldPath: "a.md", newPath: "../b.md", field: "newPath"},
		{name: "metadata target", oldPath: "a.md", newPath: ".inkrypt/b.md", field: "newPath"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &RenameEntryCommand{VaultID: uuid.NewString(), OldPath: tt.oldPath, NewPath: tt.newPath}
			var verr *application.ValidationError
			require.ErrorAs(t, cmd.Validate(), &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestMutatingEntryCommand_ResolveFailureSkipsMutation(t *testing.T) {
	m := newEntryMocks(t)
	m.manager.EXPECT().ResolveEntryPath(m.id, "a.md").
		Return("", domain.NewVaultError("resolve entry", "a.md", domain.ErrNotFound, nil))

	_, err := NewDeleteEntryCommand(m.manager, m.pending, m.id.String(), "a.md").Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestEntryCommands_RejectBadPaths(t *testing.T) {
	m := newEntryMocks(t)
	id := m.id.String()

	_, err := NewCreateNoteCommand(m.manager, m.pending, id, "../escape.md").Execute(context.Background())
	assert.Error(t, err)
	_, err = NewDeleteEntryCommand(m.manager, m.pending, id, "").Execute(context.Background())
	assert.Error(t, err)
	_, err = NewReadNoteCommand(m.manager, id, "/etc/passwd").Execute(context.Background())
	assert.Error(t, err)
	_, err = NewEditNoteCommand(m.manager, m.pending, "nope", "a.md", "x").Execute(context.Background())
	assert.Error(t, err)
}

func TestReadNoteCommand(t *testing.T) {
	m := newEntryMocks(t)
	m.manager.EXPECT().ReadNote(m.id, "a.md").Return("hello", nil)

	result, err := NewReadNoteCommand(m.manager, m.id.String(), "a.md").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", result.Content)
}

func TestListEntriesCommand(t *testing.T) {
	m := newEntryMocks(t)
	entries := []domain.Entry{
		{Name: "A", Path: "A", EntryType: domain.EntryTypeDirectory},
		{Name: "a.md", Path: "a.md", EntryType: domain.EntryTypeNote},
	}
	m.manager.EXPECT().ListEntries(m.id, "").Return(entries, nil)
	m.manager.EXPECT().ListEntries(m.id, "empty").Return(nil, nil)

	result, err := NewListEntriesCommand(m.manager, m.id.String(), "").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entries, result.Entries)

	result, err = NewListEntriesCommand(m.manager, m.id.String(), "empty").Execute(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result.Entries)
	assert.Empty(t, result.Entries)
}
