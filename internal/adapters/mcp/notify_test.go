package mcp

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"inkrypt/internal/domain"
	"inkrypt/internal/mock"
	"inkrypt/internal/ports"
)

type sentNotification struct {
	method string
	params map[string]any
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (f *fakeNotifier) SendNotificationToAllClients(method string, params map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentNotification{method: method, params: params})
}

func TestForwardChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	watcher := mock.NewMockVaultWatcher(ctrl)
	notifier := &fakeNotifier{}

	var handler ports.ChangeHandler
	cancelled := false
	watcher.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(h ports.ChangeHandler) func() {
		handler = h
		return func() { cancelled = true }
	})

	cancel := ForwardChanges(notifier, watcher)
	require.NotNil(t, handler)

	batch := []domain.FileSystemEvent{
		{EventType: domain.FileEventModify, Path: "a.md", VaultID: uuid.New()},
	}
	handler(batch)
	handler(nil)

	require.Len(t, notifier.sent, 1, "empty batches are not forwarded")
	assert.Equal(t, "notifications/vault-changes", notifier.sent[0].method)
	assert.Equal(t, batch, notifier.sent[0].params["events"])

	cancel()
	assert.True(t, cancelled)
}
