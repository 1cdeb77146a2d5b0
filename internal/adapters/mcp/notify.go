package mcp

import (
	"inkrypt/internal/domain"
	"inkrypt/internal/ports"
)

// ChangesNotification is the method name of change batch notifications
const ChangesNotification = "notifications/vault-changes"

// notifier is the part of *server.MCPServer used to push notifications
type notifier interface {
	SendNotificationToAllClients(method string, params map[string]any)
}

// ForwardChanges pushes every batch emitted by the watcher to all connected
// clients as {"events": [...]}. The returned func stops forwarding.
func ForwardChanges(s notifier, watcher ports.VaultWatcher) (cancel func()) {
	return watcher.Subscribe(func(batch []domain.FileSystemEvent) {
		if len(batch) == 0 {
			return
		}
		s.SendNotificationToAllClients(ChangesNotification, map[string]any{"events": batch})
	})
}
