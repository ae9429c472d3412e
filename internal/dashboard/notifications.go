package dashboard

import (
	"context"
	"sync"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
	"github.com/gridsentry/genset-monitoring/pkg/client"
)

// NotificationBell holds one user's notifications. It loads nothing until the
// current user is known. Mark-as-read is optimistic: the local flag flips
// immediately, then the mutation runs and the list is re-fetched, so server
// truth always wins within one refresh cycle.
type NotificationBell struct {
	mu     sync.Mutex
	api    *client.Client
	notify NoticeFunc
	userID string
	items  []domain.Notification
}

func NewNotificationBell(api *client.Client, notify NoticeFunc) *NotificationBell {
	return &NotificationBell{api: api, notify: notify}
}

// SetUser binds the bell to the resolved current user.
func (b *NotificationBell) SetUser(user *domain.User) {
	b.mu.Lock()
	if user != nil {
		b.userID = user.ID
	} else {
		b.userID = ""
		b.items = nil
	}
	b.mu.Unlock()
}

// Load fetches the user's notifications. A no-op until SetUser has run.
func (b *NotificationBell) Load(ctx context.Context) {
	b.mu.Lock()
	userID := b.userID
	b.mu.Unlock()
	if userID == "" {
		return
	}

	items, err := b.api.ListNotifications(ctx, userID)
	if err != nil {
		b.notify.post(LevelError, "Error fetching notifications", err.Error())
		return
	}

	b.mu.Lock()
	b.items = items
	b.mu.Unlock()
}

// MarkRead flips the flag locally, issues the mutation, and re-fetches in
// every outcome.
func (b *NotificationBell) MarkRead(ctx context.Context, id string) {
	b.mu.Lock()
	for i := range b.items {
		if b.items[i].ID == id {
			b.items[i].Read = true
			break
		}
	}
	b.mu.Unlock()

	if err := b.api.MarkNotificationRead(ctx, id); err != nil {
		b.notify.post(LevelError, "Could not mark notification read", err.Error())
	}

	b.Load(ctx)
}

// Items returns a copy of the held notifications.
func (b *NotificationBell) Items() []domain.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Notification, len(b.items))
	copy(out, b.items)
	return out
}

// UnreadCount counts held notifications with read == false. Recomputed on
// every call, never cached.
func (b *NotificationBell) UnreadCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, item := range b.items {
		if !item.Read {
			n++
		}
	}
	return n
}
