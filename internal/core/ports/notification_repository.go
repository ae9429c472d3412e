package ports

import (
	"context"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
)

type NotificationRepository interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	CountUnread(ctx context.Context) (int64, error)
}
