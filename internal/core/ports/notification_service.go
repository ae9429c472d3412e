package ports

import (
	"context"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
)

type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	Summary(ctx context.Context) (*domain.Summary, error)
}
