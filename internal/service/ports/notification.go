package ports

import (
	"context"

	"github.com/luksdev/travels-corp/internal/domain"
)

// StatusNotifier receives status-change events for asynchronous delivery.
// Publish must not block the calling request.
type StatusNotifier interface {
	Publish(event domain.StatusChangeEvent)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
}
