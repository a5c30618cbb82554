package service

import (
	"context"

	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/luksdev/travels-corp/internal/service/ports"
)

type NotificationService struct {
	repo ports.NotificationRepo
}

func NewNotificationService(repo ports.NotificationRepo) *NotificationService {
	return &NotificationService{repo: repo}
}

// ListByUser returns the caller's own notification log, newest first.
func (s *NotificationService) ListByUser(ctx context.Context, caller *domain.User) ([]*domain.Notification, error) {
	return s.repo.ListByUser(ctx, caller.ID)
}
