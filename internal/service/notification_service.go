package service

import (
	"context"

	"github.com/GioMjds/AzureaHotel/internal/models"
	"github.com/GioMjds/AzureaHotel/internal/repository"
)

// NotificationService reads back the audit rows the transition dispatcher
// writes, newest first.
type NotificationService interface {
	ListUserNotifications(ctx context.Context, actor Actor) ([]models.Notification, error)
}

type notificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notifications repository.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) ListUserNotifications(ctx context.Context, actor Actor) ([]models.Notification, error) {
	return s.notifications.FindByUser(ctx, actor.UserID)
}
