package dispatch

import (
	"context"
	"fmt"

	"github.com/GioMjds/AzureaHotel/internal/models"
	"github.com/GioMjds/AzureaHotel/internal/repository"
)

// AuditSink persists a local notification row for admin/audit views.
// Bookings without a resolvable guest (anonymous or legacy rows) are
// skipped, not failed.
type AuditSink struct {
	notifications repository.NotificationRepository
}

func NewAuditSink(notifications repository.NotificationRepository) *AuditSink {
	return &AuditSink{notifications: notifications}
}

func (s *AuditSink) Name() string { return "audit" }

func (s *AuditSink) Deliver(ctx context.Context, event Event) error {
	if event.UserID == nil {
		return nil
	}

	bookingID := event.BookingID
	return s.notifications.Create(ctx, &models.Notification{
		UserID:           *event.UserID,
		BookingID:        &bookingID,
		NotificationType: "booking_update",
		Message:          fmt.Sprintf("Booking #%d status updated to %s.", event.BookingID, event.Status),
	})
}
