package dispatch

import (
	"context"
	"log"

	"github.com/GioMjds/AzureaHotel/internal/models"
	"github.com/GioMjds/AzureaHotel/pkg/broadcast"
)

// ActiveCounter recounts bookings currently holding inventory. Satisfied by
// repository.BookingRepository.
type ActiveCounter interface {
	CountByStatuses(ctx context.Context, statuses []models.BookingStatus) (int64, error)
}

// Broadcaster publishes to all current subscribers of a channel. Satisfied
// by broadcast.Publisher.
type Broadcaster interface {
	Publish(channel string, payload any) error
}

// ActiveCountUpdate is the admin dashboard payload.
type ActiveCountUpdate struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// BroadcastSink pushes the number of active bookings to the admin channel
// on every transition. The count is always recomputed from the booking
// store — never maintained incrementally — so concurrent writers cannot
// make it drift.
type BroadcastSink struct {
	counter   ActiveCounter
	publisher Broadcaster
}

func NewBroadcastSink(counter ActiveCounter, publisher Broadcaster) *BroadcastSink {
	return &BroadcastSink{counter: counter, publisher: publisher}
}

func (s *BroadcastSink) Name() string { return "broadcast" }

func (s *BroadcastSink) Deliver(ctx context.Context, event Event) error {
	count, err := s.counter.CountByStatuses(ctx, models.BlockingStatuses)
	if err != nil {
		return err
	}

	if s.publisher == nil {
		log.Printf("[broadcast] no channel configured, active count is %d", count)
		return nil
	}

	return s.publisher.Publish(broadcast.AdminChannel, ActiveCountUpdate{
		Type:  "active_count_update",
		Count: count,
	})
}
