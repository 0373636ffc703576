package dispatch

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/GioMjds/AzureaHotel/pkg/realtime"
)

// RealtimeStore is the slice of pkg/realtime the sink needs.
type RealtimeStore interface {
	Write(ctx context.Context, path string, value any) error
	Append(ctx context.Context, path string, value any) error
	SendBookingUpdate(ctx context.Context, update realtime.BookingUpdate) error
}

// RealtimeSink mirrors the transition into the realtime store under three
// keys: a global booking-update log, a per-guest status index, and an
// appended per-guest notification entry. The high-level SendBookingUpdate
// helper runs first and may duplicate some of this data; helper and mirror
// writes fail independently.
type RealtimeSink struct {
	store RealtimeStore
}

func NewRealtimeSink(store RealtimeStore) *RealtimeSink {
	return &RealtimeSink{store: store}
}

func (s *RealtimeSink) Name() string { return "realtime" }

func (s *RealtimeSink) Deliver(ctx context.Context, event Event) error {
	if s.store == nil {
		log.Printf("[realtime] no store configured, dropping update for booking %d", event.BookingID)
		return nil
	}

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	keep(s.store.SendBookingUpdate(ctx, realtime.BookingUpdate{
		BookingID: event.BookingID,
		UserID:    event.UserID,
		Status:    string(event.Status),
		Data:      event.Data(),
	}))

	bookingKey := strconv.FormatUint(uint64(event.BookingID), 10)
	keep(s.store.Write(ctx, realtime.Key("booking_updates", bookingKey), map[string]any{
		"booking_id": event.BookingID,
		"user_id":    event.UserID,
		"status":     string(event.Status),
		"timestamp":  event.Timestamp.Format(time.RFC3339),
		"data":       event.Data(),
	}))

	if event.UserID == nil {
		return firstErr
	}
	userKey := "user_" + strconv.FormatUint(uint64(*event.UserID), 10)

	keep(s.store.Write(ctx, realtime.Key("user_bookings", userKey, bookingKey), map[string]any{
		"booking_id":       event.BookingID,
		"status":           string(event.Status),
		"timestamp":        event.Timestamp.Format(time.RFC3339),
		"is_venue_booking": event.IsVenueBooking,
	}))

	keep(s.store.Append(ctx, realtime.Key("user_notifications", userKey), map[string]any{
		"type":       "booking_update",
		"booking_id": event.BookingID,
		"status":     string(event.Status),
		"message":    fmt.Sprintf("Booking #%d status updated to %s.", event.BookingID, event.Status),
		"timestamp":  event.Timestamp.UnixMilli(),
		"read":       false,
		"data":       event.Data(),
	}))

	return firstErr
}
