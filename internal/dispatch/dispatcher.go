package dispatch

import (
	"context"
	"log"

	"github.com/GioMjds/AzureaHotel/internal/models"
)

// Sink is one downstream consumer of booking transition events. Sinks are
// independent: the dispatcher contains each sink's failure so that one
// failing sink never prevents or delays the others.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, event Event) error
}

type Dispatcher struct {
	sinks []Sink
}

func NewDispatcher(sinks ...Sink) *Dispatcher {
	return &Dispatcher{sinks: sinks}
}

// BookingCommitted is invoked by the booking service after every committed
// write. It fires only when the booking was created or its status actually
// changed; a save touching unrelated fields is a no-op. It never returns an
// error and never panics out — the triggering save has already committed.
func (d *Dispatcher) BookingCommitted(ctx context.Context, booking *models.Booking, created bool, previous models.BookingStatus) {
	if d == nil {
		return
	}
	if !created && previous == booking.Status {
		return
	}

	event := NewEvent(booking, previous)
	for _, sink := range d.sinks {
		d.deliver(ctx, sink, event)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, sink Sink, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[dispatch] sink %s panicked for booking %d: %v", sink.Name(), event.BookingID, r)
		}
	}()

	if err := sink.Deliver(ctx, event); err != nil {
		log.Printf("[dispatch] sink %s failed for booking %d: %v", sink.Name(), event.BookingID, err)
	}
}
