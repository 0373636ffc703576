package dispatch

import (
	"time"

	"github.com/GioMjds/AzureaHotel/internal/models"
)

// Event is the immutable record of one committed booking transition. It is
// passed by value so every sink works on its own copy.
type Event struct {
	BookingID      uint
	UserID         *uint
	PreviousStatus models.BookingStatus
	Status         models.BookingStatus
	IsVenueBooking bool
	UnitID         *uint
	UnitName       string
	TotalPrice     float64
	NumberOfGuests int
	Timestamp      time.Time
}

func NewEvent(booking *models.Booking, previous models.BookingStatus) Event {
	return Event{
		BookingID:      booking.ID,
		UserID:         booking.UserID,
		PreviousStatus: previous,
		Status:         booking.Status,
		IsVenueBooking: booking.IsVenueBooking,
		UnitID:         booking.UnitID(),
		UnitName:       booking.UnitName(),
		TotalPrice:     booking.TotalPrice,
		NumberOfGuests: booking.NumberOfGuests,
		Timestamp:      time.Now(),
	}
}

// Data flattens the booking metadata the way mobile clients expect it.
func (e Event) Data() map[string]any {
	data := map[string]any{
		"is_venue_booking": e.IsVenueBooking,
		"total_price":      e.TotalPrice,
		"number_of_guests": e.NumberOfGuests,
	}
	if e.IsVenueBooking {
		if e.UnitID != nil {
			data["area_id"] = *e.UnitID
		}
		if e.UnitName != "" {
			data["area_name"] = e.UnitName
		}
	} else {
		if e.UnitID != nil {
			data["room_id"] = *e.UnitID
		}
		if e.UnitName != "" {
			data["room_name"] = e.UnitName
		}
	}
	return data
}
