package models

import "time"

type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusReserved   BookingStatus = "reserved"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
	StatusRejected   BookingStatus = "rejected"
	StatusNoShow     BookingStatus = "no_show"
)

// NonBlockingStatuses are terminal for availability purposes: a booking in
// one of these states never holds a room or area against future queries.
var NonBlockingStatuses = []BookingStatus{
	StatusCancelled,
	StatusRejected,
	StatusCheckedOut,
	StatusNoShow,
}

// BlockingStatuses hold inventory and feed the admin active-booking count.
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusReserved,
	StatusCheckedIn,
}

// Blocks reports whether a booking in this status reserves its unit
// against overlapping availability queries.
func (s BookingStatus) Blocks() bool {
	for _, b := range BlockingStatuses {
		if s == b {
			return true
		}
	}
	return false
}

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReserved, StatusCheckedIn, StatusCheckedOut,
		StatusCancelled, StatusRejected, StatusNoShow:
		return true
	}
	return false
}

type Booking struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID *uint `gorm:"index" json:"user_id,omitempty"`

	// Exactly one of RoomID/AreaID is set, selected by IsVenueBooking.
	RoomID         *uint `gorm:"index" json:"room_id,omitempty"`
	AreaID         *uint `gorm:"index" json:"area_id,omitempty"`
	IsVenueBooking bool  `gorm:"not null;default:false" json:"is_venue_booking"`

	CheckInDate  time.Time `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"type:date;not null" json:"check_out_date"`
	// Time-of-day bounds, venue bookings only ("HH:MM").
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`

	Status BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	PaymentMethod  string  `gorm:"type:varchar(20)" json:"payment_method"`
	PaymentStatus  string  `gorm:"type:varchar(20)" json:"payment_status"`
	DownPayment    float64 `json:"down_payment"`
	TotalPrice     float64 `json:"total_price"`
	NumberOfGuests int     `json:"number_of_guests"`

	HasFoodOrder bool `gorm:"not null;default:false" json:"has_food_order"`

	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancellationDate   *time.Time `json:"cancellation_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Area *Area `gorm:"foreignKey:AreaID" json:"area,omitempty"`
}

// UnitID returns the id of whichever inventory unit the booking occupies.
func (b *Booking) UnitID() *uint {
	if b.IsVenueBooking {
		return b.AreaID
	}
	return b.RoomID
}

// UnitName resolves the display name of the booked room or area, empty when
// the related record is not loaded.
func (b *Booking) UnitName() string {
	if b.IsVenueBooking {
		if b.Area != nil {
			return b.Area.AreaName
		}
		return ""
	}
	if b.Room != nil {
		return b.Room.RoomName
	}
	return ""
}
