package dto

import (
	"time"

	"github.com/GioMjds/AzureaHotel/internal/craveon"
	"github.com/GioMjds/AzureaHotel/internal/service"
)

const dateLayout = "2006-01-02"

// ActorInfo is the caller identity resolved by the (external) auth layer
// and forwarded with each mutating request.
type ActorInfo struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
}

func (a ActorInfo) Actor() service.Actor {
	role := a.Role
	if role == "" {
		role = service.RoleGuest
	}
	return service.Actor{UserID: a.UserID, Role: role, Name: a.Name, Email: a.Email}
}

type CreateBookingRequest struct {
	ActorInfo
	RoomID         *uint   `json:"room_id,omitempty"`
	AreaID         *uint   `json:"area_id,omitempty"`
	IsVenueBooking bool    `json:"is_venue_booking"`
	CheckInDate    string  `json:"check_in_date"`
	CheckOutDate   string  `json:"check_out_date"`
	StartTime      string  `json:"start_time,omitempty"`
	EndTime        string  `json:"end_time,omitempty"`
	Status         string  `json:"status,omitempty"`
	PaymentMethod  string  `json:"payment_method,omitempty"`
	DownPayment    float64 `json:"down_payment,omitempty"`
	TotalPrice     float64 `json:"total_price,omitempty"`
	NumberOfGuests int     `json:"number_of_guests,omitempty"`
}

type CancelBookingRequest struct {
	ActorInfo
	Reason string `json:"reason"`
}

type TransitionRequest struct {
	ActorInfo
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

type CreateReviewRequest struct {
	ActorInfo
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type PlaceOrderRequest struct {
	ActorInfo
	BookingID    uint               `json:"booking_id"`
	Items        []craveon.CartLine `json:"items"`
	PaymentProof string             `json:"payment_proof"`
}

type ReviewOrderRequest struct {
	ActorInfo
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// ParseDate parses the YYYY-MM-DD wire format used for stay dates.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
