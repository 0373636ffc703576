package dto

import (
	"time"

	"github.com/GioMjds/AzureaHotel/internal/models"
)

type BookingResponse struct {
	ID                 uint                 `json:"id"`
	UserID             *uint                `json:"user_id,omitempty"`
	RoomID             *uint                `json:"room_id,omitempty"`
	AreaID             *uint                `json:"area_id,omitempty"`
	IsVenueBooking     bool                 `json:"is_venue_booking"`
	UnitName           string               `json:"unit_name,omitempty"`
	CheckInDate        string               `json:"check_in_date"`
	CheckOutDate       string               `json:"check_out_date"`
	StartTime          string               `json:"start_time,omitempty"`
	EndTime            string               `json:"end_time,omitempty"`
	Status             models.BookingStatus `json:"status"`
	PaymentMethod      string               `json:"payment_method,omitempty"`
	PaymentStatus      string               `json:"payment_status,omitempty"`
	DownPayment        float64              `json:"down_payment"`
	TotalPrice         float64              `json:"total_price"`
	NumberOfGuests     int                  `json:"number_of_guests"`
	HasFoodOrder       bool                 `json:"has_food_order"`
	CancellationReason string               `json:"cancellation_reason,omitempty"`
	CancellationDate   *time.Time           `json:"cancellation_date,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		RoomID:             b.RoomID,
		AreaID:             b.AreaID,
		IsVenueBooking:     b.IsVenueBooking,
		UnitName:           b.UnitName(),
		CheckInDate:        b.CheckInDate.Format(dateLayout),
		CheckOutDate:       b.CheckOutDate.Format(dateLayout),
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		Status:             b.Status,
		PaymentMethod:      b.PaymentMethod,
		PaymentStatus:      b.PaymentStatus,
		DownPayment:        b.DownPayment,
		TotalPrice:         b.TotalPrice,
		NumberOfGuests:     b.NumberOfGuests,
		HasFoodOrder:       b.HasFoodOrder,
		CancellationReason: b.CancellationReason,
		CancellationDate:   b.CancellationDate,
		CreatedAt:          b.CreatedAt,
	}
}

type AvailabilityResponse struct {
	Rooms []models.Room `json:"rooms"`
	Areas []models.Area `json:"areas"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
