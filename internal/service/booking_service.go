package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GioMjds/AzureaHotel/internal/models"
	"github.com/GioMjds/AzureaHotel/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrUnitNotFound         = errors.New("room or area not found")
	ErrUnitRequired         = errors.New("exactly one of room or area must be set")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrStatusNotAllowed     = errors.New("only staff may set an initial booking status")
	ErrNotBookingOwner      = errors.New("you do not have permission to cancel this booking")
	ErrGuestCancelPending   = errors.New("you can only cancel bookings that are pending")
	ErrAlreadyCancelled     = errors.New("booking is already cancelled")
	ErrCancelReasonRequired = errors.New("a cancellation reason is required")
	ErrInvalidTransition    = errors.New("booking is not in a state that allows this transition")
	ErrStaffOnly            = errors.New("only staff may perform this action")
)

// TransitionNotifier receives the post-commit hook for every booking write.
// Satisfied by dispatch.Dispatcher.
type TransitionNotifier interface {
	BookingCommitted(ctx context.Context, booking *models.Booking, created bool, previous models.BookingStatus)
}

type CreateBookingInput struct {
	RoomID         *uint
	AreaID         *uint
	IsVenueBooking bool
	CheckInDate    time.Time
	CheckOutDate   time.Time
	StartTime      string
	EndTime        string
	// Status is honored for trusted/staff callers only; self-service
	// bookings always enter pending.
	Status         models.BookingStatus
	PaymentMethod  string
	DownPayment    float64
	TotalPrice     float64
	NumberOfGuests int
}

type BookingService interface {
	CreateBooking(ctx context.Context, actor Actor, input CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, actor Actor, status *models.BookingStatus) ([]models.Booking, error)
	CancelBooking(ctx context.Context, id uint, actor Actor, reason string) (*models.Booking, error)

	// Staff lifecycle transitions.
	ReserveBooking(ctx context.Context, id uint, actor Actor) (*models.Booking, error)
	RejectBooking(ctx context.Context, id uint, actor Actor) (*models.Booking, error)
	CheckIn(ctx context.Context, id uint, actor Actor) (*models.Booking, error)
	CheckOut(ctx context.Context, id uint, actor Actor) (*models.Booking, error)
	MarkNoShow(ctx context.Context, id uint, actor Actor) (*models.Booking, error)

	// UpdatePaymentStatus changes a non-status field; the commit still flows
	// through the notifier, which dedups it to a no-op.
	UpdatePaymentStatus(ctx context.Context, id uint, paymentStatus string) (*models.Booking, error)
}

type bookingService struct {
	bookings   repository.BookingRepository
	properties repository.PropertyRepository
	tx         repository.TxRunner
	notifier   TransitionNotifier
}

func NewBookingService(bookings repository.BookingRepository, properties repository.PropertyRepository, tx repository.TxRunner, notifier TransitionNotifier) BookingService {
	return &bookingService{bookings: bookings, properties: properties, tx: tx, notifier: notifier}
}

func (s *bookingService) notify(ctx context.Context, booking *models.Booking, created bool, previous models.BookingStatus) {
	if s.notifier != nil {
		s.notifier.BookingCommitted(ctx, booking, created, previous)
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, actor Actor, input CreateBookingInput) (*models.Booking, error) {
	if err := validateRange(input.CheckInDate, input.CheckOutDate); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		CheckInDate:    input.CheckInDate,
		CheckOutDate:   input.CheckOutDate,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		Status:         models.StatusPending,
		PaymentMethod:  input.PaymentMethod,
		DownPayment:    input.DownPayment,
		TotalPrice:     input.TotalPrice,
		NumberOfGuests: input.NumberOfGuests,
		IsVenueBooking: input.IsVenueBooking,
	}
	if actor.UserID != 0 {
		userID := actor.UserID
		booking.UserID = &userID
	}

	switch {
	case input.IsVenueBooking:
		if input.AreaID == nil || input.RoomID != nil {
			return nil, ErrUnitRequired
		}
		area, err := s.properties.FindArea(ctx, *input.AreaID)
		if err != nil {
			return nil, ErrUnitNotFound
		}
		booking.AreaID = input.AreaID
		booking.Area = area
	default:
		if input.RoomID == nil || input.AreaID != nil {
			return nil, ErrUnitRequired
		}
		room, err := s.properties.FindRoom(ctx, *input.RoomID)
		if err != nil {
			return nil, ErrUnitNotFound
		}
		booking.RoomID = input.RoomID
		booking.Room = room
	}

	if input.Status != "" && input.Status != models.StatusPending {
		if !actor.IsStaff() {
			return nil, ErrStatusNotAllowed
		}
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		booking.Status = input.Status
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.notify(ctx, booking, true, "")
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookings.FindByIDWithUnit(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, actor Actor, status *models.BookingStatus) ([]models.Booking, error) {
	var userID *uint
	if !actor.IsStaff() {
		id := actor.UserID
		userID = &id
	}
	return s.bookings.FindAll(ctx, status, userID)
}

func (s *bookingService) CancelBooking(ctx context.Context, id uint, actor Actor, reason string) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.IsStaff() {
		if booking.Status == models.StatusCancelled {
			return nil, ErrAlreadyCancelled
		}
	} else {
		if booking.UserID == nil || *booking.UserID != actor.UserID {
			return nil, ErrNotBookingOwner
		}
		if booking.Status != models.StatusPending {
			return nil, ErrGuestCancelPending
		}
	}

	if reason == "" {
		return nil, ErrCancelReasonRequired
	}

	previous := booking.Status
	now := time.Now()
	booking.Status = models.StatusCancelled
	booking.CancellationReason = reason
	booking.CancellationDate = &now

	// The status write and the inventory compensation commit together.
	err = s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.bookings.Save(ctx, tx, booking); err != nil {
			return err
		}

		// A reserved booking held its unit; release it back to the catalog.
		// Pending bookings never touched catalog status.
		if previous == models.StatusReserved {
			if booking.IsVenueBooking && booking.AreaID != nil {
				return s.properties.SetAreaStatus(ctx, tx, *booking.AreaID, models.UnitAvailable)
			}
			if !booking.IsVenueBooking && booking.RoomID != nil {
				return s.properties.SetRoomStatus(ctx, tx, *booking.RoomID, models.UnitAvailable)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.notify(ctx, booking, false, previous)
	return booking, nil
}

func (s *bookingService) ReserveBooking(ctx context.Context, id uint, actor Actor) (*models.Booking, error) {
	return s.transition(ctx, id, actor, models.StatusReserved, models.StatusPending)
}

func (s *bookingService) RejectBooking(ctx context.Context, id uint, actor Actor) (*models.Booking, error) {
	return s.transition(ctx, id, actor, models.StatusRejected, models.StatusPending)
}

func (s *bookingService) CheckIn(ctx context.Context, id uint, actor Actor) (*models.Booking, error) {
	return s.transition(ctx, id, actor, models.StatusCheckedIn, models.StatusReserved)
}

func (s *bookingService) CheckOut(ctx context.Context, id uint, actor Actor) (*models.Booking, error) {
	return s.transition(ctx, id, actor, models.StatusCheckedOut, models.StatusCheckedIn)
}

func (s *bookingService) MarkNoShow(ctx context.Context, id uint, actor Actor) (*models.Booking, error) {
	return s.transition(ctx, id, actor, models.StatusNoShow, models.StatusPending, models.StatusReserved)
}

func (s *bookingService) transition(ctx context.Context, id uint, actor Actor, target models.BookingStatus, allowedFrom ...models.BookingStatus) (*models.Booking, error) {
	if !actor.IsStaff() {
		return nil, ErrStaffOnly
	}

	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, from := range allowedFrom {
		if booking.Status == from {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
	}

	previous := booking.Status
	booking.Status = target
	if err := s.bookings.Save(ctx, nil, booking); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.notify(ctx, booking, false, previous)
	return booking, nil
}

func (s *bookingService) UpdatePaymentStatus(ctx context.Context, id uint, paymentStatus string) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := booking.Status
	booking.PaymentStatus = paymentStatus
	if err := s.bookings.Save(ctx, nil, booking); err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}

	s.notify(ctx, booking, false, previous)
	return booking, nil
}
