package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/GioMjds/AzureaHotel/internal/craveon"
	"github.com/GioMjds/AzureaHotel/internal/models"
	"github.com/GioMjds/AzureaHotel/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrBookingNotCheckedIn  = errors.New("food orders can only be placed for checked-in bookings")
	ErrEmptyCart            = errors.New("cart items are required")
	ErrInvalidQuantity      = errors.New("item quantities must be positive")
	ErrPaymentProofRequired = errors.New("a payment proof is required")
	ErrNotOrderOwner        = errors.New("you can only review your own orders")
	ErrOrderNotCompleted    = errors.New("only completed orders can be reviewed")
	ErrOrderAlreadyReviewed = errors.New("this order has already been reviewed")
)

// OrderReceipt summarizes a successfully placed order for the caller.
type OrderReceipt struct {
	OrderID     uint    `json:"order_id"`
	BookingID   uint    `json:"booking_id"`
	TotalAmount float64 `json:"total_amount"`
	ItemCount   int     `json:"items_count"`
	Status      string  `json:"status"`
}

// FoodOrderService coordinates orders across the hotel store and the
// external CraveOn store. The two writes in PlaceOrder are deliberately not
// atomic: the CraveOn transaction is the authoritative step, the local
// has_food_order flag is a best-effort display hint written afterwards.
type FoodOrderService interface {
	ListFoods(ctx context.Context) ([]craveon.Item, error)
	PlaceOrder(ctx context.Context, bookingID uint, actor Actor, lines []craveon.CartLine, paymentProof string) (*OrderReceipt, error)
	ListOrders(ctx context.Context, actor Actor, bookingID *uint) ([]craveon.Order, error)
	ReviewOrder(ctx context.Context, orderID uint, actor Actor, rating int, comment string) (*craveon.OrderReview, error)
	ReviewableOrders(ctx context.Context, actor Actor) ([]craveon.Order, error)
	OrderReviews(ctx context.Context, actor Actor) ([]craveon.OrderReview, error)
}

type foodOrderService struct {
	bookings repository.BookingRepository
	gateway  craveon.Gateway
}

func NewFoodOrderService(bookings repository.BookingRepository, gateway craveon.Gateway) FoodOrderService {
	return &foodOrderService{bookings: bookings, gateway: gateway}
}

func (s *foodOrderService) ListFoods(ctx context.Context) ([]craveon.Item, error) {
	return s.gateway.ListItems(ctx)
}

func (s *foodOrderService) PlaceOrder(ctx context.Context, bookingID uint, actor Actor, lines []craveon.CartLine, paymentProof string) (*OrderReceipt, error) {
	booking, err := s.bookings.FindByIDWithUnit(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.Status != models.StatusCheckedIn {
		return nil, ErrBookingNotCheckedIn
	}

	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d", ErrInvalidQuantity, line.ItemID)
		}
	}
	if paymentProof == "" {
		return nil, ErrPaymentProofRequired
	}

	// Resolves every item and computes the total before anything is written;
	// an unknown item aborts with no partial state.
	total, err := s.gateway.PriceCart(ctx, lines)
	if err != nil {
		return nil, err
	}

	orderID, err := s.gateway.PlaceOrder(ctx, craveon.NewOrder{
		Guest:         craveon.GuestIdentity{Name: actor.Name, Email: actor.Email},
		BookingID:     booking.ID,
		HotelRoomArea: booking.UnitName(),
		PaymentProof:  paymentProof,
		Lines:         lines,
	})
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	// The external order is committed and authoritative from here on. A
	// failed flag write leaves an order discoverable by booking id but no
	// local hint; it must not roll back or duplicate the order.
	if err := s.bookings.SetHasFoodOrder(ctx, booking.ID, true); err != nil {
		log.Printf("[food] order %d committed but has_food_order update failed for booking %d: %v", orderID, booking.ID, err)
	}

	return &OrderReceipt{
		OrderID:     orderID,
		BookingID:   booking.ID,
		TotalAmount: total,
		ItemCount:   len(lines),
		Status:      string(craveon.OrderPending),
	}, nil
}

func (s *foodOrderService) ListOrders(ctx context.Context, actor Actor, bookingID *uint) ([]craveon.Order, error) {
	userID := actor.UserID
	bookings, err := s.bookings.FindAll(ctx, nil, &userID)
	if err != nil {
		return nil, err
	}

	var orders []craveon.Order
	for _, booking := range bookings {
		if !booking.HasFoodOrder {
			continue
		}
		if bookingID != nil && booking.ID != *bookingID {
			continue
		}
		found, err := s.gateway.OrdersByBooking(ctx, booking.ID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, found...)
	}
	return orders, nil
}

func (s *foodOrderService) ReviewOrder(ctx context.Context, orderID uint, actor Actor, rating int, comment string) (*craveon.OrderReview, error) {
	order, err := s.gateway.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.GuestEmail != actor.Email {
		return nil, ErrNotOrderOwner
	}
	if order.Status != craveon.OrderCompleted {
		return nil, ErrOrderNotCompleted
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	reviewed, err := s.gateway.HasReview(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, ErrOrderAlreadyReviewed
	}

	reviewID, err := s.gateway.CreateReview(ctx, orderID, rating, comment)
	if err != nil {
		return nil, fmt.Errorf("review order: %w", err)
	}

	return &craveon.OrderReview{
		ID:      reviewID,
		OrderID: orderID,
		Rating:  rating,
		Comment: comment,
	}, nil
}

func (s *foodOrderService) ReviewableOrders(ctx context.Context, actor Actor) ([]craveon.Order, error) {
	return s.gateway.ReviewableOrders(ctx, actor.Email)
}

func (s *foodOrderService) OrderReviews(ctx context.Context, actor Actor) ([]craveon.OrderReview, error) {
	return s.gateway.ReviewsByGuest(ctx, actor.Email)
}
