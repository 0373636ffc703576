package craveon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrItemNotFound  = errors.New("food item not found or no longer offered")
	ErrOrderNotFound = errors.New("order not found")
)

// CartLine is one submitted cart entry, priced server-side from the CraveOn
// catalog.
type CartLine struct {
	ItemID   uint `json:"item_id"`
	Quantity int  `json:"quantity"`
}

// GuestIdentity is the hotel-side identity snapshot CraveOn keeps with an
// order.
type GuestIdentity struct {
	Name  string
	Email string
}

// NewOrder is everything PlaceOrder commits in one CraveOn transaction.
type NewOrder struct {
	Guest         GuestIdentity
	BookingID     uint
	HotelRoomArea string
	PaymentProof  string
	Lines         []CartLine
}

// Gateway is the only writer of CraveOn order rows. All multi-row writes
// happen inside transactions scoped to the CraveOn database alone — there is
// no cross-database transaction with the hotel store.
type Gateway interface {
	ListItems(ctx context.Context) ([]Item, error)
	// PriceCart resolves every cart line against the catalog and returns the
	// order total. Unknown or archived items fail the whole cart.
	PriceCart(ctx context.Context, lines []CartLine) (float64, error)
	// PlaceOrder creates the guest mapping (idempotent, keyed by email), the
	// order header, and all line items atomically, returning the order id.
	PlaceOrder(ctx context.Context, order NewOrder) (uint, error)
	GetOrder(ctx context.Context, orderID uint) (*Order, error)
	OrdersByBooking(ctx context.Context, bookingID uint) ([]Order, error)
	// CreateReview inserts the review and moves the order to Reviewed in one
	// transaction. The caller is responsible for the eligibility guards.
	CreateReview(ctx context.Context, orderID uint, rating int, comment string) (uint, error)
	HasReview(ctx context.Context, orderID uint) (bool, error)
	ReviewableOrders(ctx context.Context, guestEmail string) ([]Order, error)
	ReviewsByGuest(ctx context.Context, guestEmail string) ([]OrderReview, error)
}

type gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) Gateway {
	return &gateway{db: db}
}

func (g *gateway) ListItems(ctx context.Context) ([]Item, error) {
	var items []Item
	err := g.db.WithContext(ctx).
		Preload("Category").
		Where("is_archived = ?", false).
		Order("item_id ASC").
		Find(&items).Error
	return items, err
}

func (g *gateway) PriceCart(ctx context.Context, lines []CartLine) (float64, error) {
	var total float64
	for _, line := range lines {
		var item Item
		err := g.db.WithContext(ctx).
			Where("item_id = ? AND is_archived = ?", line.ItemID, false).
			First(&item).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, fmt.Errorf("%w: item %d", ErrItemNotFound, line.ItemID)
			}
			return 0, err
		}
		total += item.Price * float64(line.Quantity)
	}
	return total, nil
}

func (g *gateway) PlaceOrder(ctx context.Context, order NewOrder) (uint, error) {
	var orderID uint

	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		guestID, err := createGuestIfAbsent(tx, order.Guest)
		if err != nil {
			return err
		}

		header := Order{
			GuestID:       guestID,
			GuestName:     order.Guest.Name,
			GuestEmail:    order.Guest.Email,
			BookingID:     order.BookingID,
			HotelRoomArea: order.HotelRoomArea,
			PaymentProof:  order.PaymentProof,
			Status:        OrderPending,
			OrderedAt:     time.Now(),
		}

		for _, line := range order.Lines {
			var item Item
			if err := tx.Where("item_id = ? AND is_archived = ?", line.ItemID, false).First(&item).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: item %d", ErrItemNotFound, line.ItemID)
				}
				return err
			}
			header.TotalAmount += item.Price * float64(line.Quantity)
			header.Items = append(header.Items, OrderItem{
				ItemID:   line.ItemID,
				Quantity: line.Quantity,
				Price:    item.Price,
			})
		}

		if err := tx.Create(&header).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		orderID = header.OrderID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// createGuestIfAbsent maps a hotel guest to a CraveOn guest id, reusing the
// record across orders.
func createGuestIfAbsent(tx *gorm.DB, identity GuestIdentity) (uint, error) {
	var guest Guest
	err := tx.Where("email = ?", identity.Email).First(&guest).Error
	if err == nil {
		return guest.GuestID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	guest = Guest{Name: identity.Name, Email: identity.Email}
	if err := tx.Create(&guest).Error; err != nil {
		return 0, fmt.Errorf("create guest: %w", err)
	}
	return guest.GuestID, nil
}

func (g *gateway) GetOrder(ctx context.Context, orderID uint) (*Order, error) {
	var order Order
	err := g.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Item").
		Where("order_id = ?", orderID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (g *gateway) OrdersByBooking(ctx context.Context, bookingID uint) ([]Order, error) {
	var orders []Order
	err := g.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Item").
		Where("booking_id = ?", bookingID).
		Order("ordered_at DESC").
		Find(&orders).Error
	return orders, err
}

func (g *gateway) CreateReview(ctx context.Context, orderID uint, rating int, comment string) (uint, error) {
	var reviewID uint

	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		review := OrderReview{OrderID: orderID, Rating: rating, Comment: comment}
		if err := tx.Create(&review).Error; err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		err := tx.Model(&Order{}).
			Where("order_id = ?", orderID).
			Updates(map[string]any{"status": OrderReviewed, "reviewed": true}).Error
		if err != nil {
			return fmt.Errorf("mark order reviewed: %w", err)
		}

		reviewID = review.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return reviewID, nil
}

func (g *gateway) HasReview(ctx context.Context, orderID uint) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).
		Model(&OrderReview{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	return count > 0, err
}

func (g *gateway) ReviewableOrders(ctx context.Context, guestEmail string) ([]Order, error) {
	var orders []Order
	err := g.db.WithContext(ctx).
		Where("guest_email = ? AND status = ?", guestEmail, OrderCompleted).
		Where("order_id NOT IN (?)", g.db.Model(&OrderReview{}).Select("order_id")).
		Order("ordered_at DESC").
		Find(&orders).Error
	return orders, err
}

func (g *gateway) ReviewsByGuest(ctx context.Context, guestEmail string) ([]OrderReview, error) {
	var reviews []OrderReview
	err := g.db.WithContext(ctx).
		Joins("JOIN orders ON orders.order_id = order_reviews.order_id").
		Where("orders.guest_email = ?", guestEmail).
		Order("order_reviews.created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
