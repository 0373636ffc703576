package craveon

import "time"

// CraveOn is the external food-ordering subsystem. It owns every record in
// this package; the hotel side creates orders through the Gateway and is
// never authoritative for their status afterwards.

type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"
	OrderReviewed   OrderStatus = "Reviewed"
)

type Category struct {
	CategoryID   uint   `gorm:"primaryKey;column:category_id" json:"category_id"`
	CategoryName string `gorm:"not null" json:"category_name"`
}

type Item struct {
	ItemID     uint      `gorm:"primaryKey;column:item_id" json:"item_id"`
	ItemName   string    `gorm:"not null" json:"name"`
	Price      float64   `gorm:"not null" json:"price"`
	CategoryID *uint     `gorm:"column:category_id" json:"category_id,omitempty"`
	IsArchived bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt  time.Time `json:"created_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// Guest is CraveOn's own user record, mapped idempotently from a hotel
// guest by email and reused across orders.
type Guest struct {
	GuestID   uint      `gorm:"primaryKey;column:guest_id" json:"guest_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null;uniqueIndex" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	OrderID       uint        `gorm:"primaryKey;column:order_id" json:"order_id"`
	GuestID       uint        `gorm:"not null;index" json:"guest_id"`
	GuestName     string      `json:"guest_name"`
	GuestEmail    string      `gorm:"index" json:"guest_email"`
	TotalAmount   float64     `gorm:"not null" json:"total_amount"`
	PaymentProof  string      `gorm:"type:text" json:"-"`
	BookingID     uint        `gorm:"not null;index" json:"booking_id"`
	HotelRoomArea string      `json:"hotel_room_area"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	Reviewed      bool        `gorm:"not null;default:false" json:"reviewed"`
	OrderedAt     time.Time   `gorm:"not null" json:"ordered_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

type OrderItem struct {
	OrderItemID uint    `gorm:"primaryKey;column:order_item_id" json:"order_item_id"`
	OrderID     uint    `gorm:"not null;index" json:"order_id"`
	ItemID      uint    `gorm:"not null" json:"item_id"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Price       float64 `gorm:"not null" json:"price"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

type OrderReview struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
