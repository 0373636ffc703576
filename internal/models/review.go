package models

import "time"

// Review is a stay review: one per guest per checked-out booking, linked to
// the booked room or area for rating aggregation.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"not null;index" json:"booking_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	RoomID    *uint     `gorm:"index" json:"room_id,omitempty"`
	AreaID    *uint     `gorm:"index" json:"area_id,omitempty"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Notification is the internal audit record written by the fan-out
// dispatcher for admin visibility.
type Notification struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	BookingID        *uint     `gorm:"index" json:"booking_id,omitempty"`
	NotificationType string    `gorm:"type:varchar(30);not null" json:"notification_type"`
	Message          string    `gorm:"not null" json:"message"`
	IsRead           bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt        time.Time `json:"created_at"`
}
