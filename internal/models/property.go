package models

import "time"

const UnitAvailable = "available"

// Room and Area are the two disjoint inventory pools. The booking core only
// reads their status and resets it to available when a reserved booking is
// cancelled; everything else belongs to the property catalog.

type Room struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RoomName    string    `gorm:"not null" json:"room_name"`
	RoomType    string    `json:"room_type"`
	BedType     string    `json:"bed_type"`
	Status      string    `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`
	RoomPrice   float64   `json:"room_price"`
	Description string    `json:"description"`
	MaxGuests   int       `json:"max_guests"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Area struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AreaName     string    `gorm:"not null" json:"area_name"`
	Description  string    `json:"description"`
	Status       string    `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`
	Capacity     int       `json:"capacity"`
	PricePerHour float64   `json:"price_per_hour"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
