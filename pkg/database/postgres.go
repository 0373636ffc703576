package database

import (
	"log"

	"github.com/GioMjds/AzureaHotel/internal/craveon"
	"github.com/GioMjds/AzureaHotel/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewHotelDB opens the hotel database and migrates the booking core tables.
func NewHotelDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to hotel database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Room{},
		&models.Area{},
		&models.Booking{},
		&models.Review{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("failed to auto-migrate hotel database: %v", err)
	}

	// One stay review per guest per booking
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_review_booking_user
		ON reviews (booking_id, user_id)
	`)

	return db
}

// NewCraveOnDB opens the external CraveOn ordering database. It is a
// separate system; the coordinator owns its transaction boundary and no
// other component writes order rows.
func NewCraveOnDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to CraveOn database: %v", err)
	}

	if err := db.AutoMigrate(
		&craveon.Category{},
		&craveon.Item{},
		&craveon.Guest{},
		&craveon.Order{},
		&craveon.OrderItem{},
		&craveon.OrderReview{},
	); err != nil {
		log.Fatalf("failed to auto-migrate CraveOn database: %v", err)
	}

	// One review per order
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_order_review_order
		ON order_reviews (order_id)
	`)

	return db
}
