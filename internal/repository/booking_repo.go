package repository

import (
	"context"
	"time"

	"github.com/GioMjds/AzureaHotel/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	// FindByIDWithUnit preloads the booked room or area for event metadata.
	FindByIDWithUnit(ctx context.Context, id uint) (*models.Booking, error)
	FindAll(ctx context.Context, status *models.BookingStatus, userID *uint) ([]models.Booking, error)
	Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	SetHasFoodOrder(ctx context.Context, bookingID uint, has bool) error

	// BookedRoomIDs / BookedAreaIDs return the units held by a booking in a
	// blocking status whose stored range overlaps [arrival, departure) under
	// the half-open rule: existing.check_in < departure AND
	// existing.check_out > arrival. Touching endpoints do not conflict.
	BookedRoomIDs(ctx context.Context, arrival, departure time.Time) ([]uint, error)
	BookedAreaIDs(ctx context.Context, arrival, departure time.Time) ([]uint, error)

	CountByStatuses(ctx context.Context, statuses []models.BookingStatus) (int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByIDWithUnit(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Area").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, status *models.BookingStatus, userID *uint) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).Preload("Room").Preload("Area").Order("created_at DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) SetHasFoodOrder(ctx context.Context, bookingID uint, has bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("has_food_order", has).Error
}

func (r *bookingRepository) BookedRoomIDs(ctx context.Context, arrival, departure time.Time) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("is_venue_booking = ?", false).
		Where("room_id IS NOT NULL").
		Where("status NOT IN ?", models.NonBlockingStatuses).
		Where("check_in_date < ? AND check_out_date > ?", departure, arrival).
		Distinct().
		Pluck("room_id", &ids).Error
	return ids, err
}

func (r *bookingRepository) BookedAreaIDs(ctx context.Context, arrival, departure time.Time) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("is_venue_booking = ?", true).
		Where("area_id IS NOT NULL").
		Where("status NOT IN ?", models.NonBlockingStatuses).
		Where("check_in_date < ? AND check_out_date > ?", departure, arrival).
		Distinct().
		Pluck("area_id", &ids).Error
	return ids, err
}

func (r *bookingRepository) CountByStatuses(ctx context.Context, statuses []models.BookingStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status IN ?", statuses).
		Count(&count).Error
	return count, err
}
