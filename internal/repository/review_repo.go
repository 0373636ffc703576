package repository

import (
	"context"

	"github.com/GioMjds/AzureaHotel/internal/models"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ExistsForBookingAndUser(ctx context.Context, bookingID, userID uint) (bool, error)
	FindByBooking(ctx context.Context, bookingID uint) ([]models.Review, error)
	FindByUser(ctx context.Context, userID uint) ([]models.Review, error)
	FindByRoom(ctx context.Context, roomID uint) ([]models.Review, error)
	FindByArea(ctx context.Context, areaID uint) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) ExistsForBookingAndUser(ctx context.Context, bookingID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("booking_id = ? AND user_id = ?", bookingID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *reviewRepository) FindByBooking(ctx context.Context, bookingID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) FindByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) FindByRoom(ctx context.Context, roomID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) FindByArea(ctx context.Context, areaID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("area_id = ?", areaID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
