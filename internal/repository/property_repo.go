package repository

import (
	"context"

	"github.com/GioMjds/AzureaHotel/internal/models"
	"gorm.io/gorm"
)

type PropertyRepository interface {
	FindRoom(ctx context.Context, id uint) (*models.Room, error)
	FindArea(ctx context.Context, id uint) (*models.Area, error)
	// AvailableRooms returns catalog rooms with status available, minus the
	// excluded ids. A room under an administrative hold (any other catalog
	// status) is never returned regardless of bookings.
	AvailableRooms(ctx context.Context, excludeIDs []uint) ([]models.Room, error)
	AvailableAreas(ctx context.Context, excludeIDs []uint) ([]models.Area, error)
	SetRoomStatus(ctx context.Context, tx *gorm.DB, id uint, status string) error
	SetAreaStatus(ctx context.Context, tx *gorm.DB, id uint, status string) error
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) FindRoom(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *propertyRepository) FindArea(ctx context.Context, id uint) (*models.Area, error) {
	var area models.Area
	if err := r.db.WithContext(ctx).First(&area, id).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *propertyRepository) AvailableRooms(ctx context.Context, excludeIDs []uint) ([]models.Room, error) {
	var rooms []models.Room
	q := r.db.WithContext(ctx).Where("status = ?", models.UnitAvailable)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	if err := q.Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *propertyRepository) AvailableAreas(ctx context.Context, excludeIDs []uint) ([]models.Area, error) {
	var areas []models.Area
	q := r.db.WithContext(ctx).Where("status = ?", models.UnitAvailable)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	if err := q.Order("id ASC").Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

func (r *propertyRepository) SetRoomStatus(ctx context.Context, tx *gorm.DB, id uint, status string) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *propertyRepository) SetAreaStatus(ctx context.Context, tx *gorm.DB, id uint, status string) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).
		Model(&models.Area{}).
		Where("id = ?", id).
		Update("status", status).Error
}
