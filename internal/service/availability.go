package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GioMjds/AzureaHotel/internal/models"
	"github.com/GioMjds/AzureaHotel/internal/repository"
)

var ErrInvalidDateRange = errors.New("departure date must be after arrival date")

// AvailabilityService answers "what can I book" for a date range. It is a
// pure read over committed bookings: two concurrent requests can both see a
// unit as free and both create holding bookings. That race is accepted and
// resolved by staff (one booking gets rejected), not by locking.
type AvailabilityService interface {
	// FindAvailable returns the rooms and areas free for [arrival, departure).
	FindAvailable(ctx context.Context, arrival, departure time.Time) ([]models.Room, []models.Area, error)
	AvailableRooms(ctx context.Context, arrival, departure time.Time) ([]models.Room, error)
	AvailableAreas(ctx context.Context, arrival, departure time.Time) ([]models.Area, error)
}

type availabilityService struct {
	bookings   repository.BookingRepository
	properties repository.PropertyRepository
}

func NewAvailabilityService(bookings repository.BookingRepository, properties repository.PropertyRepository) AvailabilityService {
	return &availabilityService{bookings: bookings, properties: properties}
}

func validateRange(arrival, departure time.Time) error {
	if !departure.After(arrival) {
		return ErrInvalidDateRange
	}
	return nil
}

func (s *availabilityService) FindAvailable(ctx context.Context, arrival, departure time.Time) ([]models.Room, []models.Area, error) {
	if err := validateRange(arrival, departure); err != nil {
		return nil, nil, err
	}

	rooms, err := s.availableRooms(ctx, arrival, departure)
	if err != nil {
		return nil, nil, err
	}
	areas, err := s.availableAreas(ctx, arrival, departure)
	if err != nil {
		return nil, nil, err
	}
	return rooms, areas, nil
}

func (s *availabilityService) AvailableRooms(ctx context.Context, arrival, departure time.Time) ([]models.Room, error) {
	if err := validateRange(arrival, departure); err != nil {
		return nil, err
	}
	return s.availableRooms(ctx, arrival, departure)
}

func (s *availabilityService) AvailableAreas(ctx context.Context, arrival, departure time.Time) ([]models.Area, error) {
	if err := validateRange(arrival, departure); err != nil {
		return nil, err
	}
	return s.availableAreas(ctx, arrival, departure)
}

func (s *availabilityService) availableRooms(ctx context.Context, arrival, departure time.Time) ([]models.Room, error) {
	booked, err := s.bookings.BookedRoomIDs(ctx, arrival, departure)
	if err != nil {
		return nil, fmt.Errorf("query booked rooms: %w", err)
	}
	return s.properties.AvailableRooms(ctx, booked)
}

func (s *availabilityService) availableAreas(ctx context.Context, arrival, departure time.Time) ([]models.Area, error) {
	booked, err := s.bookings.BookedAreaIDs(ctx, arrival, departure)
	if err != nil {
		return nil, fmt.Errorf("query booked areas: %w", err)
	}
	return s.properties.AvailableAreas(ctx, booked)
}
