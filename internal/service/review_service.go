package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/GioMjds/AzureaHotel/internal/models"
	"github.com/GioMjds/AzureaHotel/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrBookingNotCheckedOut = errors.New("reviews can only be submitted for checked-out bookings")
	ErrReviewExists         = errors.New("you have already submitted a review for this booking")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrNotReviewOwner       = errors.New("you do not have permission to access these reviews")
)

type ReviewService interface {
	CreateReview(ctx context.Context, bookingID uint, actor Actor, rating int, comment string) (*models.Review, error)
	ListBookingReviews(ctx context.Context, bookingID uint, actor Actor) ([]models.Review, error)
	ListUserReviews(ctx context.Context, actor Actor) ([]models.Review, error)

	// Per-unit listings are public and return the average rating with the
	// reviews for display.
	ListRoomReviews(ctx context.Context, roomID uint) ([]models.Review, float64, error)
	ListAreaReviews(ctx context.Context, areaID uint) ([]models.Review, float64, error)
}

type reviewService struct {
	bookings repository.BookingRepository
	reviews  repository.ReviewRepository
}

func NewReviewService(bookings repository.BookingRepository, reviews repository.ReviewRepository) ReviewService {
	return &reviewService{bookings: bookings, reviews: reviews}
}

func (s *reviewService) CreateReview(ctx context.Context, bookingID uint, actor Actor, rating int, comment string) (*models.Review, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if booking.UserID == nil || *booking.UserID != actor.UserID {
		return nil, ErrNotReviewOwner
	}
	if booking.Status != models.StatusCheckedOut {
		return nil, ErrBookingNotCheckedOut
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	exists, err := s.reviews.ExistsForBookingAndUser(ctx, bookingID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrReviewExists
	}

	review := &models.Review{
		BookingID: bookingID,
		UserID:    actor.UserID,
		Rating:    rating,
		Comment:   comment,
	}
	if booking.IsVenueBooking {
		review.AreaID = booking.AreaID
	} else {
		review.RoomID = booking.RoomID
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *reviewService) ListBookingReviews(ctx context.Context, bookingID uint, actor Actor) ([]models.Review, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	owner := booking.UserID != nil && *booking.UserID == actor.UserID
	if !owner && !actor.IsStaff() {
		return nil, ErrNotReviewOwner
	}

	return s.reviews.FindByBooking(ctx, bookingID)
}

func (s *reviewService) ListUserReviews(ctx context.Context, actor Actor) ([]models.Review, error) {
	return s.reviews.FindByUser(ctx, actor.UserID)
}

func (s *reviewService) ListRoomReviews(ctx context.Context, roomID uint) ([]models.Review, float64, error) {
	reviews, err := s.reviews.FindByRoom(ctx, roomID)
	if err != nil {
		return nil, 0, err
	}
	return reviews, averageRating(reviews), nil
}

func (s *reviewService) ListAreaReviews(ctx context.Context, areaID uint) ([]models.Review, float64, error) {
	reviews, err := s.reviews.FindByArea(ctx, areaID)
	if err != nil {
		return nil, 0, err
	}
	return reviews, averageRating(reviews), nil
}

func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
