package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GioMjds/AzureaHotel/internal/models"
	"github.com/GioMjds/AzureaHotel/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock services ---

type mockAvailabilityService struct {
	findAvailableFn func(ctx context.Context, arrival, departure time.Time) ([]models.Room, []models.Area, error)
}

func (m *mockAvailabilityService) FindAvailable(ctx context.Context, arrival, departure time.Time) ([]models.Room, []models.Area, error) {
	if m.findAvailableFn != nil {
		return m.findAvailableFn(ctx, arrival, departure)
	}
	return nil, nil, nil
}

func (m *mockAvailabilityService) AvailableRooms(ctx context.Context, arrival, departure time.Time) ([]models.Room, error) {
	rooms, _, err := m.FindAvailable(ctx, arrival, departure)
	return rooms, err
}

func (m *mockAvailabilityService) AvailableAreas(ctx context.Context, arrival, departure time.Time) ([]models.Area, error) {
	_, areas, err := m.FindAvailable(ctx, arrival, departure)
	return areas, err
}

type mockBookingService struct {
	createFn     func(ctx context.Context, actor service.Actor, input service.CreateBookingInput) (*models.Booking, error)
	getFn        func(ctx context.Context, id uint) (*models.Booking, error)
	listFn       func(ctx context.Context, actor service.Actor, status *models.BookingStatus) ([]models.Booking, error)
	cancelFn     func(ctx context.Context, id uint, actor service.Actor, reason string) (*models.Booking, error)
	transitionFn func(ctx context.Context, id uint, actor service.Actor) (*models.Booking, error)
	paymentFn    func(ctx context.Context, id uint, paymentStatus string) (*models.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, actor service.Actor, input service.CreateBookingInput) (*models.Booking, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actor, input)
	}
	return &models.Booking{ID: 1, Status: models.StatusPending}, nil
}

func (m *mockBookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, service.ErrBookingNotFound
}

func (m *mockBookingService) ListBookings(ctx context.Context, actor service.Actor, status *models.BookingStatus) ([]models.Booking, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actor, status)
	}
	return nil, nil
}

func (m *mockBookingService) CancelBooking(ctx context.Context, id uint, actor service.Actor, reason string) (*models.Booking, error) {
	if m.cancelFn != nil {
		return m.cancelFn(ctx, id, actor, reason)
	}
	return &models.Booking{ID: id, Status: models.StatusCancelled}, nil
}

func (m *mockBookingService) transition(ctx context.Context, id uint, actor service.Actor) (*models.Booking, error) {
	if m.transitionFn != nil {
		return m.transitionFn(ctx, id, actor)
	}
	return &models.Booking{ID: id}, nil
}

func (m *mockBookingService) ReserveBooking(ctx context.Context, id uint, actor service.Actor) (*models.Booking, error) {
	return m.transition(ctx, id, actor)
}

func (m *mockBookingService) RejectBooking(ctx context.Context, id uint, actor service.Actor) (*models.Booking, error) {
	return m.transition(ctx, id, actor)
}

func (m *mockBookingService) CheckIn(ctx context.Context, id uint, actor service.Actor) (*models.Booking, error) {
	return m.transition(ctx, id, actor)
}

func (m *mockBookingService) CheckOut(ctx context.Context, id uint, actor service.Actor) (*models.Booking, error) {
	return m.transition(ctx, id, actor)
}

func (m *mockBookingService) MarkNoShow(ctx context.Context, id uint, actor service.Actor) (*models.Booking, error) {
	return m.transition(ctx, id, actor)
}

func (m *mockBookingService) UpdatePaymentStatus(ctx context.Context, id uint, paymentStatus string) (*models.Booking, error) {
	if m.paymentFn != nil {
		return m.paymentFn(ctx, id, paymentStatus)
	}
	return &models.Booking{ID: id, PaymentStatus: paymentStatus}, nil
}

type mockReviewService struct {
	createFn   func(ctx context.Context, bookingID uint, actor service.Actor, rating int, comment string) (*models.Review, error)
	listUserFn func(ctx context.Context, actor service.Actor) ([]models.Review, error)
}

func (m *mockReviewService) CreateReview(ctx context.Context, bookingID uint, actor service.Actor, rating int, comment string) (*models.Review, error) {
	if m.createFn != nil {
		return m.createFn(ctx, bookingID, actor, rating, comment)
	}
	return &models.Review{ID: 1, BookingID: bookingID, Rating: rating}, nil
}

func (m *mockReviewService) ListBookingReviews(ctx context.Context, bookingID uint, actor service.Actor) ([]models.Review, error) {
	return nil, nil
}

func (m *mockReviewService) ListUserReviews(ctx context.Context, actor service.Actor) ([]models.Review, error) {
	if m.listUserFn != nil {
		return m.listUserFn(ctx, actor)
	}
	return nil, nil
}

type mockNotificationService struct {
	listFn func(ctx context.Context, actor service.Actor) ([]models.Notification, error)
}

func (m *mockNotificationService) ListUserNotifications(ctx context.Context, actor service.Actor) ([]models.Notification, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actor)
	}
	return nil, nil
}

func (m *mockReviewService) ListRoomReviews(ctx context.Context, roomID uint) ([]models.Review, float64, error) {
	return nil, 0, nil
}

func (m *mockReviewService) ListAreaReviews(ctx context.Context, areaID uint) ([]models.Review, float64, error) {
	return nil, 0, nil
}

// --- Helpers ---

func newBookingHandler(availability *mockAvailabilityService, bookings *mockBookingService) *BookingHandler {
	if availability == nil {
		availability = &mockAvailabilityService{}
	}
	if bookings == nil {
		bookings = &mockBookingService{}
	}
	return NewBookingHandler(availability, bookings, &mockReviewService{}, &mockNotificationService{})
}

func doRequest(t *testing.T, method, target, body string, handler echo.HandlerFunc, pathParams map[string]string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	names := make([]string, 0, len(pathParams))
	values := make([]string, 0, len(pathParams))
	for name, value := range pathParams {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return rec, handler(c)
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

// --- Availability ---

func TestFetchAvailability_OK(t *testing.T) {
	availability := &mockAvailabilityService{
		findAvailableFn: func(ctx context.Context, arrival, departure time.Time) ([]models.Room, []models.Area, error) {
			assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), arrival)
			assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), departure)
			return []models.Room{{ID: 2, RoomName: "Deluxe 302"}}, nil, nil
		},
	}
	h := newBookingHandler(availability, nil)

	rec, err := doRequest(t, http.MethodGet, "/api/v1/availability?arrival=2025-06-01&departure=2025-06-04", "", h.FetchAvailability, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Deluxe 302")
}

func TestFetchAvailability_MissingParams(t *testing.T) {
	h := newBookingHandler(nil, nil)

	_, err := doRequest(t, http.MethodGet, "/api/v1/availability?arrival=2025-06-01", "", h.FetchAvailability, nil)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
}

func TestFetchAvailability_BadDateFormat(t *testing.T) {
	h := newBookingHandler(nil, nil)

	_, err := doRequest(t, http.MethodGet, "/api/v1/availability?arrival=06-01-2025&departure=2025-06-04", "", h.FetchAvailability, nil)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
}

func TestFetchAvailability_InvertedRange(t *testing.T) {
	availability := &mockAvailabilityService{
		findAvailableFn: func(ctx context.Context, arrival, departure time.Time) ([]models.Room, []models.Area, error) {
			return nil, nil, service.ErrInvalidDateRange
		},
	}
	h := newBookingHandler(availability, nil)

	_, err := doRequest(t, http.MethodGet, "/api/v1/availability?arrival=2025-06-04&departure=2025-06-01", "", h.FetchAvailability, nil)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
}

// --- Bookings ---

func TestCreateBooking_Created(t *testing.T) {
	bookings := &mockBookingService{
		createFn: func(ctx context.Context, actor service.Actor, input service.CreateBookingInput) (*models.Booking, error) {
			assert.Equal(t, uint(7), actor.UserID)
			assert.Equal(t, service.RoleGuest, actor.Role)
			require.NotNil(t, input.RoomID)
			assert.Equal(t, uint(3), *input.RoomID)
			return &models.Booking{ID: 42, RoomID: input.RoomID, Status: models.StatusPending}, nil
		},
	}
	h := newBookingHandler(nil, bookings)

	body := `{"user_id":7,"room_id":3,"check_in_date":"2025-06-01","check_out_date":"2025-06-04"}`
	rec, err := doRequest(t, http.MethodPost, "/api/v1/bookings", body, h.CreateBooking, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
}

func TestCreateBooking_UnitRequiredIs400(t *testing.T) {
	bookings := &mockBookingService{
		createFn: func(ctx context.Context, actor service.Actor, input service.CreateBookingInput) (*models.Booking, error) {
			return nil, service.ErrUnitRequired
		},
	}
	h := newBookingHandler(nil, bookings)

	body := `{"user_id":7,"check_in_date":"2025-06-01","check_out_date":"2025-06-04"}`
	_, err := doRequest(t, http.MethodPost, "/api/v1/bookings", body, h.CreateBooking, nil)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
}

func TestGetBooking_NotFoundIs404(t *testing.T) {
	h := newBookingHandler(nil, &mockBookingService{})

	_, err := doRequest(t, http.MethodGet, "/api/v1/bookings/404", "", h.GetBooking, map[string]string{"id": "404"})
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}

func TestGetBooking_BadIDIs400(t *testing.T) {
	h := newBookingHandler(nil, &mockBookingService{})

	_, err := doRequest(t, http.MethodGet, "/api/v1/bookings/abc", "", h.GetBooking, map[string]string{"id": "abc"})
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
}

func TestListBookings_InvalidStatusFilter(t *testing.T) {
	h := newBookingHandler(nil, &mockBookingService{})

	_, err := doRequest(t, http.MethodGet, "/api/v1/bookings?status=confirmed", "", h.ListBookings, nil)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
}

func TestCancelBooking_ForbiddenForNonOwner(t *testing.T) {
	bookings := &mockBookingService{
		cancelFn: func(ctx context.Context, id uint, actor service.Actor, reason string) (*models.Booking, error) {
			return nil, service.ErrNotBookingOwner
		},
	}
	h := newBookingHandler(nil, bookings)

	body := `{"user_id":8,"reason":"not mine"}`
	_, err := doRequest(t, http.MethodPost, "/api/v1/bookings/1/cancel", body, h.CancelBooking, map[string]string{"id": "1"})
	assert.Equal(t, http.StatusForbidden, httpStatus(t, err))
}

func TestCancelBooking_AlreadyCancelledIs409(t *testing.T) {
	bookings := &mockBookingService{
		cancelFn: func(ctx context.Context, id uint, actor service.Actor, reason string) (*models.Booking, error) {
			return nil, service.ErrAlreadyCancelled
		},
	}
	h := newBookingHandler(nil, bookings)

	body := `{"user_id":1,"role":"staff","reason":"again"}`
	_, err := doRequest(t, http.MethodPost, "/api/v1/bookings/1/cancel", body, h.CancelBooking, map[string]string{"id": "1"})
	assert.Equal(t, http.StatusConflict, httpStatus(t, err))
}

// --- Transitions ---

func TestCheckIn_OK(t *testing.T) {
	bookings := &mockBookingService{
		transitionFn: func(ctx context.Context, id uint, actor service.Actor) (*models.Booking, error) {
			assert.True(t, actor.IsStaff())
			return &models.Booking{ID: id, Status: models.StatusCheckedIn}, nil
		},
	}
	h := newBookingHandler(nil, bookings)

	body := `{"user_id":99,"role":"staff"}`
	rec, err := doRequest(t, http.MethodPost, "/api/v1/bookings/1/check-in", body, h.CheckIn, map[string]string{"id": "1"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(models.StatusCheckedIn))
}

func TestCheckIn_InvalidTransitionIs409(t *testing.T) {
	bookings := &mockBookingService{
		transitionFn: func(ctx context.Context, id uint, actor service.Actor) (*models.Booking, error) {
			return nil, service.ErrInvalidTransition
		},
	}
	h := newBookingHandler(nil, bookings)

	body := `{"user_id":99,"role":"staff"}`
	_, err := doRequest(t, http.MethodPost, "/api/v1/bookings/1/check-in", body, h.CheckIn, map[string]string{"id": "1"})
	assert.Equal(t, http.StatusConflict, httpStatus(t, err))
}

func TestCheckIn_GuestIs403(t *testing.T) {
	bookings := &mockBookingService{
		transitionFn: func(ctx context.Context, id uint, actor service.Actor) (*models.Booking, error) {
			return nil, service.ErrStaffOnly
		},
	}
	h := newBookingHandler(nil, bookings)

	body := `{"user_id":7}`
	_, err := doRequest(t, http.MethodPost, "/api/v1/bookings/1/check-in", body, h.CheckIn, map[string]string{"id": "1"})
	assert.Equal(t, http.StatusForbidden, httpStatus(t, err))
}

// --- Payment status ---

func TestUpdatePaymentStatus_RequiresValue(t *testing.T) {
	h := newBookingHandler(nil, &mockBookingService{})

	_, err := doRequest(t, http.MethodPut, "/api/v1/bookings/1/payment-status", `{}`, h.UpdatePaymentStatus, map[string]string{"id": "1"})
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
}

// --- Reviews ---

func TestCreateReview_DuplicateIs409(t *testing.T) {
	reviews := &mockReviewService{
		createFn: func(ctx context.Context, bookingID uint, actor service.Actor, rating int, comment string) (*models.Review, error) {
			return nil, service.ErrReviewExists
		},
	}
	h := NewBookingHandler(&mockAvailabilityService{}, &mockBookingService{}, reviews, &mockNotificationService{})

	body := `{"user_id":7,"rating":5}`
	_, err := doRequest(t, http.MethodPost, "/api/v1/bookings/1/reviews", body, h.CreateReview, map[string]string{"id": "1"})
	assert.Equal(t, http.StatusConflict, httpStatus(t, err))
}

func TestListUserReviews_UsesQueryActor(t *testing.T) {
	reviews := &mockReviewService{
		listUserFn: func(ctx context.Context, actor service.Actor) ([]models.Review, error) {
			assert.Equal(t, uint(7), actor.UserID)
			return []models.Review{{ID: 1, BookingID: 2, UserID: 7, Rating: 4, Comment: "lovely stay"}}, nil
		},
	}
	h := NewBookingHandler(&mockAvailabilityService{}, &mockBookingService{}, reviews, &mockNotificationService{})

	rec, err := doRequest(t, http.MethodGet, "/api/v1/reviews?user_id=7&role=guest", "", h.ListUserReviews, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lovely stay")
}

// --- Notifications ---

func TestListNotifications_UsesQueryActor(t *testing.T) {
	notifications := &mockNotificationService{
		listFn: func(ctx context.Context, actor service.Actor) ([]models.Notification, error) {
			assert.Equal(t, uint(7), actor.UserID)
			return []models.Notification{{ID: 1, UserID: 7, Message: "Your booking has been reserved"}}, nil
		},
	}
	h := NewBookingHandler(&mockAvailabilityService{}, &mockBookingService{}, &mockReviewService{}, notifications)

	rec, err := doRequest(t, http.MethodGet, "/api/v1/notifications?user_id=7&role=guest", "", h.ListNotifications, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your booking has been reserved")
}
