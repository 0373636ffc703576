package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GioMjds/AzureaHotel/internal/dto"
	"github.com/GioMjds/AzureaHotel/internal/models"
	"github.com/GioMjds/AzureaHotel/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	availability  service.AvailabilityService
	bookings      service.BookingService
	reviews       service.ReviewService
	notifications service.NotificationService
}

func NewBookingHandler(availability service.AvailabilityService, bookings service.BookingService, reviews service.ReviewService, notifications service.NotificationService) *BookingHandler {
	return &BookingHandler{availability: availability, bookings: bookings, reviews: reviews, notifications: notifications}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/availability", h.FetchAvailability)

	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings", h.ListBookings)
	api.GET("/bookings/:id", h.GetBooking)
	api.POST("/bookings/:id/cancel", h.CancelBooking)
	api.PUT("/bookings/:id/payment-status", h.UpdatePaymentStatus)

	api.POST("/bookings/:id/reserve", h.ReserveBooking)
	api.POST("/bookings/:id/reject", h.RejectBooking)
	api.POST("/bookings/:id/check-in", h.CheckIn)
	api.POST("/bookings/:id/check-out", h.CheckOut)
	api.POST("/bookings/:id/no-show", h.MarkNoShow)

	api.POST("/bookings/:id/reviews", h.CreateReview)
	api.GET("/bookings/:id/reviews", h.ListBookingReviews)

	api.GET("/rooms/:id/reviews", h.ListRoomReviews)
	api.GET("/areas/:id/reviews", h.ListAreaReviews)
	api.GET("/reviews", h.ListUserReviews)

	api.GET("/notifications", h.ListNotifications)
}

func (h *BookingHandler) FetchAvailability(c echo.Context) error {
	arrivalParam := c.QueryParam("arrival")
	departureParam := c.QueryParam("departure")
	if arrivalParam == "" || departureParam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "please provide both arrival and departure dates")
	}

	arrival, err := dto.ParseDate(arrivalParam)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date format, use YYYY-MM-DD")
	}
	departure, err := dto.ParseDate(departureParam)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date format, use YYYY-MM-DD")
	}

	rooms, areas, err := h.availability.FindAvailable(c.Request().Context(), arrival, departure)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.AvailabilityResponse{Rooms: rooms, Areas: areas})
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	checkIn, err := dto.ParseDate(req.CheckInDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid check_in_date, use YYYY-MM-DD")
	}
	checkOut, err := dto.ParseDate(req.CheckOutDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid check_out_date, use YYYY-MM-DD")
	}

	booking, err := h.bookings.CreateBooking(c.Request().Context(), req.Actor(), service.CreateBookingInput{
		RoomID:         req.RoomID,
		AreaID:         req.AreaID,
		IsVenueBooking: req.IsVenueBooking,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Status:         models.BookingStatus(req.Status),
		PaymentMethod:  req.PaymentMethod,
		DownPayment:    req.DownPayment,
		TotalPrice:     req.TotalPrice,
		NumberOfGuests: req.NumberOfGuests,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	actor := actorFromQuery(c)

	var status *models.BookingStatus
	if s := c.QueryParam("status"); s != "" {
		bs := models.BookingStatus(s)
		if !bs.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
		}
		status = &bs
	}

	bookings, err := h.bookings.ListBookings(c.Request().Context(), actor, status)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	booking, err := h.bookings.GetBooking(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.CancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.bookings.CancelBooking(c.Request().Context(), id, req.Actor(), req.Reason)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdatePaymentStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.PaymentStatus == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "payment_status is required")
	}

	booking, err := h.bookings.UpdatePaymentStatus(c.Request().Context(), id, req.PaymentStatus)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ReserveBooking(c echo.Context) error {
	return h.transition(c, h.bookings.ReserveBooking)
}

func (h *BookingHandler) RejectBooking(c echo.Context) error {
	return h.transition(c, h.bookings.RejectBooking)
}

func (h *BookingHandler) CheckIn(c echo.Context) error {
	return h.transition(c, h.bookings.CheckIn)
}

func (h *BookingHandler) CheckOut(c echo.Context) error {
	return h.transition(c, h.bookings.CheckOut)
}

func (h *BookingHandler) MarkNoShow(c echo.Context) error {
	return h.transition(c, h.bookings.MarkNoShow)
}

func (h *BookingHandler) CreateReview(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	review, err := h.reviews.CreateReview(c.Request().Context(), id, req.Actor(), req.Rating, req.Comment)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *BookingHandler) ListBookingReviews(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	reviews, err := h.reviews.ListBookingReviews(c.Request().Context(), id, actorFromQuery(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *BookingHandler) ListRoomReviews(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	reviews, average, err := h.reviews.ListRoomReviews(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": reviews, "average_rating": average})
}

func (h *BookingHandler) ListAreaReviews(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	reviews, average, err := h.reviews.ListAreaReviews(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": reviews, "average_rating": average})
}

func (h *BookingHandler) ListUserReviews(c echo.Context) error {
	reviews, err := h.reviews.ListUserReviews(c.Request().Context(), actorFromQuery(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *BookingHandler) ListNotifications(c echo.Context) error {
	notifications, err := h.notifications.ListUserNotifications(c.Request().Context(), actorFromQuery(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, notifications)
}

type transitionFunc func(ctx context.Context, id uint, actor service.Actor) (*models.Booking, error)

func (h *BookingHandler) transition(c echo.Context, fn transitionFunc) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.TransitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := fn(c.Request().Context(), id, req.Actor())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// actorFromQuery resolves the caller identity for read endpoints, where it
// arrives as query parameters instead of a JSON body.
func actorFromQuery(c echo.Context) service.Actor {
	info := dto.ActorInfo{Role: c.QueryParam("role"), Email: c.QueryParam("email")}
	if raw := c.QueryParam("user_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			info.UserID = uint(id)
		}
	}
	return info.Actor()
}
