package handler

import (
	"errors"
	"net/http"

	"github.com/GioMjds/AzureaHotel/internal/craveon"
	"github.com/GioMjds/AzureaHotel/internal/service"
	"github.com/labstack/echo/v4"
)

// toHTTPError maps service sentinels onto HTTP status codes: validation
// failures are 400, state conflicts 409, permission denials 403.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrUnitNotFound),
		errors.Is(err, craveon.ErrOrderNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrNotBookingOwner),
		errors.Is(err, service.ErrNotReviewOwner),
		errors.Is(err, service.ErrNotOrderOwner),
		errors.Is(err, service.ErrStatusNotAllowed),
		errors.Is(err, service.ErrStaffOnly):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())

	case errors.Is(err, service.ErrAlreadyCancelled),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrReviewExists),
		errors.Is(err, service.ErrOrderAlreadyReviewed):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrUnitRequired),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrGuestCancelPending),
		errors.Is(err, service.ErrCancelReasonRequired),
		errors.Is(err, service.ErrBookingNotCheckedOut),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrBookingNotCheckedIn),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrPaymentProofRequired),
		errors.Is(err, service.ErrOrderNotCompleted),
		errors.Is(err, craveon.ErrItemNotFound):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
