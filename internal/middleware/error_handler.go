package middleware

import (
	"fmt"
	"net/http"

	"github.com/GioMjds/AzureaHotel/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error echo surfaces as the API's JSON error
// shape. Sentinel-to-status mapping happens in the handlers; anything
// arriving here without an HTTP code is a 500. Booking mutations ack
// before fan-out runs, so dispatcher failures never reach this path.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			message = m
		case error:
			message = m.Error()
		default:
			message = fmt.Sprintf("%v", m)
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: message})
}
