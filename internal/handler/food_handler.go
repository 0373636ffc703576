package handler

import (
	"net/http"
	"strconv"

	"github.com/GioMjds/AzureaHotel/internal/dto"
	"github.com/GioMjds/AzureaHotel/internal/service"
	"github.com/labstack/echo/v4"
)

type FoodHandler struct {
	orders service.FoodOrderService
}

func NewFoodHandler(orders service.FoodOrderService) *FoodHandler {
	return &FoodHandler{orders: orders}
}

func (h *FoodHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/foods", h.ListFoods)
	api.POST("/food-orders", h.PlaceOrder)
	api.GET("/food-orders", h.ListOrders)
	api.POST("/food-orders/:id/review", h.ReviewOrder)
	api.GET("/food-orders/reviewable", h.ReviewableOrders)
	api.GET("/food-orders/reviews", h.OrderReviews)
}

func (h *FoodHandler) ListFoods(c echo.Context) error {
	items, err := h.orders.ListFoods(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}

func (h *FoodHandler) PlaceOrder(c echo.Context) error {
	var req dto.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.BookingID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "booking_id is required")
	}

	receipt, err := h.orders.PlaceOrder(c.Request().Context(), req.BookingID, req.Actor(), req.Items, req.PaymentProof)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, receipt)
}

func (h *FoodHandler) ListOrders(c echo.Context) error {
	actor := actorFromQuery(c)

	var bookingID *uint
	if raw := c.QueryParam("booking_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid booking_id")
		}
		v := uint(id)
		bookingID = &v
	}

	orders, err := h.orders.ListOrders(c.Request().Context(), actor, bookingID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": orders})
}

func (h *FoodHandler) ReviewOrder(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req dto.ReviewOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	review, err := h.orders.ReviewOrder(c.Request().Context(), uint(orderID), req.Actor(), req.Rating, req.Comment)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *FoodHandler) ReviewableOrders(c echo.Context) error {
	orders, err := h.orders.ReviewableOrders(c.Request().Context(), actorFromQuery(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": orders})
}

func (h *FoodHandler) OrderReviews(c echo.Context) error {
	reviews, err := h.orders.OrderReviews(c.Request().Context(), actorFromQuery(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": reviews})
}
