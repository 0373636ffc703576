package main

import (
	"log"

	"github.com/GioMjds/AzureaHotel/config"
	"github.com/GioMjds/AzureaHotel/internal/craveon"
	"github.com/GioMjds/AzureaHotel/internal/dispatch"
	"github.com/GioMjds/AzureaHotel/internal/handler"
	"github.com/GioMjds/AzureaHotel/internal/middleware"
	"github.com/GioMjds/AzureaHotel/internal/repository"
	"github.com/GioMjds/AzureaHotel/internal/service"
	"github.com/GioMjds/AzureaHotel/pkg/broadcast"
	"github.com/GioMjds/AzureaHotel/pkg/database"
	"github.com/GioMjds/AzureaHotel/pkg/realtime"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	hotelDB := database.NewHotelDB(cfg.DSN())
	craveonDB := database.NewCraveOnDB(cfg.CraveOnDSN())

	// Repositories
	bookingRepo := repository.NewBookingRepository(hotelDB)
	propertyRepo := repository.NewPropertyRepository(hotelDB)
	reviewRepo := repository.NewReviewRepository(hotelDB)
	notificationRepo := repository.NewNotificationRepository(hotelDB)

	// Realtime mirror and admin broadcast are best-effort: a missing
	// backend degrades fan-out to log-only instead of blocking startup.
	var store dispatch.RealtimeStore
	if s, err := realtime.NewStore(cfg.RedisAddr); err != nil {
		log.Printf("realtime store unavailable, mirroring disabled: %v", err)
	} else {
		store = s
		defer s.Close()
	}

	var publisher dispatch.Broadcaster
	if p, err := broadcast.NewPublisher(cfg.RabbitURL); err != nil {
		log.Printf("broadcast channel unavailable, admin updates disabled: %v", err)
	} else {
		publisher = p
		defer p.Close()
	}

	dispatcher := dispatch.NewDispatcher(
		dispatch.NewRealtimeSink(store),
		dispatch.NewAuditSink(notificationRepo),
		dispatch.NewBroadcastSink(bookingRepo, publisher),
	)

	// Services
	availabilitySvc := service.NewAvailabilityService(bookingRepo, propertyRepo)
	bookingSvc := service.NewBookingService(bookingRepo, propertyRepo, repository.NewTxRunner(hotelDB), dispatcher)
	reviewSvc := service.NewReviewService(bookingRepo, reviewRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)
	foodSvc := service.NewFoodOrderService(bookingRepo, craveon.NewGateway(craveonDB))

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "azurea-hotel"})
	})

	handler.NewBookingHandler(availabilitySvc, bookingSvc, reviewSvc, notificationSvc).RegisterRoutes(e)
	handler.NewFoodHandler(foodSvc).RegisterRoutes(e)

	log.Printf("Azurea hotel backend starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
