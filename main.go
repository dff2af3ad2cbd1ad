package main

import (
	"log"

	"github.com/ferhhaann/manzil-hotel-dashboard/config"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/handler"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/middleware"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/repository"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/service"
	"github.com/ferhhaann/manzil-hotel-dashboard/pkg/database"
	"github.com/ferhhaann/manzil-hotel-dashboard/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ publisher: front-desk events for downstream consumers.
	// The service runs fine without a broker; publishing is best-effort.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("RabbitMQ unavailable, events disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Repositories
	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	roomSvc := service.NewRoomService(roomRepo, checkoutRepo, ledgerRepo, publisher)
	reservationSvc := service.NewReservationService(reservationRepo, roomRepo, publisher)
	reportSvc := service.NewReportService(roomRepo)
	ledgerSvc := service.NewLedgerService(ledgerRepo)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)

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
		return c.JSON(200, map[string]string{"status": "ok", "service": "manzil-hotel-dashboard"})
	})

	authMw := middleware.Auth(cfg.JWTSecret)
	handler.NewAuthHandler(authSvc).RegisterRoutes(e, authMw)
	handler.NewRoomHandler(roomSvc).RegisterRoutes(e, authMw)
	handler.NewReservationHandler(reservationSvc).RegisterRoutes(e, authMw)
	handler.NewReportHandler(reportSvc).RegisterRoutes(e)
	handler.NewFinanceHandler(ledgerSvc).RegisterRoutes(e, authMw)

	log.Printf("Manzil Hotel Dashboard starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
