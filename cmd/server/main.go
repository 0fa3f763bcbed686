package main // Entry point package

import (
	"log"  // Logging library
	"time" // clock injected into the booking service

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/fabien/restaurant-booking-api/internal/config"
	"github.com/fabien/restaurant-booking-api/internal/database"
	"github.com/fabien/restaurant-booking-api/internal/handler"
	"github.com/fabien/restaurant-booking-api/internal/middleware"
	"github.com/fabien/restaurant-booking-api/internal/queue"
	"github.com/fabien/restaurant-booking-api/internal/repository"
	"github.com/fabien/restaurant-booking-api/internal/router"
	"github.com/fabien/restaurant-booking-api/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real environments set vars directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	restaurantRepo := repository.NewRestaurantRepo(db)
	tableRepo := repository.NewDiningTableRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	restaurantSvc := service.NewRestaurantService(restaurantRepo)
	tableSvc := service.NewDiningTableService(tableRepo, restaurantRepo, cfg.TableCapacityMin, cfg.TableCapacityMax)
	customerSvc := service.NewCustomerService(customerRepo)
	bookingSvc := service.NewBookingService(bookingRepo, customerRepo, tableRepo, service.BookingRules{
		HorizonDays:   cfg.BookingHorizonDays,
		CountCanceled: cfg.BookingCountCanceled,
	}, time.Now)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
	}))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAPI(e,
		handler.NewRestaurantHandler(restaurantSvc),
		handler.NewDiningTableHandler(tableSvc),
		handler.NewCustomerHandler(customerSvc),
		handler.NewBookingHandler(bookingSvc, true),
	)

	// Drain booking.created events into logs/booking.log in the background.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
