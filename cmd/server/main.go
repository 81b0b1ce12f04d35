package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/bioskop-labs/booking-service/internal/config"
	"github.com/bioskop-labs/booking-service/internal/handler"
	"github.com/bioskop-labs/booking-service/internal/middleware"
	"github.com/bioskop-labs/booking-service/internal/queue"
	"github.com/bioskop-labs/booking-service/internal/repository"
	"github.com/bioskop-labs/booking-service/internal/router"
	queue_publisher "github.com/bioskop-labs/booking-service/internal/service"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	inventory := repository.NewInventoryRepo(repository.DefaultShowtimes())
	bookings := repository.NewBookingRepo()
	requests := queue.NewRequestQueue(cfg.QueueCapacity)

	processor := queue.NewProcessor(requests, inventory, bookings)
	processor.Publisher = queue_publisher.PublishBookingConfirmed

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go processor.Run(ctx)

	e := echo.New()
	router.RegisterRoutes(e)

	// Rate limiting degrades to pass-through when redis is absent.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	router.RegisterBooking(e, handler.NewBookingHandler(processor), handler.NewShowtimeHandler(processor), limiter)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
