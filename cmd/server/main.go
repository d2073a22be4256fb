package main // Entry point package

import (
	"context"
	"log" // Logging library
	"time"

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/teeman-cleaning/booking-service/internal/config"
	"github.com/teeman-cleaning/booking-service/internal/database"
	"github.com/teeman-cleaning/booking-service/internal/handler"
	"github.com/teeman-cleaning/booking-service/internal/mailer"
	"github.com/teeman-cleaning/booking-service/internal/middleware"
	"github.com/teeman-cleaning/booking-service/internal/queue"
	"github.com/teeman-cleaning/booking-service/internal/repository"
	"github.com/teeman-cleaning/booking-service/internal/router"
)

func main() {
	// .env is optional; in production everything arrives as real env vars.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()
	log.Println("connected to MySQL")

	bookings := repository.NewBookingRepo(db)
	admins := repository.NewAdminRepo(db)
	sessions := repository.NewSessionRepo(db)

	// Redis backs the login rate limiter and the summary cache.  A nil
	// client simply turns both middlewares into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and caching disabled")
	}
	loginLimiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	summaryCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// The notification consumer owns the only mail transport in the
	// process.  It reconnects on broker failure and never touches the
	// request path.
	smtp := mailer.NewSMTP(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass)
	go func() {
		if err := queue.StartBookingConsumer(smtp, cfg.StaffEmail); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	// Housekeeping: drop expired session rows once an hour.  Validation
	// already ignores them, so this only reclaims table space.
	go func() {
		for range time.Tick(time.Hour) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := sessions.DeleteExpired(ctx); err != nil {
				log.Printf("session cleanup failed: %v", err)
			}
			cancel()
		}
	}()

	e := echo.New()
	if cfg.ClientURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     []string{cfg.ClientURL},
			AllowCredentials: true,
		}))
	}
	e.Static("/", "public")

	authH := handler.NewAuthHandler(cfg, admins, sessions)
	bookingH := handler.NewBookingHandler(bookings)
	dashH := handler.NewDashboardHandler(bookings)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, sessions, loginLimiter)
	router.RegisterAPI(e, bookingH, dashH, sessions, summaryCache)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
