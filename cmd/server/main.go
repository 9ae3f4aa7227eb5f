package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/avelichko/consult-api/internal/config"
	"github.com/avelichko/consult-api/internal/database"
	"github.com/avelichko/consult-api/internal/handler"
	"github.com/avelichko/consult-api/internal/middleware"
	"github.com/avelichko/consult-api/internal/notifier"
	"github.com/avelichko/consult-api/internal/queue"
	"github.com/avelichko/consult-api/internal/repository"
	"github.com/avelichko/consult-api/internal/router"
	queue_publisher "github.com/avelichko/consult-api/internal/service"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("migrate database: %v", err)
	}
	cancel()

	// Repositories
	clients := repository.NewClientRepo(db)
	appointments := repository.NewAppointmentRepo(db)
	contacts := repository.NewContactRepo(db)
	progress := repository.NewProgressRepo(db)
	bookings := repository.NewBookingRepo(db, clients, appointments, cfg.BcryptCost)

	// Side channels.  The notifier silently skips sends when the Telegram
	// credentials are absent; the queue publisher is wired only when a
	// broker URL is configured.
	tg := notifier.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
	var publisher handler.EventPublisher
	if cfg.QueueURL != "" {
		publisher = queue_publisher.New(cfg.QueueURL)
		go func() {
			if err := queue.StartAppointmentConsumer(cfg.QueueURL); err != nil {
				log.Printf("appointment consumer stopped: %v", err)
			}
		}()
	}

	// Handlers
	appointmentH := handler.NewAppointmentHandler(bookings, tg, publisher)
	contactH := handler.NewContactHandler(contacts, tg)
	progressH := handler.NewProgressHandler(clients, progress)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = router.HTTPErrorHandler
	e.Use(middleware.CORS())
	// Optional Redis-backed response cache for the read endpoints.  A nil
	// client (Redis absent or unreachable) degrades to a pass-through.
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), config.NewRedisClient()))

	router.RegisterRoutes(e, appointmentH, contactH, progressH)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
