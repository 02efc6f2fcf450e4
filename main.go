package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"memory-game-service/handlers"
	"memory-game-service/middleware"
	"memory-game-service/models"
	"memory-game-service/services"
	"memory-game-service/utils"
	"memory-game-service/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, reading environment variables directly")
	}
	if lvl, err := zerolog.ParseLevel(utils.GetEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Score{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mailer := workers.NewMailerFromEnv()
	statsService := services.NewStatsService(db)

	// Warm the average-score cache so the first challenge and congrats
	// mails have something to compare against.
	if _, err := statsService.CacheAverageScore(); err != nil {
		log.Error().Err(err).Msg("initial average score refresh failed")
	}

	notifier := workers.NewCongratsNotifier(db, mailer, statsService.AverageScore)
	go notifier.Run(ctx)

	maxBoardSize := utils.GetEnvInt("MAX_BOARD_SIZE", 500)
	gameService := services.NewGameService(db, notifier, maxBoardSize)
	userService := services.NewUserService(db)
	scoreService := services.NewScoreService(db)

	interval := time.Duration(utils.GetEnvInt("SCHEDULE_INTERVAL_MINUTES", 60)) * time.Minute
	sched, err := statsService.StartScoreScheduler(mailer, interval)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start score scheduler")
	}

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: utils.GetEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		AllowMethods: "GET,POST,PUT,OPTIONS",
	}))

	handlers.SetupUserRoutes(app, userService)
	handlers.SetupGameRoutes(app, gameService)
	handlers.SetupScoreRoutes(app, scoreService)

	port := utils.GetEnv("PORT", "8080")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Error().Err(err).Msg("server exited")
			stop()
		}
	}()

	log.Info().Str("port", port).Dur("schedule_interval", interval).Msg("memory game service running")

	<-ctx.Done()
	log.Info().Msg("shutting down")
	if err := sched.Shutdown(); err != nil {
		log.Error().Err(err).Msg("scheduler shutdown failed")
	}
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
