package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/enerlytics/enerlytics/internal/config"
	"github.com/enerlytics/enerlytics/internal/database"
	httpHandlers "github.com/enerlytics/enerlytics/internal/http"
	"github.com/enerlytics/enerlytics/internal/lock"
	"github.com/enerlytics/enerlytics/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	var locker lock.Locker = lock.NewLocal()
	if config.UseRedisLock() {
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr()})
		locker = lock.NewRedis(client)
		log.Info().Str("addr", config.RedisAddr()).Msg("using redis refresh lock")
	}

	svcs := service.New(db, locker)
	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	httpHandlers.Register(app, svcs)

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Msg("api listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server exit")
}
