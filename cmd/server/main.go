package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/itspatil/cinebook/internal/config"
	"github.com/itspatil/cinebook/internal/database"
	"github.com/itspatil/cinebook/internal/handler"
	"github.com/itspatil/cinebook/internal/middleware"
	"github.com/itspatil/cinebook/internal/queue"
	"github.com/itspatil/cinebook/internal/repository"
	"github.com/itspatil/cinebook/internal/router"
	"github.com/itspatil/cinebook/internal/web"
)

func main() {
	_ = godotenv.Load() // optional .env for local runs

	cfg := config.Load()
	setupLogger(cfg.Env)

	// The store is the only hard dependency: a database that cannot be
	// initialized is fatal. Cache and broker degrade to disabled.
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}
	if err := database.Seed(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("seed database")
	}

	movieRepo := repository.NewMovieRepo(db)
	theaterRepo := repository.NewTheaterRepo(db)
	showtimeRepo := repository.NewShowtimeRepo(db)
	seatRepo := repository.NewSeatRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	publisher := queue.NewPublisher(cfg.BrokerURL)
	if publisher != nil {
		go queue.StartBookingConsumer(cfg.BrokerURL)
	}

	movieHandler := handler.NewMovieHandler(movieRepo, showtimeRepo, seatRepo)
	theaterHandler := handler.NewTheaterHandler(theaterRepo)
	bookingHandler := handler.NewBookingHandler(movieRepo, theaterRepo, showtimeRepo, seatRepo, bookingRepo, publisher)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Info().Msg("redis unavailable, response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(requestLogger())

	router.RegisterRoutes(e, movieHandler, theaterHandler, bookingHandler, cacheMW, rateMW)
	if err := web.Register(e); err != nil {
		log.Fatal().Err(err).Msg("mount client assets")
	}

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Str("db", cfg.DBPath).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// setupLogger configures the global zerolog logger: human-readable
// console output in dev, JSON elsewhere.
func setupLogger(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// requestLogger emits one structured log line per request.
func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.Str("method", v.Method).Str("uri", v.URI).Int("status", v.Status).Msg("request")
			return nil
		},
	})
}
