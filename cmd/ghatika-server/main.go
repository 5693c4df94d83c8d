package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/svemuri/ghatika/internal/api"
	"github.com/svemuri/ghatika/internal/config"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	r := gin.Default()
	api.RegisterRoutes(r, cfg)

	log.Info().
		Str("addr", cfg.Addr).
		Float64("default_lat", cfg.DefaultLat).
		Float64("default_lon", cfg.DefaultLon).
		Str("default_tz", cfg.DefaultTZ.String()).
		Msg("ghatika server listening")

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
