package main

import (
	"fmt"
	"os"

	"github.com/Dev-HideyukiTakahashi/rocketlog-api/config"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/database"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/middleware"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "rocketlog-api").
		Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}
	log.Info().Msg("database connected and migrated")

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.ErrorHandler(log))
	routes.SetupRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Msg("server listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
