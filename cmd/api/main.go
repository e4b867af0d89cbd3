package main

import (
	"os"

	"megaferia-backend/internal/config"
	"megaferia-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	// Load từ .env file (development/local)
	// Production sẽ dùng system environment variables
	envFileErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("development", "info")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.App.Environment, cfg.Log.Level)
	if envFileErr != nil {
		log.Debug().Msg("No .env file found, using system environment variables")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("environment", cfg.App.Environment).
		Msg("Starting")

	if err := Serve(cfg); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
}
