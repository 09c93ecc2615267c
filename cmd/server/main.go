package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/TFMV/uspsaddress/internal/store"
	"github.com/TFMV/uspsaddress/pkg/api"
	"github.com/TFMV/uspsaddress/pkg/config"
	"github.com/TFMV/uspsaddress/pkg/db"
	"github.com/TFMV/uspsaddress/pkg/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(os.Getenv("CONFIG_PATH"))
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := utils.NewLogger(os.Stdout, "server", cfg.Log.Level, cfg.Log.Pretty)

	handler := &api.Handler{
		Workers: cfg.Batch.Workers,
		Metrics: api.NewMetrics("uspsaddress"),
		Log:     logger,
	}

	// The database is optional; without it batches are not persisted
	if cfg.HasDB() {
		if err := cfg.ValidateDB(); err != nil {
			logger.Fatal().Err(err).Msg("Invalid database config")
		}
		pool, err := db.NewConnection(context.Background(), cfg.DBCreds)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create database connection pool")
		}
		defer pool.Close()

		if err := db.RunMigrations(pool); err != nil {
			logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
		handler.Store = store.New(pool)
		logger.Info().Msg("Database connection pool created successfully")
	}

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("Starting server")
	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}
