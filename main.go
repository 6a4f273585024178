// main.go
package main

import (
	"context"
	"log"
	"time"

	"estatelink/cmd"
	"estatelink/internal/data/repository"
	"estatelink/internal/wire"
	"estatelink/pkg/database"
	"estatelink/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Ensure schema before the listener accepts anything. The detected
	// account id type feeds the repositories.
	bootstrapCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	accountIDType, err := database.EnsureSchema(bootstrapCtx, db, logger)
	cancel()
	if err != nil {
		logger.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	// Initialize repositories and wire dependencies
	repos := repository.NewRepository(db, accountIDType, logger)
	app := wire.Wiring(repos, db, config, logger)

	// Seed the default administrator; failure is logged, not fatal.
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := app.Service.Auth.EnsureDefaultAdmin(seedCtx); err != nil {
		logger.Warn("Failed to ensure default admin account", zap.Error(err))
	}
	cancel()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server terminated", zap.Error(err))
	}
}
