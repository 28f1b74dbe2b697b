package main

import (
	"log"

	"github.com/gcharris/writers-factory-app-sub009/config"
	"github.com/gcharris/writers-factory-app-sub009/internal/api"
	"github.com/gcharris/writers-factory-app-sub009/internal/database"
	"github.com/gcharris/writers-factory-app-sub009/internal/models"
	"github.com/gcharris/writers-factory-app-sub009/internal/services"
	"github.com/gcharris/writers-factory-app-sub009/pkg/logger"

	"go.uber.org/zap"
)

// @title Writers Factory Engine API
// @version 1.0
// @description Model orchestration and scene-enhancement routing engine for the Writers Factory desktop app.

// @host localhost:8173
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Factory-Token

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if _, err := database.Connect(cfg.DBPath); err != nil {
		logger.Log.Fatal("failed to connect database", zap.Error(err))
	}

	if err := database.ConnectRedis(cfg); err != nil {
		logger.Log.Fatal("failed to connect redis", zap.Error(err))
	}

	// Migrate the schema
	if err := database.DB.AutoMigrate(
		&models.Model{},
		&models.RoleBinding{},
		&models.TournamentPick{},
		&models.SettingsDoc{},
	); err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}

	if err := services.SeedCatalog(cfg.ProviderCredentials()); err != nil {
		logger.Log.Fatal("failed to seed catalog", zap.Error(err))
	}

	router := api.NewRouter(cfg)

	logger.Log.Info("engine listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("server exited", zap.Error(err))
	}
}
