package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"MouqabRealEstate/config"
	"MouqabRealEstate/routes"
	"MouqabRealEstate/store"
	"MouqabRealEstate/utils"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	gateway, err := store.New(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize store")
	}
	defer gateway.Close(context.Background())

	cache := utils.NewCache(cfg.RedisAddr, cfg.RedisPassword, cfg.SearchCacheTTL)
	if cache != nil {
		logger.WithField("addr", cfg.RedisAddr).Info("search cache enabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.RegisterRoutes(e, gateway, cache, cfg)

	logger.WithField("port", cfg.Port).Info("starting server")
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
