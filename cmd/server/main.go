package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	_ "sellapi/docs" // swagger docs

	"sellapi/internal/auth"
	"sellapi/internal/cache"
	"sellapi/internal/config"
	"sellapi/internal/db"
	"sellapi/internal/handler"
	"sellapi/internal/image"
	"sellapi/internal/logger"
	"sellapi/internal/mailer"
	"sellapi/internal/repository"
	"sellapi/internal/router"
	"sellapi/internal/service"
)

// @title Seller Account API
// @version 1.0
// @description Seller account service: registration, sessions, password reset and admin CRUD.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()
	log := logger.New()

	ctx := context.Background()

	mongoClient, err := db.NewMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo init")
	}
	defer mongoClient.Disconnect(ctx)

	database := mongoClient.Database(cfg.MongoDB)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatal().Err(err).Msg("mongo indexes")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	uploader, err := image.NewCloudinaryUploader(cfg.CloudinaryURL)
	if err != nil {
		log.Fatal().Err(err).Msg("cloudinary init")
	}
	mail := mailer.NewSendGridMailer(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName)

	sellRepo := repository.NewSellRepository(database, cacheClient)
	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTExpireHours)*time.Hour)

	authService := service.NewAuthService(
		sellRepo,
		jwtService,
		uploader,
		mail,
		log,
		cfg.SendGridResetTemplate,
		cfg.ResetURLBase,
	)
	sellService := service.NewSellService(sellRepo, uploader, log)

	cookieTTL := time.Duration(cfg.CookieExpireDays) * 24 * time.Hour
	authHandler := handler.NewAuthHandler(authService, cookieTTL)
	sellHandler := handler.NewSellHandler(sellService)
	adminHandler := handler.NewAdminHandler(sellService)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, sellRepo, authHandler, sellHandler, adminHandler)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
