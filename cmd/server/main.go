package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"realty-server/internal/application/services"
	"realty-server/internal/config"
	"realty-server/internal/delivery/handler"
	"realty-server/internal/infrastructure"
	"realty-server/internal/infrastructure/db/postgres"
)

func main() {
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	accountRepo := postgres.NewAccountRepository(db)
	listingRepo := postgres.NewListingRepository(db)

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	redisService := infrastructure.NewRedisService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	mailService := infrastructure.NewMailService(cfg.EmailAPIKey, cfg.EmailSender)
	uploadService, err := infrastructure.NewUploadService(cfg.CloudinaryURL, cfg.CloudinaryFolder, cfg.UploadRatePerSec, cfg.UploadBurst)
	if err != nil {
		log.Fatal("failed to configure image storage:", err)
	}

	authService := services.NewAuthService(accountRepo, jwtService)
	accountService := services.NewAccountService(accountRepo, listingRepo, mailService)
	listingService := services.NewListingService(listingRepo, accountRepo, redisService)

	gate := handler.NewAuthMiddleware(jwtService)

	e := handler.NewRouter(handler.Handlers{
		Auth:    handler.NewAuthHandler(authService, cfg.TokenTTL),
		Listing: handler.NewListingHandler(listingService),
		Account: handler.NewAccountHandler(accountService),
		Upload:  handler.NewUploadHandler(uploadService),
		Gate:    gate,
	})

	go func() {
		log.Println("server running on :" + cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Println("server stopped:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown:", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
