package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fraud-detection-backend/internal/alerts"
	"fraud-detection-backend/internal/config"
	"fraud-detection-backend/internal/middleware"
	"fraud-detection-backend/internal/models"
	"fraud-detection-backend/internal/routes"
	"fraud-detection-backend/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	utils.LogLevel = utils.ParseLogLevel(cfg.LogLevel)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := db.AutoMigrate(&models.Fraud{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	hub := alerts.NewHub()
	notifiers := alerts.Multi{hub}
	if cfg.DiscordEnabled() {
		discord, err := alerts.NewDiscord(cfg.DiscordBotToken, cfg.DiscordChannelID)
		if err != nil {
			log.Fatalf("init discord alerts: %v", err)
		}
		notifiers = append(notifiers, discord)
		log.Println("[Alerts] Discord fraud alerts enabled")
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	// CORS config
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	r.Use(cors.New(corsConfig))

	routes.RegisterRoutes(r, db, cfg, hub, notifiers)

	srv := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Printf("fraud detection backend listening on %s (predictor %s)", cfg.HTTPAddress(), cfg.PredictorBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := hub.Close(); err != nil {
		log.Printf("close websocket hub: %v", err)
	}
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
