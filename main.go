package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"luminai/billing"
	"luminai/config"
	"luminai/database"
	"luminai/handlers"
	"luminai/pexels"
	"luminai/routes"
	"luminai/staticdata"
	"luminai/storage"
	"luminai/upload"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting LuminAI backend server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if err := staticdata.Load(); err != nil {
		log.Fatal("Failed to load static data: ", err)
	}

	log.Println("Connecting to MongoDB...")
	var dbErr error
	for i := 1; i <= 3; i++ {
		if dbErr = database.Connect(cfg.MongoURL, cfg.MongoDatabase); dbErr == nil {
			break
		}
		log.Printf("MongoDB connection attempt %d failed: %v", i, dbErr)
		time.Sleep(2 * time.Second)
	}
	if dbErr != nil {
		log.Fatal("Failed to connect to MongoDB: ", dbErr)
	}

	uploader, err := upload.New(cfg.CloudinaryURL)
	if err != nil {
		log.Fatal("Cloudinary configuration error: ", err)
	}

	handlers.SetPostStore(storage.NewPostStore(database.Posts))
	handlers.SetPhotoUploader(uploader)
	handlers.SetImageSearcher(pexels.New(cfg.PexelsAPIKey))
	handlers.SetBillingClient(billing.New(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.ClientURL))

	router := routes.SetupRouter(cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server is running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown: ", err)
	}

	if err := database.Disconnect(); err != nil {
		log.Println("MongoDB disconnect error: ", err)
	}

	log.Println("Server stopped gracefully")
}
