package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"speechdown-backend/internal/config"
	"speechdown-backend/internal/database"
	"speechdown-backend/internal/handlers"
	"speechdown-backend/internal/repository"
	"speechdown-backend/internal/router"
	"speechdown-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting SpeechDown Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Connect MongoDB ────
	client, err := database.NewMongoClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("✗ MongoDB connection failed: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client.Disconnect(ctx)
	}()
	log.Println("✓ MongoDB connected")

	db := client.Database(cfg.MongoDB)

	// ──── Step 3: Optional Redis (TTS audio cache) ────
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		log.Println("✓ Redis connected (TTS cache enabled)")
	}

	// ──── Initialize Repositories ────
	userRepo := repository.NewUserRepo(db)
	childRepo := repository.NewChildRepo(db)
	activityRepo := repository.NewActivityRepo(db)
	progressRepo := repository.NewProgressRepo(db)
	activityProgressRepo := repository.NewActivityProgressRepo(db)

	// ──── Step 4: Initialize Gemini Client ────
	geminiClient, err := services.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiClient.Close()
	log.Println("✓ Gemini client initialized")

	// ──── Initialize Services ────
	generator := services.NewActivityGenerator(geminiClient, activityRepo)
	ttsService := services.NewTTSService(cfg.TTSLanguage, redisClient)

	// ──── Initialize Handlers ────
	userHandler := handlers.NewUserHandler(userRepo)
	childHandler := handlers.NewChildHandler(childRepo)
	activityHandler := handlers.NewActivityHandler(activityRepo, activityProgressRepo, generator)
	progressHandler := handlers.NewProgressHandler(progressRepo, childRepo)
	ttsHandler := handlers.NewTTSHandler(ttsService)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(userHandler, childHandler, activityHandler, progressHandler, ttsHandler, cfg.CORSOrigin)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ SpeechDown Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
