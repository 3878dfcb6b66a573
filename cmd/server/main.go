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

	"github.com/outreachlab/campaign-manager-backend/docs"
	"github.com/outreachlab/campaign-manager-backend/internal/database"
	"github.com/outreachlab/campaign-manager-backend/internal/database/repository"
	"github.com/outreachlab/campaign-manager-backend/internal/router"
	"github.com/outreachlab/campaign-manager-backend/internal/services"
	"github.com/outreachlab/campaign-manager-backend/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title Campaign Manager API
// @version 1.0
// @description Campaign management, profile directory and outreach message generation

// @BasePath /

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	docs.SwaggerInfo.BasePath = getEnv("BASE_PATH", "/")

	// Configure logging
	configureLogging()

	// Initialize Sentry
	utils.InitSentry()

	// Initialize database connection
	db, err := database.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize the RabbitMQ profile ingest consumer. The API works
	// without a broker; scrapers then write to the database directly.
	rabbitMQService, err := services.NewRabbitMQService()
	if err != nil {
		logrus.Warnf("Failed to initialize RabbitMQ: %v", err)
	} else {
		defer rabbitMQService.Close()

		profileRepo := repository.NewProfileRepository(db)
		profileService := services.NewProfileService(profileRepo)
		ingestService := services.NewProfileIngestService(profileService, rabbitMQService)

		if err := ingestService.StartConsumer(); err != nil {
			logrus.Warnf("Failed to start profile ingest consumer: %v", err)
		} else {
			defer ingestService.StopConsumer()
		}
	}

	// Initialize the message service; Gemini is optional, the template
	// fallback always works.
	var generator services.TextGenerator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		geminiGenerator, err := services.NewGeminiGenerator(context.Background(), apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			logrus.Warnf("Failed to initialize Gemini, using template-based message generation only: %v", err)
		} else {
			generator = geminiGenerator
			logrus.Info("Gemini message generation enabled")
		}
	} else {
		logrus.Info("No Gemini API key found, using template-based message generation only")
	}
	messageService := services.NewMessageService(generator)

	// Initialize router
	r := router.SetupRouter(db, messageService)

	// Configure HTTP server
	port := getEnv("PORT", "8080")
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the server
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}

func configureLogging() {
	logLevel := getEnv("LOG_LEVEL", "info")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
