package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/outreachlab/campaign-manager-backend/internal/database"
	"github.com/outreachlab/campaign-manager-backend/internal/database/repository"
	"github.com/outreachlab/campaign-manager-backend/internal/models"
	"github.com/outreachlab/campaign-manager-backend/internal/scraper"
	"github.com/outreachlab/campaign-manager-backend/internal/services"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	searchURL := flag.String("url", "", "Search listing URL to scrape (required)")
	maxProfiles := flag.Int("max", 20, "Maximum number of profiles to scrape")
	headless := flag.Bool("headless", true, "Run the browser in headless mode")
	publish := flag.Bool("publish", false, "Publish profiles to RabbitMQ instead of writing to the database")
	timeout := flag.Duration("timeout", 30*time.Second, "Page load timeout")
	flag.Parse()

	if *searchURL == "" {
		flag.Usage()
		log.Fatal("-url is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	sink, cleanup, err := buildSink(*publish)
	if err != nil {
		logrus.Fatalf("Failed to set up profile sink: %v", err)
	}
	defer cleanup()

	collector, err := scraper.NewCollector(*headless, *timeout)
	if err != nil {
		logrus.Fatalf("Failed to start browser: %v", err)
	}
	defer collector.Close()

	ctx := context.Background()

	email := os.Getenv("LINKEDIN_EMAIL")
	password := os.Getenv("LINKEDIN_PASSWORD")
	if email != "" && password != "" {
		if err := collector.Login(ctx, email, password); err != nil {
			logrus.Fatalf("Login failed: %v", err)
		}
		logrus.Info("Logged in")
	} else {
		logrus.Warn("LINKEDIN_EMAIL/LINKEDIN_PASSWORD not set, scraping anonymously")
	}

	links, err := collector.CollectLinks(ctx, *searchURL)
	if err != nil {
		logrus.Fatalf("Failed to collect profile links: %v", err)
	}
	logrus.Infof("Found %d profile links", len(links))

	pipeline := &scraper.Pipeline{
		Fetch: collector.FetchProfile,
		Sink:  sink,
		Delay: collector.RandomDelay,
	}

	summary := pipeline.Run(ctx, links, *maxProfiles)
	logrus.Infof("Scrape run finished: %s", summary)
}

// buildSink returns the destination for scraped profiles: the RabbitMQ
// ingest queue, or the database directly.
func buildSink(publish bool) (scraper.Sink, func(), error) {
	if publish {
		rabbitMQService, err := services.NewRabbitMQService()
		if err != nil {
			return nil, nil, err
		}
		return &queueSink{rabbitMQ: rabbitMQService}, func() { rabbitMQService.Close() }, nil
	}

	db, err := database.InitDB()
	if err != nil {
		return nil, nil, err
	}
	profileService := services.NewProfileService(repository.NewProfileRepository(db))
	return &dbSink{profileService: profileService}, func() {}, nil
}

// dbSink stores profiles straight into the directory.
type dbSink struct {
	profileService *services.ProfileService
}

func (s *dbSink) Store(profile *models.CreateProfileRequest) (bool, error) {
	return s.profileService.IngestScrapedProfile(profile)
}

// queueSink hands profiles to the server's ingest consumer.
type queueSink struct {
	rabbitMQ *services.RabbitMQService
}

func (s *queueSink) Store(profile *models.CreateProfileRequest) (bool, error) {
	if err := s.rabbitMQ.PublishJSON(services.ProfileIngestQueue, profile); err != nil {
		return false, err
	}
	// The consumer decides about duplicates; from here every publish
	// counts as stored.
	return true, nil
}
