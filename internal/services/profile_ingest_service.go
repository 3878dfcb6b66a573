package services

import (
	"encoding/json"

	"github.com/outreachlab/campaign-manager-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// ProfileIngestService consumes scraped profiles from RabbitMQ and stores
// them in the directory, skipping URLs that are already present.
type ProfileIngestService struct {
	profileService *ProfileService
	rabbitMQ       *RabbitMQService
	stopChan       chan struct{}
}

func NewProfileIngestService(profileService *ProfileService, rabbitMQ *RabbitMQService) *ProfileIngestService {
	return &ProfileIngestService{
		profileService: profileService,
		rabbitMQ:       rabbitMQ,
		stopChan:       make(chan struct{}),
	}
}

// StartConsumer begins consuming the profile ingest queue.
func (s *ProfileIngestService) StartConsumer() error {
	msgs, err := s.rabbitMQ.Consume(ProfileIngestQueue)
	if err != nil {
		return err
	}

	logrus.Infof("RabbitMQ consumer started for %s queue", ProfileIngestQueue)

	go func() {
		for {
			select {
			case <-s.stopChan:
				logrus.Info("Profile ingest consumer stopped")
				return
			case msg, ok := <-msgs:
				if !ok {
					logrus.Warn("RabbitMQ channel closed, stopping profile ingest consumer")
					return
				}

				var req models.CreateProfileRequest
				if err := json.Unmarshal(msg.Body, &req); err != nil {
					logrus.Warnf("Discarding malformed profile ingest message: %v", err)
					continue
				}

				created, err := s.profileService.IngestScrapedProfile(&req)
				if err != nil {
					logrus.Warnf("Failed to ingest profile %s: %v", req.ProfileURL, err)
					continue
				}
				if created {
					logrus.Infof("Ingested scraped profile: %s", req.Name)
				} else {
					logrus.Debugf("Skipped duplicate profile: %s", req.ProfileURL)
				}
			}
		}
	}()

	return nil
}

// StopConsumer stops the ingest consumer goroutine.
func (s *ProfileIngestService) StopConsumer() {
	close(s.stopChan)
}
