package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/outreachlab/campaign-manager-backend/internal/database/repository"
	"github.com/outreachlab/campaign-manager-backend/internal/models"

	"gorm.io/gorm"
)

type ProfileService struct {
	profileRepo *repository.ProfileRepository
}

func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// SearchProfiles returns directory entries matching the query. An empty
// query returns all profiles, newest first.
func (s *ProfileService) SearchProfiles(query string) ([]*models.Profile, error) {
	profiles, err := s.profileRepo.Search(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}
	if profiles == nil {
		profiles = []*models.Profile{}
	}
	return profiles, nil
}

// GetProfileByID retrieves a single profile
func (s *ProfileService) GetProfileByID(id string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// CreateProfile validates the payload and inserts a new directory entry.
// The profile URL must be unique across the directory.
func (s *ProfileService) CreateProfile(req *models.CreateProfileRequest) (*models.Profile, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.JobTitle) == "" ||
		strings.TrimSpace(req.Company) == "" ||
		strings.TrimSpace(req.ProfileURL) == "" {
		return nil, NewValidationError("Please provide name, job title, company, and profile URL")
	}

	if _, err := s.profileRepo.GetByProfileURL(req.ProfileURL); err == nil {
		return nil, ErrDuplicateProfileURL
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check profile URL: %w", err)
	}

	profile := &models.Profile{
		Name:       req.Name,
		JobTitle:   req.JobTitle,
		Company:    req.Company,
		Location:   req.Location,
		ProfileURL: req.ProfileURL,
	}

	if err := s.profileRepo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// DeleteProfile physically removes a profile from the directory
func (s *ProfileService) DeleteProfile(id string) error {
	if _, err := s.profileRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if err := s.profileRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}

// IngestScrapedProfile stores a scraped profile, skipping entries whose
// URL is already in the directory. The boolean reports whether a new row
// was created.
func (s *ProfileService) IngestScrapedProfile(req *models.CreateProfileRequest) (bool, error) {
	_, err := s.CreateProfile(req)
	if err != nil {
		if errors.Is(err, ErrDuplicateProfileURL) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
