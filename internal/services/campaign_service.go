package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/outreachlab/campaign-manager-backend/internal/database/repository"
	"github.com/outreachlab/campaign-manager-backend/internal/models"
	"github.com/outreachlab/campaign-manager-backend/internal/utils"

	"gorm.io/gorm"
)

type CampaignService struct {
	campaignRepo *repository.CampaignRepository
}

func NewCampaignService(campaignRepo *repository.CampaignRepository) *CampaignService {
	return &CampaignService{campaignRepo: campaignRepo}
}

// CreateCampaign validates and sanitizes the payload, then persists a new
// campaign. Blank leads are dropped; malformed account identifiers are
// silently filtered out, never rejected.
func (s *CampaignService) CreateCampaign(req *models.CreateCampaignRequest) (*models.Campaign, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, NewValidationError("Name and description are required fields")
	}

	status := models.CampaignStatusActive
	if req.Status != "" {
		parsed, ok := models.ParseCampaignStatus(req.Status)
		if !ok {
			return nil, NewValidationError("Status must be one of: " + models.CampaignStatusValues())
		}
		status = parsed
	}

	campaign := &models.Campaign{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		Leads:       utils.FilterBlankStrings(req.Leads),
		AccountIDs:  utils.FilterAccountIDs(req.AccountIDs),
	}

	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return campaign, nil
}

// ListCampaigns retrieves all campaigns that are not soft-deleted
func (s *CampaignService) ListCampaigns() ([]*models.Campaign, error) {
	campaigns, err := s.campaignRepo.GetAllVisible()
	if err != nil {
		return nil, fmt.Errorf("failed to get campaigns: %w", err)
	}
	if campaigns == nil {
		campaigns = []*models.Campaign{}
	}
	return campaigns, nil
}

// GetCampaignByID retrieves a single campaign. Soft-deleted campaigns are
// not found through this path.
func (s *CampaignService) GetCampaignByID(id string) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetVisibleByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

// UpdateCampaign applies a partial update. Status is re-validated and
// re-normalized when present; accountIDs are re-filtered when present.
// Leads are stored as sent, matching the create/update asymmetry of the
// original API.
func (s *CampaignService) UpdateCampaign(id string, req *models.UpdateCampaignRequest) (*models.Campaign, error) {
	var status models.CampaignStatus
	if req.Status != nil {
		parsed, ok := models.ParseCampaignStatus(*req.Status)
		if !ok {
			return nil, NewValidationError("Status must be one of: " + models.CampaignStatusValues())
		}
		status = parsed
	}

	campaign, err := s.campaignRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, NewValidationError("Campaign name is required")
		}
		campaign.Name = *req.Name
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, NewValidationError("Campaign description is required")
		}
		campaign.Description = *req.Description
	}
	if req.Status != nil {
		campaign.Status = status
	}
	if req.Leads != nil {
		campaign.Leads = *req.Leads
	}
	if req.AccountIDs != nil {
		campaign.AccountIDs = utils.FilterAccountIDs(*req.AccountIDs)
	}

	if err := s.campaignRepo.Update(campaign); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	return campaign, nil
}

// SoftDeleteCampaign transitions a campaign to the deleted status. The
// record stays in storage and disappears from the public read paths.
func (s *CampaignService) SoftDeleteCampaign(id string) error {
	campaign, err := s.campaignRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampaignNotFound
		}
		return fmt.Errorf("failed to get campaign: %w", err)
	}

	campaign.Status = models.CampaignStatusDeleted
	if err := s.campaignRepo.Update(campaign); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	return nil
}
