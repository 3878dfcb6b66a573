package repository

import (
	"github.com/outreachlab/campaign-manager-backend/internal/models"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create creates a new campaign
func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// GetByID retrieves a campaign by ID regardless of status. Soft-deleted
// records are visible here; public reads go through GetVisibleByID.
func (r *CampaignRepository) GetByID(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetVisibleByID retrieves a campaign by ID, excluding soft-deleted records
func (r *CampaignRepository) GetVisibleByID(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Where("id = ? AND status <> ?", id, models.CampaignStatusDeleted).
		First(&campaign).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetAllVisible retrieves all campaigns that are not soft-deleted, in
// insertion order
func (r *CampaignRepository) GetAllVisible() ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.Where("status <> ?", models.CampaignStatusDeleted).
		Order("created_at ASC").
		Find(&campaigns).Error
	return campaigns, err
}

// Update persists the full campaign record and refreshes updated_at
func (r *CampaignRepository) Update(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

// Count returns the total number of campaign rows, soft-deleted included
func (r *CampaignRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Campaign{}).Count(&count).Error
	return count, err
}
