package repository

import (
	"strings"

	"github.com/outreachlab/campaign-manager-backend/internal/models"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByProfileURL retrieves a profile by its unique source URL
func (r *ProfileRepository) GetByProfileURL(profileURL string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "profile_url = ?", profileURL).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Search returns profiles matching the query as a case-insensitive
// substring across name, job title, company and location, newest first.
// An empty query returns the whole directory.
func (r *ProfileRepository) Search(query string) ([]*models.Profile, error) {
	var profiles []*models.Profile
	tx := r.db.Order("created_at DESC")

	if query != "" {
		// lower() keeps the match case-insensitive on both Postgres and SQLite
		pattern := "%" + strings.ToLower(query) + "%"
		tx = tx.Where(
			"lower(name) LIKE ? OR lower(job_title) LIKE ? OR lower(company) LIKE ? OR lower(location) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	err := tx.Find(&profiles).Error
	return profiles, err
}

// Delete physically removes a profile
func (r *ProfileRepository) Delete(id string) error {
	return r.db.Delete(&models.Profile{}, "id = ?", id).Error
}

// Count returns the number of profiles in the directory
func (r *ProfileRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Count(&count).Error
	return count, err
}
