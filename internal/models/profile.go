package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile represents a scraped or manually entered directory entry
// describing a person. Unlike campaigns, profiles are deleted physically.
type Profile struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name       string    `json:"name" gorm:"type:varchar(255);not null"`
	JobTitle   string    `json:"jobTitle" gorm:"type:varchar(255);not null"`
	Company    string    `json:"company" gorm:"type:varchar(255);not null"`
	Location   string    `json:"location" gorm:"type:varchar(255)"`
	ProfileURL string    `json:"profileUrl" gorm:"type:varchar(512);not null;uniqueIndex"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}

// BeforeCreate assigns the ID so the model behaves the same on every
// database backend.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// CreateProfileRequest represents the request to add a profile to the
// directory.
type CreateProfileRequest struct {
	Name       string `json:"name" example:"Ana Silva"`
	JobTitle   string `json:"jobTitle" example:"CTO"`
	Company    string `json:"company" example:"Acme"`
	Location   string `json:"location" example:"Berlin"`
	ProfileURL string `json:"profileUrl" example:"https://linkedin.com/in/anasilva"`
}
