package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampaignStatus is the lifecycle status of a campaign. Only the three
// canonical lower-case values are ever persisted.
type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusInactive CampaignStatus = "inactive"
	CampaignStatusDeleted  CampaignStatus = "deleted"
)

// AllCampaignStatuses lists the accepted status values in canonical form.
var AllCampaignStatuses = []CampaignStatus{
	CampaignStatusActive,
	CampaignStatusInactive,
	CampaignStatusDeleted,
}

// ParseCampaignStatus parses a client-supplied status case-insensitively.
// The boolean reports whether the input is one of the accepted values.
func ParseCampaignStatus(s string) (CampaignStatus, bool) {
	switch CampaignStatus(strings.ToLower(s)) {
	case CampaignStatusActive:
		return CampaignStatusActive, true
	case CampaignStatusInactive:
		return CampaignStatusInactive, true
	case CampaignStatusDeleted:
		return CampaignStatusDeleted, true
	}
	return "", false
}

// CampaignStatusValues returns the accepted values joined for error messages.
func CampaignStatusValues() string {
	values := make([]string, len(AllCampaignStatuses))
	for i, s := range AllCampaignStatuses {
		values[i] = string(s)
	}
	return strings.Join(values, ", ")
}

// Campaign represents an outreach campaign with its lead URLs and linked
// account identifiers. Delete is a status transition, never a row removal.
type Campaign struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string         `json:"name" gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Status      CampaignStatus `json:"status" gorm:"type:varchar(16);index;default:'active'"`
	Leads       []string       `json:"leads" gorm:"serializer:json"`
	AccountIDs  []string       `json:"accountIDs" gorm:"serializer:json"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}

// BeforeCreate assigns the ID and defaults the status so the model behaves
// the same on every database backend.
func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = CampaignStatusActive
	}
	return nil
}

// BeforeSave keeps the stored status canonical even when a caller sets the
// field directly with mixed casing.
func (c *Campaign) BeforeSave(tx *gorm.DB) error {
	if c.Status != "" {
		c.Status = CampaignStatus(strings.ToLower(string(c.Status)))
	}
	if c.Leads == nil {
		c.Leads = []string{}
	}
	if c.AccountIDs == nil {
		c.AccountIDs = []string{}
	}
	return nil
}

// StringList is a string slice that also accepts a JSON-encoded string
// payload (some clients double-encode accountIDs). A string that fails to
// parse decodes as an empty list rather than an error.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		*l = StringList{}
		return nil
	}
	*l = items
	return nil
}

// CreateCampaignRequest represents the request to create a new campaign
type CreateCampaignRequest struct {
	Name        string     `json:"name" example:"Founder outreach Q3"`
	Description string     `json:"description" example:"Lead-gen agency founders in DACH"`
	Status      string     `json:"status" example:"active"`
	Leads       []string   `json:"leads"`
	AccountIDs  StringList `json:"accountIDs"`
}

// UpdateCampaignRequest represents a partial campaign update; only fields
// present in the payload are applied.
type UpdateCampaignRequest struct {
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	Status      *string     `json:"status"`
	Leads       *[]string   `json:"leads"`
	AccountIDs  *StringList `json:"accountIDs"`
}
