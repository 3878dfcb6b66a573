package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/outreachlab/campaign-manager-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// Service builds Excel workbooks for campaign and profile exports
type Service struct{}

// NewExcelService creates a new Excel service instance
func NewExcelService() *Service {
	return &Service{}
}

// ExportProfiles builds a workbook listing the profile directory
func (s *Service) ExportProfiles(profiles []*models.Profile) (*excelize.File, error) {
	f := excelize.NewFile()

	headers := []string{"Name", "Job Title", "Company", "Location", "Profile URL", "Created At"}
	if err := s.writeHeader(f, headers); err != nil {
		return nil, err
	}

	for i, p := range profiles {
		row := i + 2
		values := []interface{}{
			p.Name,
			p.JobTitle,
			p.Company,
			p.Location,
			p.ProfileURL,
			p.CreatedAt.Format(time.RFC3339),
		}
		if err := s.writeRow(f, row, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// ExportCampaigns builds a workbook listing non-deleted campaigns
func (s *Service) ExportCampaigns(campaigns []*models.Campaign) (*excelize.File, error) {
	f := excelize.NewFile()

	headers := []string{"Name", "Description", "Status", "Leads", "Account IDs", "Created At", "Updated At"}
	if err := s.writeHeader(f, headers); err != nil {
		return nil, err
	}

	for i, c := range campaigns {
		row := i + 2
		values := []interface{}{
			c.Name,
			c.Description,
			string(c.Status),
			strings.Join(c.Leads, "\n"),
			strings.Join(c.AccountIDs, "\n"),
			c.CreatedAt.Format(time.RFC3339),
			c.UpdatedAt.Format(time.RFC3339),
		}
		if err := s.writeRow(f, row, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func (s *Service) writeHeader(f *excelize.File, headers []string) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"D9D9D9"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) writeRow(f *excelize.File, row int, values []interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}
