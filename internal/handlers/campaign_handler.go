package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/outreachlab/campaign-manager-backend/internal/database/repository"
	"github.com/outreachlab/campaign-manager-backend/internal/models"
	"github.com/outreachlab/campaign-manager-backend/internal/services"
	"github.com/outreachlab/campaign-manager-backend/internal/services/excel"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	excelService    *excel.Service
}

func NewCampaignHandler(db *gorm.DB) *CampaignHandler {
	campaignRepo := repository.NewCampaignRepository(db)
	return &CampaignHandler{
		campaignService: services.NewCampaignService(campaignRepo),
		excelService:    excel.NewExcelService(),
	}
}

// ListCampaigns godoc
// @Summary List campaigns
// @Description Get all campaigns that have not been deleted
// @Tags campaigns
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.campaignService.ListCampaigns()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusOK, campaigns)
}

// GetCampaignByID godoc
// @Summary Get campaign by ID
// @Description Get a single campaign; deleted campaigns are not found
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaignByID(c *gin.Context) {
	campaign, err := h.campaignService.GetCampaignByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			respondError(c, http.StatusNotFound, "Campaign not found")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusOK, campaign)
}

// CreateCampaign godoc
// @Summary Create a new campaign
// @Description Create a campaign; blank leads and malformed account IDs are dropped
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body models.CreateCampaignRequest true "Create campaign request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	campaign, err := h.campaignService.CreateCampaign(&req)
	if err != nil {
		if services.IsValidationError(err) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusCreated, campaign)
}

// UpdateCampaign godoc
// @Summary Update campaign
// @Description Apply a partial update to a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body models.UpdateCampaignRequest true "Update campaign request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	var req models.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	campaign, err := h.campaignService.UpdateCampaign(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			respondError(c, http.StatusNotFound, "Campaign not found")
			return
		}
		if services.IsValidationError(err) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusOK, campaign)
}

// DeleteCampaign godoc
// @Summary Soft-delete campaign
// @Description Mark a campaign deleted; the record is kept in storage
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	err := h.campaignService.SoftDeleteCampaign(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			respondError(c, http.StatusNotFound, "Campaign not found")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	// Callers must not assume the deleted record is returned
	respondData(c, http.StatusOK, gin.H{})
}

// ExportCampaigns godoc
// @Summary Export campaigns to Excel
// @Description Download non-deleted campaigns as an .xlsx workbook
// @Tags campaigns
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/export [get]
func (h *CampaignHandler) ExportCampaigns(c *gin.Context) {
	campaigns, err := h.campaignService.ListCampaigns()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	f, err := h.excelService.ExportCampaigns(campaigns)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("campaigns_%d.xlsx", time.Now().Unix())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
