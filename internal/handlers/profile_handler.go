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

type ProfileHandler struct {
	profileService *services.ProfileService
	excelService   *excel.Service
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	profileRepo := repository.NewProfileRepository(db)
	return &ProfileHandler{
		profileService: services.NewProfileService(profileRepo),
		excelService:   excel.NewExcelService(),
	}
}

// SearchProfiles godoc
// @Summary Search profiles
// @Description List directory profiles, optionally filtered by a case-insensitive substring match
// @Tags profiles
// @Produce json
// @Param search query string false "Substring matched against name, job title, company and location"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /profiles [get]
func (h *ProfileHandler) SearchProfiles(c *gin.Context) {
	profiles, err := h.profileService.SearchProfiles(c.Query("search"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(profiles),
		"data":    profiles,
	})
}

// GetProfileByID godoc
// @Summary Get profile by ID
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfileByID(c *gin.Context) {
	profile, err := h.profileService.GetProfileByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			respondError(c, http.StatusNotFound, "Profile not found")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusOK, profile)
}

// CreateProfile godoc
// @Summary Create a profile
// @Description Add a profile to the directory; the profile URL must be unique
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body models.CreateProfileRequest true "Create profile request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req models.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	profile, err := h.profileService.CreateProfile(&req)
	if err != nil {
		if services.IsValidationError(err) || errors.Is(err, services.ErrDuplicateProfileURL) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusCreated, profile)
}

// DeleteProfile godoc
// @Summary Delete profile
// @Description Physically remove a profile from the directory
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /profiles/{id} [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	err := h.profileService.DeleteProfile(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			respondError(c, http.StatusNotFound, "Profile not found")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusOK, gin.H{})
}

// ExportProfiles godoc
// @Summary Export profiles to Excel
// @Description Download the profile directory as an .xlsx workbook
// @Tags profiles
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]interface{}
// @Router /profiles/export [get]
func (h *ProfileHandler) ExportProfiles(c *gin.Context) {
	profiles, err := h.profileService.SearchProfiles("")
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	f, err := h.excelService.ExportProfiles(profiles)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("profiles_%d.xlsx", time.Now().Unix())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
