package handlers

import (
	"net/http"

	"github.com/outreachlab/campaign-manager-backend/internal/models"
	"github.com/outreachlab/campaign-manager-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// GenerateMessage godoc
// @Summary Generate an outreach message
// @Description Produce a personalized outreach message from profile fields. Uses Gemini when configured and falls back to a deterministic template.
// @Tags messages
// @Accept json
// @Produce json
// @Param request body models.GenerateMessageRequest true "Profile fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /messages/generate [post]
func (h *MessageHandler) GenerateMessage(c *gin.Context) {
	var req models.GenerateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	result, err := h.messageService.GenerateMessage(c.Request.Context(), &req)
	if err != nil {
		if services.IsValidationError(err) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "Server error while generating message")
		return
	}

	logrus.Debugf("Generated message via %s path", result.Source)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": result.Text,
	})
}
