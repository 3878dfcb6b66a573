package router

import (
	"net/http"
	"time"

	"github.com/outreachlab/campaign-manager-backend/internal/handlers"
	"github.com/outreachlab/campaign-manager-backend/internal/middleware"
	"github.com/outreachlab/campaign-manager-backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin router with the campaign, profile and
// message routes.
func SetupRouter(db *gorm.DB, messageService *services.MessageService) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create a new router
	r := gin.New()

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create handlers with services
	campaignHandler := handlers.NewCampaignHandler(db)
	profileHandler := handlers.NewProfileHandler(db)
	messageHandler := handlers.NewMessageHandler(messageService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Liveness probe
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	// Connectivity probe
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "API connection successful!",
		})
	})

	// Campaign routes
	campaigns := r.Group("/campaigns")
	{
		campaigns.GET("", campaignHandler.ListCampaigns)
		campaigns.POST("", campaignHandler.CreateCampaign)
		campaigns.GET("/export", campaignHandler.ExportCampaigns)
		campaigns.GET("/:id", campaignHandler.GetCampaignByID)
		campaigns.PUT("/:id", campaignHandler.UpdateCampaign)
		campaigns.DELETE("/:id", campaignHandler.DeleteCampaign)
	}

	// Profile directory routes
	profiles := r.Group("/profiles")
	{
		profiles.GET("", profileHandler.SearchProfiles)
		profiles.POST("", profileHandler.CreateProfile)
		profiles.GET("/export", profileHandler.ExportProfiles)
		profiles.GET("/:id", profileHandler.GetProfileByID)
		profiles.DELETE("/:id", profileHandler.DeleteProfile)
	}

	// Message routes
	messages := r.Group("/messages")
	{
		messages.POST("/generate", messageHandler.GenerateMessage)
	}

	return r
}
