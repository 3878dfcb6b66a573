package handlers

import "github.com/gin-gonic/gin"

// All endpoints answer with the {success, data?, error?} envelope the
// client expects; the message endpoint uses {success, message}.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}
