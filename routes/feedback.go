package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thekedaar-server/models"
	ws "thekedaar-server/websocket"
)

// RegisterFeedbackRoutes registers the feedback submission route
func RegisterFeedbackRoutes(router *gin.RouterGroup) {
	router.POST("/feedback", sendFeedback)
}

// sendFeedback records a free-form feedback entry.
func sendFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid feedback data",
			"message": err.Error(),
		})
		return
	}

	feedback, err := app.AddFeedback(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record feedback"})
		return
	}

	publish(ws.EventFeedbackSent, "feedbacks", feedback)

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Thank you for your feedback!",
		"feedback": feedback,
	})
}
