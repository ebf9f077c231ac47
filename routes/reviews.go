package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thekedaar-server/models"
	ws "thekedaar-server/websocket"
)

// RegisterReviewRoutes registers review submission routes
func RegisterReviewRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/reviews")
	{
		reviews.GET("", listReviews)
		reviews.POST("", submitReview)
	}
}

// listReviews returns the flat reviews collection.
func listReviews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reviews": app.Reviews(),
	})
}

// submitReview records the review and advances the worker's running-mean
// rating and review count in the same state update.
func submitReview(c *gin.Context) {
	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid review data",
			"message": err.Error(),
		})
		return
	}

	review, err := app.SubmitReview(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		return
	}

	publish(ws.EventReviewSubmitted, "reviews", review)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review submitted successfully!",
		"review":  review,
	})
}
