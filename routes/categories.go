package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thekedaar-server/models"
)

// RegisterCategoryRoutes registers category-related routes
func RegisterCategoryRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.GET("", getCategories)
		categories.GET("/:id/workers", getCategoryWorkers)
	}
}

// getCategories returns the service taxonomy in display order.
func getCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": app.Categories(),
	})
}

// getCategoryWorkers returns the workers whose profession matches the
// category. An unknown id yields an empty list, not an error.
func getCategoryWorkers(c *gin.Context) {
	workers := app.CategoryWorkers(c.Param("id"))

	public := make([]models.Worker, 0, len(workers))
	for _, w := range workers {
		public = append(public, w.Public())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"workers": public,
	})
}
