package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"thekedaar-server/middleware"
	"thekedaar-server/models"
	ws "thekedaar-server/websocket"
)

// RegisterWorkerRoutes registers the public worker directory routes
func RegisterWorkerRoutes(router *gin.RouterGroup) {
	workers := router.Group("/workers")
	{
		workers.GET("", getWorkers)
		workers.GET("/:id", getWorker)
		workers.GET("/:id/reviews", getWorkerReviews)
	}
}

// RegisterWorkerPortalRoutes registers the partner portal routes. Callers
// must chain AuthMiddleware + RequireRole(WORKER) on the group.
func RegisterWorkerPortalRoutes(router *gin.RouterGroup) {
	router.GET("/profile", getWorkerProfile)
	router.PUT("/profile", updateWorkerProfile)
	router.GET("/bookings", getWorkerPortalBookings)
	router.GET("/reviews", getWorkerPortalReviews)
}

// getWorkers returns the full directory with passwords stripped.
func getWorkers(c *gin.Context) {
	workers := app.Workers()
	public := make([]models.Worker, 0, len(workers))
	for _, w := range workers {
		public = append(public, w.Public())
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"workers": public,
	})
}

// getWorker returns one worker profile.
func getWorker(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID"})
		return
	}

	worker, found := app.FindWorkerByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"worker":  worker.Public(),
	})
}

// getWorkerReviews returns all reviews referencing the worker.
func getWorkerReviews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reviews": app.WorkerReviews(id),
	})
}

// getWorkerProfile returns the logged-in partner's own record. A session
// whose id no longer resolves gets the dead-end response: nothing to render
// but a logout.
func getWorkerProfile(c *gin.Context) {
	workerID := middleware.WorkerID(c)
	worker, found := app.FindWorkerByID(workerID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Error loading profile",
			"message": "Your profile could not be found. Please log out.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"worker":  worker,
	})
}

// updateWorkerProfile replaces the partner's record wholesale. The id is
// pinned to the session token; a partner cannot edit someone else.
func updateWorkerProfile(c *gin.Context) {
	var req models.WorkerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid profile data",
			"message": err.Error(),
		})
		return
	}

	req.Worker.ID = middleware.WorkerID(c)
	updated, err := app.UpdateWorker(req.Worker)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	publish(ws.EventWorkerUpdated, "workers", updated.Public())
	log.Printf("✅ Worker %d updated profile", updated.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"worker":  updated,
	})
}

// getWorkerPortalBookings returns the partner's own bookings.
func getWorkerPortalBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": app.WorkerBookings(middleware.WorkerID(c)),
	})
}

// getWorkerPortalReviews returns the partner's own reviews.
func getWorkerPortalReviews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reviews": app.WorkerReviews(middleware.WorkerID(c)),
	})
}
