package routes

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"thekedaar-server/models"
)

// RegisterAdminRoutes registers the admin portal routes. Callers must chain
// AuthMiddleware + RequireRole(ADMIN) on the group. The handlers hold
// direct read-write access to the collection setters: every mutation is a
// full-collection replace.
func RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard/stats", getDashboardStats)

	router.GET("/workers", adminListWorkers)
	router.PATCH("/workers/:id/verify", adminVerifyWorker)
	router.DELETE("/workers/:id", adminDeleteWorker)

	router.GET("/consumers", adminListConsumers)
	router.PATCH("/consumers/:id/status", adminUpdateConsumerStatus)
	router.DELETE("/consumers/:id", adminDeleteConsumer)

	router.GET("/bookings", adminListBookings)
	router.DELETE("/bookings/:id", adminDeleteBooking)

	router.GET("/categories", adminListCategories)
	router.POST("/categories", adminCreateCategory)
	router.PUT("/categories/:id", adminUpdateCategory)
	router.DELETE("/categories/:id", adminDeleteCategory)

	router.GET("/reviews", adminListReviews)
	router.DELETE("/reviews/:id", adminDeleteReview)

	router.GET("/feedbacks", adminListFeedbacks)
	router.DELETE("/feedbacks/:id", adminDeleteFeedback)
}

// getDashboardStats returns headline counts and revenue across the
// collections.
func getDashboardStats(c *gin.Context) {
	bookings := app.Bookings()
	var revenue float64
	for _, b := range bookings {
		revenue += b.Amount
	}

	workers := app.Workers()
	verified := 0
	for _, w := range workers {
		if w.Verified {
			verified++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_workers":    len(workers),
		"verified_workers": verified,
		"total_consumers":  len(app.Consumers()),
		"total_bookings":   len(bookings),
		"total_revenue":    revenue,
		"total_reviews":    len(app.Reviews()),
		"total_feedbacks":  len(app.Feedbacks()),
	})
}

func adminListWorkers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "workers": app.Workers()})
}

// adminVerifyWorker toggles the verified flag on one worker.
func adminVerifyWorker(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID"})
		return
	}

	var req struct {
		Verified bool `json:"verified"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	workers := app.Workers()
	found := false
	for i, w := range workers {
		if w.ID == id {
			workers[i].Verified = req.Verified
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	if err := app.SetWorkers(workers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update worker"})
		return
	}

	log.Printf("✅ Worker %d verification set to %v", id, req.Verified)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Worker verification updated"})
}

func adminDeleteWorker(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID"})
		return
	}

	workers := app.Workers()
	kept := make([]models.Worker, 0, len(workers))
	for _, w := range workers {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(workers) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	if err := app.SetWorkers(kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete worker"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Worker deleted successfully"})
}

func adminListConsumers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "consumers": app.Consumers()})
}

// adminUpdateConsumerStatus switches an account between Active and Blocked.
// A blocked account fails login even with the right password.
func adminUpdateConsumerStatus(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status models.ConsumerStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Status != models.ConsumerActive && req.Status != models.ConsumerBlocked {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be Active or Blocked"})
		return
	}

	consumers := app.Consumers()
	found := false
	for i, con := range consumers {
		if con.ID == id {
			consumers[i].Status = req.Status
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consumer not found"})
		return
	}

	if err := app.SetConsumers(consumers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update consumer"})
		return
	}

	log.Printf("✅ Consumer %s status set to %s", id, req.Status)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Consumer status updated"})
}

func adminDeleteConsumer(c *gin.Context) {
	id := c.Param("id")

	consumers := app.Consumers()
	kept := make([]models.Consumer, 0, len(consumers))
	for _, con := range consumers {
		if con.ID != id {
			kept = append(kept, con)
		}
	}
	if len(kept) == len(consumers) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consumer not found"})
		return
	}

	if err := app.SetConsumers(kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete consumer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Consumer deleted successfully"})
}

func adminListBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": app.Bookings()})
}

func adminDeleteBooking(c *gin.Context) {
	id := c.Param("id")

	bookings := app.Bookings()
	kept := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(bookings) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	if err := app.SetBookings(kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted successfully"})
}

func adminListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": app.Categories()})
}

// adminCreateCategory adds a category to the taxonomy. The id is derived
// from the name, lowercased with spaces dashed.
func adminCreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	category := models.Category{
		ID:   slugify(req.Name),
		Name: req.Name,
		Icon: req.Icon,
	}

	categories := append(app.Categories(), category)
	if err := app.SetCategories(categories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	log.Printf("✅ Category created: %s (%s)", category.Name, category.ID)
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Category created successfully",
		"category": category,
	})
}

func adminUpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	categories := app.Categories()
	found := false
	for i, cat := range categories {
		if cat.ID == id {
			categories[i].Name = req.Name
			if req.Icon != "" {
				categories[i].Icon = req.Icon
			}
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if err := app.SetCategories(categories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category updated successfully"})
}

func adminDeleteCategory(c *gin.Context) {
	id := c.Param("id")

	categories := app.Categories()
	kept := make([]models.Category, 0, len(categories))
	for _, cat := range categories {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	if len(kept) == len(categories) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if err := app.SetCategories(kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted successfully"})
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func adminListReviews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": app.Reviews()})
}

// adminDeleteReview removes a review record. The worker's aggregate stays
// the running mean of what was submitted; deletion does not rewrite
// history.
func adminDeleteReview(c *gin.Context) {
	id := c.Param("id")

	reviews := app.Reviews()
	kept := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(reviews) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	if err := app.SetReviews(kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review deleted successfully"})
}

func adminListFeedbacks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "feedbacks": app.Feedbacks()})
}

func adminDeleteFeedback(c *gin.Context) {
	id := c.Param("id")

	feedbacks := app.Feedbacks()
	kept := make([]models.Feedback, 0, len(feedbacks))
	for _, f := range feedbacks {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(feedbacks) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		return
	}

	if err := app.SetFeedbacks(kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Feedback deleted successfully"})
}
