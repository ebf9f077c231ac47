package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thekedaar-server/models"
	"thekedaar-server/state"
)

// RegisterViewRoutes registers the view resolver and shell-navigation
// routes, plus the theme preference.
func RegisterViewRoutes(router *gin.RouterGroup) {
	router.GET("/view", getView)
	router.POST("/view/category", selectCategory)
	router.POST("/view/worker", selectWorker)
	router.POST("/view/home", navigateHome)
	router.GET("/settings/theme", getTheme)
	router.PUT("/settings/theme", setTheme)
}

// getView resolves the active screen from session state and bundles the
// data that screen consumes. Clients render from this one payload instead
// of keeping their own role logic.
func getView(c *gin.Context) {
	view := app.ResolveView()

	payload := gin.H{
		"view":  view,
		"role":  app.Role(),
		"theme": app.Theme(),
	}

	switch view {
	case state.ViewWelcome:
		// nothing beyond the shell itself

	case state.ViewWorkerError:
		payload["error"] = "Error loading profile"

	case state.ViewWorkerPortal:
		worker, _ := app.CurrentWorker()
		payload["worker"] = worker.Public()
		payload["bookings"] = app.WorkerBookings(worker.ID)
		payload["reviews"] = app.WorkerReviews(worker.ID)

	case state.ViewAdminPortal:
		payload["workers"] = app.Workers()
		payload["consumers"] = app.Consumers()
		payload["bookings"] = app.Bookings()
		payload["categories"] = app.Categories()
		payload["reviews"] = app.Reviews()
		payload["feedbacks"] = app.Feedbacks()

	case state.ViewConsumerShell:
		subView, categoryID, selected := app.SubViewState()
		payload["subView"] = subView
		payload["categories"] = app.Categories()
		switch subView {
		case state.SubCategory:
			payload["categoryId"] = categoryID
			payload["workers"] = publicWorkers(app.CategoryWorkers(categoryID))
		case state.SubProfile:
			if selected != nil {
				payload["worker"] = selected.Public()
				payload["reviews"] = app.WorkerReviews(selected.ID)
			}
		case state.SubBookings:
			payload["bookings"] = app.Bookings()
		}
	}

	c.JSON(http.StatusOK, payload)
}

// selectCategory switches the consumer shell to the category screen. An
// unknown id still switches and shows an empty list.
func selectCategory(c *gin.Context) {
	var req struct {
		CategoryID string `json:"categoryId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category ID is required"})
		return
	}

	workers := app.SelectCategory(req.CategoryID)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"view":       app.ResolveView(),
		"subView":    state.SubCategory,
		"categoryId": req.CategoryID,
		"workers":    publicWorkers(workers),
	})
}

// selectWorker switches the consumer shell to the worker profile screen.
func selectWorker(c *gin.Context) {
	var req struct {
		WorkerID int `json:"workerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Worker ID is required"})
		return
	}

	worker, err := app.SelectWorker(req.WorkerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"subView": state.SubProfile,
		"worker":  worker.Public(),
		"reviews": app.WorkerReviews(worker.ID),
	})
}

// navigateHome returns the shell to the home screen and clears selections.
func navigateHome(c *gin.Context) {
	app.NavigateHome()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"subView": state.SubHome,
	})
}

func getTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": app.Theme()})
}

func setTheme(c *gin.Context) {
	var req struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Theme is required"})
		return
	}

	if err := app.SetTheme(req.Theme); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Theme must be light or dark"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "theme": app.Theme()})
}

func publicWorkers(workers []models.Worker) []models.Worker {
	out := make([]models.Worker, len(workers))
	for i, w := range workers {
		out[i] = w.Public()
	}
	return out
}
