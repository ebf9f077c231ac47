package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"thekedaar-server/config"
	"thekedaar-server/jobs"
	"thekedaar-server/middleware"
	"thekedaar-server/models"
	"thekedaar-server/routes"
	"thekedaar-server/state"
	"thekedaar-server/store"
	ws "thekedaar-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize the persistent store
	kv, err := store.Initialize()
	if err != nil {
		log.Fatal("Failed to initialize store:", err)
	}

	// Hydrate collections and restore any persisted session
	app := state.New(kv)
	if err := app.Hydrate(); err != nil {
		log.Fatal("Failed to hydrate application state:", err)
	}
	app.RestoreSession()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Disable automatic redirects for trailing slashes
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security headers (must be first)
	router.Use(middleware.SecurityHeadersMiddleware())

	// Input validation
	router.Use(middleware.InputValidationMiddleware())

	// Rate limiting
	router.Use(middleware.RateLimitMiddleware())

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Thekedaar server is running",
			"time":    time.Now().UTC(),
		})
	})

	// Entity-change event feed
	hub := ws.NewHub()
	go hub.Run()
	router.GET("/api/v1/ws/events", func(c *gin.Context) {
		ws.ServeEvents(hub, c.Writer, c.Request)
	})

	// Hand the handlers their state container and event hub
	routes.Setup(app, hub)

	// API routes
	api := router.Group("/api/v1")
	{
		// Auth routes with strict rate limiting
		authRoutes := api.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(authRoutes)

		// Public routes
		routes.RegisterCategoryRoutes(api)
		routes.RegisterWorkerRoutes(api)
		routes.RegisterBookingRoutes(api)
		routes.RegisterReviewRoutes(api)
		routes.RegisterFeedbackRoutes(api)
		routes.RegisterViewRoutes(api)

		// Worker portal (token guard, WORKER role)
		workerPortal := api.Group("/worker")
		workerPortal.Use(middleware.AuthMiddleware())
		workerPortal.Use(middleware.RequireRole(models.RoleWorker))
		routes.RegisterWorkerPortalRoutes(workerPortal)

		// Admin portal (token guard, ADMIN role)
		adminRoutes := api.Group("/admin")
		adminRoutes.Use(middleware.AuthMiddleware())
		adminRoutes.Use(middleware.RequireRole(models.RoleAdmin))
		routes.RegisterAdminRoutes(adminRoutes)
	}

	// Start background jobs
	cleanupJob := jobs.NewCleanupJob()
	cleanupJob.Start()
	defer cleanupJob.Stop()

	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
