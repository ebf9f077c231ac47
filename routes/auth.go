package routes

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"thekedaar-server/config"
	"thekedaar-server/models"
	"thekedaar-server/utils"
	ws "thekedaar-server/websocket"
)

// RegisterRequest represents the combined registration request, selected by
// Target the way the login modal's loginTarget discriminator selects the
// flow.
type RegisterRequest struct {
	Target     models.UserRole `json:"target" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone" binding:"required"`
	Profession string          `json:"profession"`
	Password   string          `json:"password" binding:"required"`
	Photo      string          `json:"photo"`
}

// RegisterAuthRoutes registers authentication and registration routes
func RegisterAuthRoutes(router *gin.RouterGroup) {
	router.POST("/login", login)
	router.POST("/register", register)
	router.POST("/register/photo", registerPhoto)
	router.POST("/guest", enterAsGuest)
	router.POST("/logout", logout)
	router.GET("/session", currentSession)
}

// login handles all three credential checks, selected by the target role.
func login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	switch req.Target {
	case models.RoleAdmin:
		loginAdmin(c, req)
	case models.RoleConsumer:
		loginConsumer(c, req)
	case models.RoleWorker:
		loginWorker(c, req)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Unknown login target",
			"message": "Target must be ADMIN, CONSUMER or WORKER",
		})
	}
}

// loginAdmin checks the configured credentials; the success path bypasses
// all collections.
func loginAdmin(c *gin.Context, req models.LoginRequest) {
	cfg := config.AppConfig.Admin
	if req.ID != cfg.ID || !utils.CheckPasswordHash(req.Password, cfg.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid Admin ID or Password",
			"code":  "invalid_credentials",
		})
		return
	}

	if err := app.BeginSession(models.RoleAdmin, nil); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist session"})
		return
	}
	token, err := utils.GenerateToken(models.RoleAdmin, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	log.Printf("✅ Admin logged in")
	c.JSON(http.StatusOK, gin.H{
		"message": "Authentication successful",
		"role":    models.RoleAdmin,
		"token":   token,
	})
}

// loginConsumer looks the account up by case-insensitive email. The three
// failure signals are distinct: not registered, wrong password, blocked.
func loginConsumer(c *gin.Context, req models.LoginRequest) {
	consumer, found := app.FindConsumerByEmail(req.ID)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Email not found. Please register.",
			"code":  "not_registered",
		})
		return
	}

	if consumer.Password != "" && consumer.Password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid Password",
			"code":  "wrong_password",
		})
		return
	}

	if consumer.IsBlocked() {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Account Blocked. Contact Support.",
			"code":  "blocked",
		})
		return
	}

	if err := app.BeginSession(models.RoleConsumer, nil); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist session"})
		return
	}
	token, err := utils.GenerateToken(models.RoleConsumer, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	consumer.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"message":  "Authentication successful",
		"role":     models.RoleConsumer,
		"token":    token,
		"consumer": consumer,
	})
}

// loginWorker matches by exact id-as-string or whitespace-stripped phone.
// Records that predate the password field fall back to the legacy default.
func loginWorker(c *gin.Context, req models.LoginRequest) {
	worker, found := app.FindWorkerByLogin(req.ID)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Worker ID or Phone not found.",
			"code":  "not_found",
		})
		return
	}

	validPass := worker.Password
	if validPass == "" {
		validPass = config.AppConfig.Worker.LegacyPassword
	}
	if req.Password != validPass {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid Password",
			"code":  "wrong_password",
		})
		return
	}

	if err := app.BeginSession(models.RoleWorker, &worker); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist session"})
		return
	}
	token, err := utils.GenerateToken(models.RoleWorker, worker.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	log.Printf("✅ Worker %d logged in", worker.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Authentication successful",
		"role":    models.RoleWorker,
		"token":   token,
		"worker":  worker.Public(),
	})
}

// register creates a new consumer or partner account.
func register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	switch req.Target {
	case models.RoleConsumer:
		registerConsumer(c, req)
	case models.RoleWorker:
		registerWorker(c, req)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Unknown registration target",
			"message": "Target must be CONSUMER or WORKER",
		})
	}
}

// registerConsumer creates the account and logs the new consumer straight
// in.
func registerConsumer(c *gin.Context, req RegisterRequest) {
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Email required",
			"message": "Consumer registration requires an email address",
		})
		return
	}

	consumer, err := app.AddConsumer(models.ConsumerRegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	if err := app.BeginSession(models.RoleConsumer, nil); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist session"})
		return
	}
	token, err := utils.GenerateToken(models.RoleConsumer, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	consumer.Password = ""
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Account created successfully",
		"role":     models.RoleConsumer,
		"token":    token,
		"consumer": consumer,
	})
}

// registerWorker creates the full default partner profile and returns the
// generated id as a one-time confirmation. No session is started: the
// partner must come back and log in with the id explicitly.
func registerWorker(c *gin.Context, req RegisterRequest) {
	id, err := utils.GenerateWorkerID(app.WorkerIDExists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate partner id"})
		return
	}

	cfg := config.AppConfig.Worker
	photo := req.Photo
	if photo == "" {
		photo = "👷"
	}

	worker := models.Worker{
		ID:                 id,
		Name:               req.Name,
		Profession:         req.Profession,
		Phone:              req.Phone,
		Password:           req.Password,
		Photo:              photo,
		Experience:         "0 years",
		Area:               cfg.DefaultArea,
		Rating:             5.0,
		TotalReviews:       0,
		AdditionalServices: []string{},
		Description:        "New service partner joined Thekedaar.",
		HourlyRate:         cfg.DefaultRate,
		Verified:           false,
		ResponseTime:       "1 hour",
		CompletedJobs:      0,
		Portfolio:          []string{},
	}

	if err := app.AddWorker(worker); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partner profile"})
		return
	}

	publish(ws.EventWorkerJoined, "workers", worker.Public())
	log.Printf("✅ Partner registered with generated id %d", id)

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Registration Successful!",
		"generatedId": fmt.Sprintf("%d", id),
	})
}

// validateImageFile validates extension and size (<= 5MB)
func validateImageFile(h *multipart.FileHeader) bool {
	if h == nil || h.Size <= 0 || h.Size > 5*1024*1024 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(h.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

// registerPhoto inlines an uploaded image as a data-URL string for the
// registration draft. Nothing is stored until the registration itself is
// submitted.
func registerPhoto(c *gin.Context) {
	header, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No photo provided"})
		return
	}
	if !validateImageFile(header) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read photo"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read photo"})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)

	c.JSON(http.StatusOK, gin.H{"photo": dataURL})
}

// enterAsGuest dismisses the welcome screen without authenticating.
func enterAsGuest(c *gin.Context) {
	app.EnterAsGuest()
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome",
		"role":    models.RoleConsumer,
	})
}

// logout clears the session and brings the welcome screen back. Idempotent.
func logout(c *gin.Context) {
	if err := app.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
		"success": true,
	})
}

// currentSession reports the restored/live session state.
func currentSession(c *gin.Context) {
	response := gin.H{
		"role":        app.Role(),
		"showWelcome": app.ShowWelcome(),
	}
	if worker, ok := app.CurrentWorker(); ok {
		response["worker"] = worker.Public()
	}
	c.JSON(http.StatusOK, response)
}
