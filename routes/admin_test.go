package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thekedaar-server/models"
	"thekedaar-server/utils"
)

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(models.RoleAdmin, 0)
	require.NoError(t, err)
	return token
}

func TestAdminPortalRequiresAdminToken(t *testing.T) {
	router, _ := setupTest(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/workers", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/admin/workers", nil, workerToken(t, 101231))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/admin/workers", nil, adminToken(t))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminDashboardStats(t *testing.T) {
	router, a := setupTest(t)

	_, err := a.ConfirmBooking(101231, "2026-09-06", "10:00 AM") // 300
	require.NoError(t, err)
	_, err = a.ConfirmBooking(106733, "2026-09-06", "11:00 AM") // 450
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/dashboard/stats", nil, adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, 7.0, body["total_workers"])
	assert.Equal(t, 6.0, body["verified_workers"])
	assert.Equal(t, 2.0, body["total_bookings"])
	assert.Equal(t, 750.0, body["total_revenue"])
	assert.Equal(t, 6.0, body["total_reviews"])
}

func TestAdminVerifyWorkerToggle(t *testing.T) {
	router, a := setupTest(t)

	// Pooja Nishad ships unverified
	rec := doJSON(t, router, http.MethodPatch, "/api/v1/admin/workers/105190/verify",
		gin.H{"verified": true}, adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)

	w, ok := a.FindWorkerByID(105190)
	require.True(t, ok)
	assert.True(t, w.Verified)

	rec = doJSON(t, router, http.MethodPatch, "/api/v1/admin/workers/424242/verify",
		gin.H{"verified": true}, adminToken(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminDeleteWorker(t *testing.T) {
	router, a := setupTest(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/admin/workers/107964", nil, adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, a.Workers(), 6)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/admin/workers/107964", nil, adminToken(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminBlockConsumerStopsLogin(t *testing.T) {
	router, a := setupTest(t)

	consumer, err := a.AddConsumer(models.ConsumerRegisterRequest{
		Name: "C", Email: "c@test.com", Phone: "9000000006", Password: "pw",
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPatch, "/api/v1/admin/consumers/"+consumer.ID+"/status",
		gin.H{"status": "Blocked"}, adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"target": "CONSUMER", "id": "c@test.com", "password": "pw",
	}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "blocked", decodeBody(t, rec)["code"])

	// unblocking restores access
	rec = doJSON(t, router, http.MethodPatch, "/api/v1/admin/consumers/"+consumer.ID+"/status",
		gin.H{"status": "Active"}, adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"target": "CONSUMER", "id": "c@test.com", "password": "pw",
	}, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/api/v1/admin/consumers/"+consumer.ID+"/status",
		gin.H{"status": "Banned"}, adminToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminCategoryCRUD(t *testing.T) {
	router, a := setupTest(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/categories",
		gin.H{"name": "Pest Control", "icon": "🐜"}, adminToken(t))
	require.Equal(t, http.StatusCreated, rec.Code)
	category := decodeBody(t, rec)["category"].(map[string]interface{})
	assert.Equal(t, "pest-control", category["id"])
	assert.Len(t, a.Categories(), 9)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/admin/categories/pest-control",
		gin.H{"name": "Pest Removal"}, adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/admin/categories/pest-control", nil, adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, a.Categories(), 8)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/admin/categories/pest-control", nil, adminToken(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminDeleteReviewLeavesAggregate(t *testing.T) {
	router, a := setupTest(t)

	before, ok := a.FindWorkerByID(101231)
	require.True(t, ok)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/admin/reviews/r-101231-1", nil, adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, a.WorkerReviews(101231), 1)

	// deletion does not rewrite rating history
	after, ok := a.FindWorkerByID(101231)
	require.True(t, ok)
	assert.Equal(t, before.Rating, after.Rating)
	assert.Equal(t, before.TotalReviews, after.TotalReviews)
}

func TestAdminDeleteBookingAndFeedback(t *testing.T) {
	router, a := setupTest(t)

	booking, err := a.ConfirmBooking(101231, "2026-09-07", "10:00 AM")
	require.NoError(t, err)
	feedback, err := a.AddFeedback(models.FeedbackRequest{Message: "noise"})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/admin/bookings/"+booking.ID, nil, adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, a.Bookings())

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/admin/feedbacks/"+feedback.ID, nil, adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, a.Feedbacks())
}
