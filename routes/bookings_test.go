package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmBookingSnapshotsRate(t *testing.T) {
	router, a := setupTest(t)

	// Ramesh Kumar bills 300 an hour
	rec := doJSON(t, router, http.MethodPost, "/api/v1/bookings", gin.H{
		"workerId": 101231, "date": "2026-09-04", "time": "10:00 AM",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	booking, ok := body["booking"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 300.0, booking["amount"])
	assert.Equal(t, "CONFIRMED", booking["status"])
	assert.Equal(t, "Ramesh Kumar", booking["workerName"])
	assert.Equal(t, "Plumber", booking["service"])

	bookings := a.Bookings()
	require.NotEmpty(t, bookings)
	assert.Equal(t, booking["id"], bookings[0].ID, "new booking must lead the list")
}

func TestConfirmBookingUnknownWorker(t *testing.T) {
	router, _ := setupTest(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/bookings", gin.H{
		"workerId": 424242, "date": "2026-09-04", "time": "10:00 AM",
	}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConfirmBookingRejectsPartialRequest(t *testing.T) {
	router, _ := setupTest(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/bookings", gin.H{
		"workerId": 101231,
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitReviewMovesAggregate(t *testing.T) {
	router, a := setupTest(t)

	before, ok := a.FindWorkerByID(102447)
	require.True(t, ok)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/reviews", gin.H{
		"workerId": 102447, "rating": 5, "comment": "Fast and tidy",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Review submitted successfully!", decodeBody(t, rec)["message"])

	after, ok := a.FindWorkerByID(102447)
	require.True(t, ok)
	assert.Equal(t, before.TotalReviews+1, after.TotalReviews)

	reviews := a.WorkerReviews(102447)
	require.NotEmpty(t, reviews)
	assert.Equal(t, "Guest User", reviews[0].CustomerName)
}

func TestSendFeedback(t *testing.T) {
	router, a := setupTest(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/feedback", gin.H{
		"name": "Priya", "email": "priya@test.com", "message": "Love the app",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Thank you for your feedback!", decodeBody(t, rec)["message"])
	assert.Len(t, a.Feedbacks(), 1)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/feedback", gin.H{
		"name": "Priya",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategoryListingAndWorkers(t *testing.T) {
	router, _ := setupTest(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/categories", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	categories, ok := body["categories"].([]interface{})
	require.True(t, ok)
	assert.Len(t, categories, 8)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/categories/plumber/workers", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	workers, ok := decodeBody(t, rec)["workers"].([]interface{})
	require.True(t, ok)
	assert.Len(t, workers, 2)
	for _, raw := range workers {
		w := raw.(map[string]interface{})
		_, hasPassword := w["password"]
		assert.False(t, hasPassword, "directory listings must not leak passwords")
	}
}
