package routes

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thekedaar-server/models"
	"thekedaar-server/utils"
)

func workerToken(t *testing.T, workerID int) string {
	t.Helper()
	token, err := utils.GenerateToken(models.RoleWorker, workerID)
	require.NoError(t, err)
	return token
}

func TestWorkerDirectoryStripsPasswords(t *testing.T) {
	router, a := setupTest(t)

	require.NoError(t, a.AddWorker(models.Worker{
		ID: 888001, Name: "Secret Holder", Profession: "Mason", Password: "hunter2",
	}))

	rec := doJSON(t, router, http.MethodGet, "/api/v1/workers", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	workers := decodeBody(t, rec)["workers"].([]interface{})
	for _, raw := range workers {
		w := raw.(map[string]interface{})
		_, has := w["password"]
		assert.False(t, has)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/workers/888001", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	worker := decodeBody(t, rec)["worker"].(map[string]interface{})
	_, has := worker["password"]
	assert.False(t, has)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/workers/424242", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWorkerPortalRequiresWorkerToken(t *testing.T) {
	router, _ := setupTest(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/worker/profile", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	consumerToken, err := utils.GenerateToken(models.RoleConsumer, 0)
	require.NoError(t, err)
	rec = doJSON(t, router, http.MethodGet, "/api/v1/worker/profile", nil, consumerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWorkerPortalProfile(t *testing.T) {
	router, _ := setupTest(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/worker/profile", nil, workerToken(t, 101231))
	require.Equal(t, http.StatusOK, rec.Code)
	worker := decodeBody(t, rec)["worker"].(map[string]interface{})
	assert.Equal(t, "Ramesh Kumar", worker["name"])

	// a token whose id no longer resolves gets the dead-end response
	rec = doJSON(t, router, http.MethodGet, "/api/v1/worker/profile", nil, workerToken(t, 424242))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Error loading profile", decodeBody(t, rec)["error"])
}

func TestWorkerPortalUpdatePinsIdentity(t *testing.T) {
	router, a := setupTest(t)

	w, ok := a.FindWorkerByID(101231)
	require.True(t, ok)
	w.ID = 103582 // attempt to edit someone else
	w.HourlyRate = 999

	rec := doJSON(t, router, http.MethodPut, "/api/v1/worker/profile", w, workerToken(t, 101231))
	require.Equal(t, http.StatusOK, rec.Code)

	// the edit landed on the token's own record
	own, ok := a.FindWorkerByID(101231)
	require.True(t, ok)
	assert.Equal(t, 999.0, own.HourlyRate)

	other, ok := a.FindWorkerByID(103582)
	require.True(t, ok)
	assert.Equal(t, 350.0, other.HourlyRate)
}

func TestWorkerPortalOwnBookingsAndReviews(t *testing.T) {
	router, a := setupTest(t)

	_, err := a.ConfirmBooking(101231, "2026-09-05", "9:00 AM")
	require.NoError(t, err)
	_, err = a.ConfirmBooking(103582, "2026-09-05", "9:00 AM")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/worker/bookings", nil, workerToken(t, 101231))
	require.Equal(t, http.StatusOK, rec.Code)
	bookings := decodeBody(t, rec)["bookings"].([]interface{})
	booked := bookings[0].(map[string]interface{})
	require.Len(t, bookings, 1)
	assert.Equal(t, "Ramesh Kumar", booked["workerName"])

	rec = doJSON(t, router, http.MethodGet, "/api/v1/worker/reviews", nil, workerToken(t, 101231))
	require.Equal(t, http.StatusOK, rec.Code)
	reviews := decodeBody(t, rec)["reviews"].([]interface{})
	assert.Len(t, reviews, 2) // the seeded reviews for this partner
}
