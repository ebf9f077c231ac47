package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thekedaar-server/models"
	ws "thekedaar-server/websocket"
)

// RegisterBookingRoutes registers booking routes
func RegisterBookingRoutes(router *gin.RouterGroup) {
	bookings := router.Group("/bookings")
	{
		bookings.GET("", listBookings)
		bookings.POST("", confirmBooking)
	}
}

// listBookings returns all bookings, newest first as stored.
func listBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": app.Bookings(),
	})
}

// confirmBooking creates a CONFIRMED booking at the head of the list,
// snapshotting the worker's name, profession and rate.
func confirmBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid booking data",
			"message": err.Error(),
		})
		return
	}

	booking, err := app.ConfirmBooking(req.WorkerID, req.Date, req.Time)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	publish(ws.EventBookingCreated, "bookings", booking)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking confirmed",
		"booking": booking,
	})
}
