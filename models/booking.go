package models

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
)

// Booking represents a confirmed service booking. WorkerName and Amount are
// snapshots taken at booking time; later worker edits do not touch them.
type Booking struct {
	ID         string        `json:"id"`
	WorkerID   int           `json:"workerId"`
	WorkerName string        `json:"workerName"`
	Date       string        `json:"date"`
	Time       string        `json:"time"`
	Service    string        `json:"service"`
	Status     BookingStatus `json:"status"`
	Amount     float64       `json:"amount"`
}

// BookingRequest represents the request structure for confirming a booking
type BookingRequest struct {
	WorkerID int    `json:"workerId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
}
