package models

// Review represents a consumer review of a worker. Each review carries its
// own WorkerID; the `reviews` collection is a flat list.
type Review struct {
	ID           string `json:"id"`
	WorkerID     int    `json:"workerId"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"` // 1-5
	Comment      string `json:"comment"`
	Date         string `json:"date"`
	Verified     bool   `json:"verified"`
}

// SeedReview is the shape reviews take in the built-in seed data, grouped
// by worker id and therefore without a WorkerID of their own. The state
// container flattens these into Review records on first load.
type SeedReview struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Date         string `json:"date"`
	Verified     bool   `json:"verified"`
}

// ReviewRequest represents the request structure for submitting a review
type ReviewRequest struct {
	BookingID    string `json:"bookingId"`
	WorkerID     int    `json:"workerId" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
	CustomerName string `json:"customerName"`
}
