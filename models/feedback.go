package models

// Feedback represents a free-form consumer-submitted feedback entry. It has
// no cross-entity relation.
type Feedback struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// FeedbackRequest represents the request structure for sending feedback
type FeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message" binding:"required"`
}
