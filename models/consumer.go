package models

// ConsumerStatus represents the account status of a consumer
type ConsumerStatus string

const (
	ConsumerActive  ConsumerStatus = "Active"
	ConsumerBlocked ConsumerStatus = "Blocked"
)

// Consumer represents a registered consumer account. The email is the login
// key and is matched case-insensitively.
type Consumer struct {
	ID       string         `json:"id"` // creation timestamp in millis
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	JoinDate string         `json:"joinDate"` // YYYY-MM-DD
	Status   ConsumerStatus `json:"status"`
	Password string         `json:"password,omitempty"`
}

// ConsumerRegisterRequest represents the request structure for consumer sign up
type ConsumerRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// IsBlocked checks whether the account is blocked
func (c *Consumer) IsBlocked() bool {
	return c.Status == ConsumerBlocked
}
