package models

// UserRole determines which screen tree is active
type UserRole string

const (
	RoleConsumer UserRole = "CONSUMER"
	RoleWorker   UserRole = "WORKER"
	RoleAdmin    UserRole = "ADMIN"
)

// Session is the minimal persisted fact needed to restore an actor's
// identity after a restart. It exists only while someone is authenticated.
type Session struct {
	Role     UserRole `json:"role"`
	WorkerID int      `json:"workerId,omitempty"`
}

// LoginRequest represents the request structure for all three login flows,
// discriminated by Target.
type LoginRequest struct {
	Target   UserRole `json:"target" binding:"required"`
	ID       string   `json:"id"`
	Password string   `json:"password"`
}

// IsValidRole checks if the role is one of the three known actor roles
func (r UserRole) IsValidRole() bool {
	switch r {
	case RoleConsumer, RoleWorker, RoleAdmin:
		return true
	default:
		return false
	}
}
