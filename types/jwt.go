package types

import (
	"github.com/golang-jwt/jwt/v5"

	"thekedaar-server/models"
)

// Claims represents the JWT claims for a session token
type Claims struct {
	Role     models.UserRole `json:"role"`
	WorkerID int             `json:"worker_id,omitempty"`
	jwt.RegisteredClaims
}
