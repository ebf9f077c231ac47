package utils

import (
	"errors"
	"math/rand"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"thekedaar-server/config"
	"thekedaar-server/models"
	"thekedaar-server/types"
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with its hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken generates a session token carrying the actor role and, for
// partners, the worker id.
func GenerateToken(role models.UserRole, workerID int) (string, error) {
	claims := &types.Claims{
		Role:     role,
		WorkerID: workerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(config.AppConfig.JWT.ExpiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.AppConfig.JWT.Secret))
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// VerifyToken verifies a session token and returns the claims
func VerifyToken(tokenString string) (*types.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*types.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// GenerateWorkerID produces a random 6-digit partner id that does not
// collide with an existing one. The exists callback is checked on every
// draw; after maxIDAttempts draws the id space is considered exhausted.
func GenerateWorkerID(exists func(int) bool) (int, error) {
	const maxIDAttempts = 100
	for i := 0; i < maxIDAttempts; i++ {
		id := 100000 + rand.Intn(900000)
		if !exists(id) {
			return id, nil
		}
	}
	return 0, errors.New("could not generate a unique worker id")
}
