package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the session claims this service relies on.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService verifies session tokens issued by the account service.
type TokenService interface {
	ValidateToken(tokenString string) (*Claims, error)
}
