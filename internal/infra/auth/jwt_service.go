// Package auth verifies session tokens issued by the account service.
package auth

import (
	"civicradar/config"
	"civicradar/internal/domain/service"
	"civicradar/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const accessTokenType = "access"

var (
	// ErrMissingSecret is returned when no access secret is configured.
	ErrMissingSecret = errors.New("jwt access secret must be provided")
	// ErrInvalidToken covers malformed, expired and mis-signed tokens.
	ErrInvalidToken = errors.New("invalid session token")
)

// jwtService validates HMAC-signed access tokens.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// sessionClaims mirrors the claims written by the account service.
type sessionClaims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, ErrMissingSecret
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken parses tokenString and returns the caller's identity.
// Refresh tokens are rejected.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &sessionClaims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if claims.Type != "" && claims.Type != accessTokenType {
		return nil, errors.Wrapf(ErrInvalidToken, "unexpected token type %q", claims.Type)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "subject is not a user id")
	}

	return &service.Claims{
		UserID:           userID,
		Roles:            claims.Roles,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
