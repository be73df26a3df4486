package auth

import (
	"fmt"

	apperrors "schoolpay-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the decoded identity attached to verified requests
type Claims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service verifies bearer tokens issued by the identity provider
type Service struct {
	config *AuthConfig
}

// NewService creates a new auth service
func NewService(config *AuthConfig) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &Service{config: config}, nil
}

// VerifyToken parses and verifies a bearer token, returning its claims
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithAudience(s.config.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.UID == "" {
		claims.UID = claims.Subject
	}
	return claims, nil
}
