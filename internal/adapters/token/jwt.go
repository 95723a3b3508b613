package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/warriorcenter/cms-api/internal/core/domain"
	"github.com/warriorcenter/cms-api/internal/core/ports"
)

// Claims carries the identity encoded in a bearer token.
type Claims struct {
	jwt.RegisteredClaims
	Email  string    `json:"email"`
	UserID uuid.UUID `json:"userId"`
}

// JWT implements ports.TokenManager backed by symmetric HMAC.
type JWT struct {
	secret []byte
}

func NewJWT(secret string) ports.TokenManager {
	return &JWT{secret: []byte(secret)}
}

// Issue signs a token carrying the identity claims, valid for ports.TokenTTL.
func (j *JWT) Issue(identity ports.Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ports.TokenTTL)),
		},
		Email:  identity.Email,
		UserID: identity.UserID,
	})

	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates the signature and expiry and extracts the identity.
// An unverified token is never trusted, even partially.
func (j *JWT) Verify(tokenString string) (ports.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return ports.Identity{}, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	if !token.Valid {
		return ports.Identity{}, domain.ErrInvalidToken
	}

	return ports.Identity{Email: claims.Email, UserID: claims.UserID}, nil
}
