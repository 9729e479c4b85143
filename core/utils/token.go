package utils

import (
	"fmt"
	"time"

	"crewhub/core/config"
	"crewhub/core/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenData is the claim set carried by access and refresh tokens.
type TokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	TokenType string    `json:"token_type"`
	jwt.RegisteredClaims
}

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// GenerateAccessToken issues a signed access token for the user.
func GenerateAccessToken(userID uuid.UUID) (string, error) {
	ttl := time.Duration(config.Get().JWT.AccessTokenTTL) * time.Minute
	return generateToken(userID, TokenTypeAccess, ttl)
}

// GenerateRefreshToken issues a signed refresh token for the user.
func GenerateRefreshToken(userID uuid.UUID) (string, error) {
	ttl := time.Duration(config.Get().JWT.RefreshTokenTTL) * time.Hour
	return generateToken(userID, TokenTypeRefresh, ttl)
}

func generateToken(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &TokenData{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Get().JWT.Secret))
}

// ValidateAndParseToken verifies the signature and expiry, returning the
// embedded claims.
func ValidateAndParseToken(tokenString string) (*TokenData, error) {
	claims := &TokenData{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.Get().JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrTokenExpired, "token is not valid", nil)
	}
	return claims, nil
}
