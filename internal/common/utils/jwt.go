// internal/common/utils/jwt.go
// JWT token generation and validation for matchmaker identities

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// MatchmakerClaims identifies the authenticated matchmaker
type MatchmakerClaims struct {
	MatchmakerID string `json:"matchmaker_id"`
	Email        string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a token for matchmakerID. Tokens are normally issued by
// the external login flow; this is used by tooling and tests.
func GenerateJWT(matchmakerID, email, issuer, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := MatchmakerClaims{
		MatchmakerID: matchmakerID,
		Email:        email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   matchmakerID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateJWT validates a JWT token and returns claims
func ValidateJWT(tokenString, secret string) (*MatchmakerClaims, error) {
	claims := &MatchmakerClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.MatchmakerID == "" {
		claims.MatchmakerID = claims.Subject
	}
	if claims.MatchmakerID == "" {
		return nil, errors.New("invalid matchmaker_id in token")
	}

	return claims, nil
}
