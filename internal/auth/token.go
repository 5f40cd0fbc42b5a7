// Package auth derives the visitor's Session from the persisted access token
// and decides what each role may see and do.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/nfrund/bcard/internal/domain"
)

// Decode reads the claims from a token without verifying its signature. The
// remote API verifies tokens on every call; locally the claims are only used
// for display and gating.
func Decode(token string) (domain.Claims, error) {
	if token == "" {
		return domain.Claims{}, fmt.Errorf("%w: empty token", domain.ErrInvalidToken)
	}

	mc := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, mc); err != nil {
		return domain.Claims{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	claims := domain.Claims{}
	claims.UserID, _ = mc["_id"].(string)
	claims.IsBusiness, _ = mc["isBusiness"].(bool)
	claims.IsAdmin, _ = mc["isAdmin"].(bool)
	if iat, ok := mc["iat"].(float64); ok {
		claims.IssuedAt = int64(iat)
	}

	if claims.UserID == "" {
		return domain.Claims{}, fmt.Errorf("%w: missing _id claim", domain.ErrInvalidToken)
	}
	return claims, nil
}

// NewSession builds the session for token. Empty or undecodable tokens give
// the anonymous session.
func NewSession(token string) domain.Session {
	claims, err := Decode(token)
	if err != nil {
		return domain.Anonymous
	}
	return domain.Session{IsAuthenticated: true, Claims: claims}
}
