package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields of a bearer token worth showing to a user.
type Claims struct {
	UserID    string
	Role      string
	Email     string
	ExpiresAt time.Time
}

// TokenClaims decodes the payload segment of token without checking its
// signature. Only the server can tell whether a token is genuine.
func TokenClaims(token string) (Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Claims{}, err
	}

	out := Claims{
		UserID: firstString(claims, "user_id", "userID", "userId", "sub"),
		Role:   firstString(claims, "role"),
		Email:  firstString(claims, "email"),
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return Claims{}, err
	}
	if exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// TokenValid reports whether token decodes and carries an exp claim later
// than now. Undecodable tokens and tokens without exp are invalid.
func TokenValid(token string, now time.Time) bool {
	claims, err := TokenClaims(token)
	if err != nil || claims.ExpiresAt.IsZero() {
		return false
	}
	return claims.ExpiresAt.After(now)
}

func firstString(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if value, ok := claims[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
