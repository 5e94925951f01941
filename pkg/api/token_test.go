package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("whatever"))
	require.NoError(t, err)
	return token
}

func TestTokenValid(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "future exp", token: signed(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}), want: true},
		{name: "past exp", token: signed(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()}), want: false},
		{name: "no exp", token: signed(t, jwt.MapClaims{"userID": "U1"}), want: false},
		{name: "not a jwt", token: "abc", want: false},
		{name: "bad payload", token: "eyJhbGciOiJIUzI1NiJ9.@@@.sig", want: false},
		{name: "empty", token: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenValid(tt.token, now))
		})
	}
}

func TestTokenClaimsIgnoresSignature(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := signed(t, jwt.MapClaims{"userID": "U9", "role": "technician", "exp": exp.Unix()})

	claims, err := TokenClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "U9", claims.UserID)
	assert.Equal(t, "technician", claims.Role)
	assert.True(t, exp.Equal(claims.ExpiresAt))
}

func TestClientAuthenticated(t *testing.T) {
	now := time.Now()
	client := New(Config{BaseURL: "http://unused"})
	assert.False(t, client.Authenticated(now))

	require.NoError(t, client.SetToken(signed(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})))
	assert.True(t, client.Authenticated(now))

	require.NoError(t, client.SetToken("opaque"))
	assert.False(t, client.Authenticated(now))
}
