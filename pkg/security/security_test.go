package security

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devdhirendra/enhanced-ns-sub000/internal/rate_limiter"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/models"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/roles"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(email, password string) (models.User, error) {
	args := m.Called(email, password)
	return args.Get(0).(models.User), args.Error(1)
}

func newIssuer(t *testing.T) *Issuer {
	t.Helper()
	issuer, err := NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	return issuer
}

func TestNewIssuerRequiresSecret(t *testing.T) {
	_, err := NewIssuer("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestGenerateAndParse(t *testing.T) {
	issuer := newIssuer(t)
	token, err := issuer.GenerateJWT("U1", "admin", "a@b.c")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "U1", claims["userID"])
	assert.Equal(t, "admin", claims["role"])

	issuer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken, "expired")
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	issuer := newIssuer(t)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"userID": "U1", "exp": time.Now().Add(time.Hour).Unix()})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	issuer := newIssuer(t)
	token, err := issuer.GenerateJWT("U1", "operator", "op@isp.net")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + token, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/me", issuer.JWTMiddleware(), func(c *gin.Context) {
				id, err := GetUserIDFromContext(c)
				require.NoError(t, err)
				c.String(http.StatusOK, id)
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "U1", w.Body.String())
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		role    any
		allowed []roles.Role
		status  int
	}{
		{name: "admin passes everything", role: "admin", status: http.StatusOK},
		{name: "allowed role", role: "staff", allowed: []roles.Role{roles.Staff}, status: http.StatusOK},
		{name: "other role", role: "technician", allowed: []roles.Role{roles.Staff}, status: http.StatusForbidden},
		{name: "no role", role: nil, status: http.StatusForbidden},
		{name: "bad role type", role: 7, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.role != nil {
				c.Set("role", tt.role)
			}

			Authorize(tt.allowed...)(c)
			if !c.IsAborted() {
				c.Status(http.StatusOK)
			}

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	issuer := newIssuer(t)
	users := new(MockAuthenticator)
	users.On("Authenticate", "admin@isp.net", "secret").
		Return(models.User{UserID: "U1", Email: "admin@isp.net", Role: roles.Admin}, nil)
	users.On("Authenticate", "admin@isp.net", "wrong").
		Return(models.User{}, errors.New("bad password"))

	limiter := rate_limiter.NewRateLimiter(10, time.Minute)
	defer limiter.Close()

	router := gin.New()
	NewLoginHandler(users, issuer, limiter, nil).RegisterRoutes(router.Group("/api"))

	post := func(body any) *httptest.ResponseRecorder {
		payload, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := post(models.LoginRequest{Email: "admin@isp.net", Password: "secret"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "U1", resp.UserID)
	claims, err := issuer.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["role"])

	assert.Equal(t, http.StatusUnauthorized, post(models.LoginRequest{Email: "admin@isp.net", Password: "wrong"}).Code)
	assert.Equal(t, http.StatusBadRequest, post(map[string]string{"email": "admin@isp.net"}).Code)
	users.AssertExpectations(t)
}

func TestClientKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Request.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.2")

	assert.Equal(t, "198.51.100.4", clientKey(c))
}
