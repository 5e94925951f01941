package security

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/devdhirendra/enhanced-ns-sub000/internal/rate_limiter"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticator checks a login against stored credentials.
type Authenticator interface {
	Authenticate(email, password string) (models.User, error)
}

type LoginHandler struct {
	users       Authenticator
	issuer      *Issuer
	rateLimiter *rate_limiter.RateLimiter
	logger      *zap.Logger
}

func NewLoginHandler(users Authenticator, issuer *Issuer, limiter *rate_limiter.RateLimiter, logger *zap.Logger) *LoginHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginHandler{
		users:       users,
		issuer:      issuer,
		rateLimiter: limiter,
		logger:      logger,
	}
}

func (l *LoginHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/login", l.LoginHandler())
	router.POST("/auth/logout", l.issuer.JWTMiddleware(), l.LogoutHandler())
}

func (l *LoginHandler) LoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientKey(c)

		if l.rateLimiter != nil && !l.rateLimiter.IsAllowed(key) {
			resetAt := l.rateLimiter.ResetAt(key).Format(time.RFC3339)
			c.Header("X-RateLimit-Limit", strconv.Itoa(l.rateLimiter.Limit()))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetAt)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":    "Too many login attempts. Try again later.",
				"reset_at": resetAt,
			})
			return
		}

		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		user, err := l.users.Authenticate(req.Email, req.Password)
		if err != nil {
			l.logger.Info("login rejected", zap.String("email", req.Email))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := l.issuer.GenerateJWT(user.UserID, user.Role.String(), user.Email)
		if err != nil {
			l.logger.Error("failed to sign token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, models.LoginResponse{
			Success: true,
			Token:   token,
			UserID:  user.UserID,
			Role:    user.Role,
		})
	}
}

// LogoutHandler acknowledges the logout; sessions are stateless.
func (l *LoginHandler) LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
	}
}

// clientKey prefers proxy headers and takes the first hop.
func clientKey(c *gin.Context) string {
	clientIP := c.GetHeader("X-Forwarded-For")
	if clientIP == "" {
		clientIP = c.GetHeader("X-Real-IP")
	}
	if clientIP == "" {
		clientIP = c.ClientIP()
	}
	if first, _, found := strings.Cut(clientIP, ","); found {
		clientIP = first
	}
	return strings.TrimSpace(clientIP)
}
