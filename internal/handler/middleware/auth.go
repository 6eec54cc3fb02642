package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxAccountIDKey   = "account_id"
	ctxIsStaffKey     = "is_staff"
	ctxIsSuperuserKey = "is_superuser"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokenValidator: tokenValidator}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing access token"), "Access token required")
			return
		}

		claims, err := m.tokenValidator.ValidateAccessToken(token)
		if err != nil {
			slog.Warn("token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		c.Set(ctxAccountIDKey, claims.UserID)
		c.Set(ctxIsStaffKey, claims.IsStaff)
		c.Set(ctxIsSuperuserKey, claims.IsSuperuser)
		c.Next()
	}
}

// RequireStaff must run after RequireAuth. Superusers pass regardless of the
// staff flag.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ctxIsStaffKey) && !c.GetBool(ctxIsSuperuserKey) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.New("staff privilege required"), "Insufficient permissions")
			return
		}
		c.Next()
	}
}

// RequireSuperuser must run after RequireAuth.
func (m *AuthMiddleware) RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ctxIsSuperuserKey) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.New("superuser privilege required"), "Insufficient permissions")
			return
		}
		c.Next()
	}
}

func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, exists := c.Get(ctxAccountIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := accountID.(uuid.UUID)
	return id, ok
}

func IsStaff(c *gin.Context) bool {
	return c.GetBool(ctxIsStaffKey) || c.GetBool(ctxIsSuperuserKey)
}

func IsSuperuser(c *gin.Context) bool {
	return c.GetBool(ctxIsSuperuserKey)
}
