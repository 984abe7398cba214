package middleware

import (
	"fmt"
	"strings"

	"emurai-be-svc/internal/config"
	"emurai-be-svc/internal/service"
	"emurai-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const isAdminKey = "isAdmin"

// RequireAdmin rejects requests without a valid admin token. Mutating
// endpoints sit behind this; read endpoints use OptionalAdmin instead.
func RequireAdmin(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !adminToken(c, cfg) {
			utils.UnauthorizedResponse(c, "Akses admin diperlukan")
			c.Abort()
			return
		}
		c.Set(isAdminKey, true)
		c.Next()
	}
}

// OptionalAdmin records whether a valid admin token accompanies the
// request. Read endpoints use the flag to include edit affordances in
// their payload without rejecting guests.
func OptionalAdmin(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(isAdminKey, adminToken(c, cfg))
		c.Next()
	}
}

// IsAdmin reports the admin flag set by RequireAdmin or OptionalAdmin
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(isAdminKey)
}

func adminToken(c *gin.Context, cfg *config.JWTConfig) bool {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return false
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	return claims["role"] == service.AdminRole
}
