package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/poolsim/internal/admin"
	"github.com/playmatatu/poolsim/internal/auth"
	"github.com/playmatatu/poolsim/internal/config"
)

// Context keys set by PlayerAuth.
const (
	ContextPlayerID = "player_id"
	ContextGameID   = "game_id"
)

// PlayerAuth validates the bearer JWT and stores the player and game IDs in
// the context. The token must belong to the game in the :id path parameter.
func PlayerAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims, err := auth.ParsePlayerToken(cfg.JWTSecret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if id := c.Param("id"); id != "" && id != claims.GameID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token is for another game"})
			return
		}

		c.Set(ContextPlayerID, claims.PlayerID)
		c.Set(ContextGameID, claims.GameID)
		c.Next()
	}
}

// AdminAuth checks the X-Admin-Token header against ADMIN_TOKEN_HASH.
// Admin routes are closed when no hash is configured.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AdminTokenHash == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "admin access not configured"})
			return
		}
		if !admin.VerifyAdminToken(cfg.AdminTokenHash, c.GetHeader("X-Admin-Token")) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid admin token"})
			return
		}
		c.Next()
	}
}
