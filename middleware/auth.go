package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Affsyamf/pemesananhotel-sub000/models"
	"github.com/Affsyamf/pemesananhotel-sub000/utils"
)

const ctxPrincipal = "principal"

// Principal is the typed capability produced once at the authorization
// boundary. Handlers read it instead of re-checking role strings.
type Principal struct {
	UserID uint
	Role   models.Role
}

func (p Principal) IsAdmin() bool { return p.Role == models.RoleAdmin }

// RequireAuth validates "Authorization: Bearer <token>" and injects the
// Principal into the gin context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"success": false, "error": "missing or invalid Authorization header"})
			return
		}

		claims, err := utils.VerifyToken(strings.TrimSpace(authHeader[7:]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"success": false, "error": "invalid token"})
			return
		}
		if !claims.Role.Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"success": false, "error": "unknown role"})
			return
		}

		c.Set(ctxPrincipal, Principal{UserID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// RequireAdmin guards the back-office routes. It must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"success": false, "error": "unauthorized"})
			return
		}
		if !p.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"success": false, "error": "admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the authenticated caller set by RequireAuth.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(ctxPrincipal)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
