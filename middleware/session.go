package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanhaider-dev/storefront-api/models"
	"github.com/usmanhaider-dev/storefront-api/session"
)

const claimsKey = "session_claims"

// LoadSession attaches the decoded session claims to the context when a valid
// cookie is present. It never aborts: public handlers treat a missing session
// as a guest.
func LoadSession(c *gin.Context) {
	if claims := session.FromRequest(c); claims != nil {
		c.Set(claimsKey, claims)
	}
	c.Next()
}

// Claims returns the session claims loaded by LoadSession, or nil for guests.
func Claims(c *gin.Context) *session.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*session.Claims)
	if !ok {
		return nil
	}
	return claims
}

// RequireAdmin is the single authorization gate for admin routes. Handlers
// behind it never re-check the role themselves.
func RequireAdmin(c *gin.Context) {
	claims := Claims(c)
	if claims == nil {
		claims = session.FromRequest(c)
	}
	if claims == nil || claims.Role != models.RoleAdmin {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}
	c.Set(claimsKey, claims)
	c.Next()
}
