package session

import (
	"errors"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/usmanhaider-dev/storefront-api/models"
)

// Sessions are stateless: a signed JWT in an HTTP-only cookie carries the
// user's identity and role, so no server-side session table exists.

const (
	CookieName = "session"
	TTL        = 7 * 24 * time.Hour
)

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func secret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("default-secret-key-change-this")
}

// Create signs a session token for the given user.
func Create(user models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// Parse verifies signature and expiry and returns the decoded claims.
func Parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// FromRequest reads the session cookie and returns the claims, or nil for a
// missing, invalid or expired token. It never fails the request.
func FromRequest(c *gin.Context) *Claims {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return nil
	}
	claims, err := Parse(token)
	if err != nil {
		return nil
	}
	return claims
}

// SetCookie attaches the session token to the response.
func SetCookie(c *gin.Context, token string) {
	secure := gin.Mode() == gin.ReleaseMode
	c.SetCookie(CookieName, token, int(TTL.Seconds()), "/", "", secure, true)
}

// ClearCookie deletes the session cookie.
func ClearCookie(c *gin.Context) {
	secure := gin.Mode() == gin.ReleaseMode
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}
