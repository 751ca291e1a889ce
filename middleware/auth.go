package middleware

import (
	"net/http"
	"strings"

	"testblog/config"
	"testblog/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// SessionCookie carries the same signed token the API accepts as a bearer
// header; the server-rendered surface authenticates with it.
const SessionCookie = "blog_session"

const claimsKey = "claims"

// Claims is the session principal: stable user id, username, email and one
// entry per held role. Role strings are parsed back into the closed role set
// before any authorization decision.
type Claims struct {
	UserID   uint     `json:"user_id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasAnyRole reports whether the principal holds at least one of the wanted
// roles. Unknown role strings in the token are ignored.
func (c *Claims) HasAnyRole(wanted ...models.RoleName) bool {
	for _, held := range c.Roles {
		name, ok := models.ParseRoleName(held)
		if !ok {
			continue
		}
		for _, want := range wanted {
			if name == want {
				return true
			}
		}
	}
	return false
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

func parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return config.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return claims, nil
}

// AuthMiddleware requires a valid session, taken from the Authorization
// header or the session cookie.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present and lets the
// request through anonymously otherwise.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractToken(c); tokenString != "" {
			if claims, err := parseToken(tokenString); err == nil {
				c.Set(claimsKey, claims)
			}
		}
		c.Next()
	}
}

// RequireRole gates an action on membership in any of the listed roles.
func RequireRole(roles ...models.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !claims.HasAnyRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

func GetClaims(c *gin.Context) *Claims {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

func GetUserID(c *gin.Context) uint {
	if claims := GetClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}
