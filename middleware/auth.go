package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"scholarconnect/pkg/config"
	tokenstore "scholarconnect/pkg/token"
)

const (
	ContextUserIDKey = "current_user_id"
	ContextJTIKey    = "current_jti"
)

// ParseUserToken validates an HS256 bearer token and returns the subject
// user id and jti. Shared by the HTTP middleware and the websocket upgrade,
// which receives its token as a query parameter instead of a header.
func ParseUserToken(tokenStr string) (userID uint, jti string, ok bool) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// only accept HMAC signing
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}
	claims, claimsOK := token.Claims.(jwt.MapClaims)
	if !claimsOK {
		return 0, "", false
	}
	jti, _ = claims["jti"].(string)
	if tokenstore.IsRevoked(jti) {
		return 0, "", false
	}

	var sub string
	if s, isStr := claims["sub"].(string); isStr {
		sub = s
	} else if f, isNum := claims["sub"].(float64); isNum {
		// jwt lib may parse numeric as float64
		sub = strconv.Itoa(int(f))
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return 0, "", false
	}
	return uint(id), jti, true
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "missing authorization header"})
			return
		}
		parts := strings.Fields(auth)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization header"})
			return
		}

		userID, jti, ok := ParseUserToken(parts[1])
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid token"})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextJTIKey, jti)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by AuthMiddleware.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(ContextUserIDKey)
	id, _ := v.(uint)
	return id
}
