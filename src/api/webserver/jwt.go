package webserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ctxManagerID = "manager_id"

func issueJWT(managerID uint, email string, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(managerID), 10),
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	return token.SignedString(secret)
}

func managerFromToken(tokenString string, secret []byte) (uint, string, bool) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) { return secret, nil })
	if err != nil || !tok.Valid {
		return 0, "", false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return 0, "", false
	}
	email, _ := claims["email"].(string)
	return uint(id), email, true
}

// JWTMiddleware rejects requests without a valid manager bearer token.
func JWTMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		id, email, ok := managerFromToken(h[7:], secret)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(ctxManagerID, id)
		c.Set("email", email)
		c.Next()
	}
}

// OptionalJWT attributes the caller when a valid token is present and lets
// anonymous requests through untouched.
func OptionalJWT(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			if id, email, ok := managerFromToken(h[7:], secret); ok {
				c.Set(ctxManagerID, id)
				c.Set("email", email)
			}
		}
		c.Next()
	}
}

// managerID returns the authenticated manager id from the context, if any.
func managerID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ctxManagerID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
