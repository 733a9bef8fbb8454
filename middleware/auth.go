// middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smarttravelhq/smart-travel-backend/utils"
)

const (
	userIDKey   = "userID"
	userNameKey = "userName"
)

// Auth resolves the acting identity from the session cookie (or a bearer
// token for non-browser clients) and aborts unauthenticated requests.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		if cookie, err := c.Cookie(utils.SessionCookieName); err == nil {
			tokenStr = cookie
		}

		if tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					tokenStr = parts[1]
				}
			}
		}

		if tokenStr == "" {
			utils.HandleError(c, utils.NewUnauthenticatedError(utils.ErrNotLoggedIn))
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			utils.HandleError(c, utils.NewUnauthenticatedError(utils.ErrNotLoggedIn))
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userNameKey, claims.UserName)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id for the request
func CurrentUserID(c *gin.Context) (int, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(int)
	return userID, ok
}
