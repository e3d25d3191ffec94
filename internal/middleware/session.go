package middleware

import (
	"net/http"
	"time"

	"invoicer/internal/token"
	"invoicer/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireSession gates routes that need a logged-in backend session. The
// backend verifies token signatures; locally we only check that a pair is
// held and that the refresh token has not already expired, since an expired
// refresh token makes every backend call a guaranteed 401.
func RequireSession(tokens *token.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tokens.LoggedIn() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Not logged in"))
			return
		}

		if expired(tokens.RefreshToken()) {
			_ = tokens.Clear()
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Session expired, please log in again"))
			return
		}

		c.Next()
	}
}

// expired reports whether a JWT's exp claim is in the past. Unparseable
// tokens are treated as live: the backend is the authority, this is only an
// early exit.
func expired(tokenString string) bool {
	if tokenString == "" {
		return true
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
