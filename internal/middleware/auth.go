package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jarin-io/api/internal/auth"
	"jarin-io/api/pkg/util"
)

const (
	ContextToken   = "auth_token"
	ContextSession = "auth_session"
)

// Auth validates the request token, rejects blacklisted tokens, and loads
// the admin session into the request context.
func Auth(sessions *auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := auth.ExtractToken(c)
		if tokenString == "" {
			util.HandleError(c, http.StatusUnauthorized, errors.New("request does not contain an access token"))
			c.Abort()
			return
		}

		if _, err := auth.ValidateToken(tokenString); err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		if !auth.IsTokenValid(util.REDIS, tokenString) {
			util.HandleError(c, http.StatusUnauthorized, errors.New("token has been revoked, please login again"))
			c.Abort()
			return
		}

		session, err := sessions.Get(c.Request.Context(), tokenString)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, errors.New("session expired, please login again"))
			c.Abort()
			return
		}

		c.Set(ContextToken, tokenString)
		c.Set(ContextSession, session)
		c.Next()
	}
}

// RequirePasswordRotated blocks users still carrying their initial password.
// The password change route itself is not mounted behind this middleware.
func RequirePasswordRotated() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session.ForceChangePassword {
			util.HandleError(c, http.StatusForbidden, errors.New("password change required before continuing"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentSession returns the session loaded by Auth. Only valid on routes
// mounted behind it.
func CurrentSession(c *gin.Context) auth.AdminSession {
	value, ok := c.Get(ContextSession)
	if !ok {
		return auth.AdminSession{}
	}

	session, _ := value.(auth.AdminSession)
	return session
}

// CurrentToken returns the raw token loaded by Auth.
func CurrentToken(c *gin.Context) string {
	return c.GetString(ContextToken)
}
