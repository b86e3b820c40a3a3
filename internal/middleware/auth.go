package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/launchlabs/leo-backend/internal/modules/serializer"
	"github.com/launchlabs/leo-backend/internal/modules/service"
)

// CookieName carries the session token issued at login.
const CookieName = "access_token"

// UserKey is where SessionAuth leaves the verified user for handlers.
const UserKey = "user"

// SessionAuth is the session boundary: it pulls the token from the
// cookie and hands it to the token service before any handler runs.
// A missing cookie is Unauthenticated; everything else propagates the
// verify failure unchanged.
func SessionAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("no session cookie"))
			return
		}

		user, err := auth.Verify(c.Request.Context(), token)
		if err != nil {
			status, resp := serializer.FromError(err)
			c.AbortWithStatusJSON(status, resp)
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}
