package server

import (
	"net/http"

	"github.com/VinceRamirez1998/fuel-and-conquer/internal/auth"

	"github.com/gin-gonic/gin"
)

const userContextKey = "sessionUser"

// sessionFromCookie returns the verified session user, or nil when the
// request carries no usable session cookie.
func (s *Server) sessionFromCookie(c *gin.Context) *auth.SessionUser {
	token, err := c.Cookie(auth.CookieName)
	if err != nil || token == "" {
		return nil
	}
	user, err := s.sessions.Verify(token)
	if err != nil {
		return nil
	}
	return user
}

// requireSessionPage guards HTML pages: unauthenticated visitors land on the
// login page.
func (s *Server) requireSessionPage(c *gin.Context) {
	user := s.sessionFromCookie(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return
	}
	c.Set(userContextKey, user)
	c.Next()
}

// requireSessionAPI guards JSON endpoints with a 401.
func (s *Server) requireSessionAPI(c *gin.Context) {
	user := s.sessionFromCookie(c)
	if user == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
		return
	}
	c.Set(userContextKey, user)
	c.Next()
}

func currentUser(c *gin.Context) *auth.SessionUser {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*auth.SessionUser); ok {
			return user
		}
	}
	return nil
}
