package member

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxMemberKey     = "current_member"
	ctxSessionKeyKey = "session_key"
)

// Resolver turns a session key into the signed-in member.
type Resolver interface {
	GetBySessionKey(sessionKey string) (*Member, error)
}

// RequireSession rejects requests without a valid session and stores the
// resolved member on the context for handlers downstream.
func RequireSession(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := sessionKeyFrom(c)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session key required"})
			return
		}
		m, err := resolver.GetBySessionKey(key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}
		c.Set(ctxMemberKey, m)
		c.Set(ctxSessionKeyKey, key)
		c.Next()
	}
}

func sessionKeyFrom(c *gin.Context) string {
	if key := c.GetHeader("X-Session-Key"); key != "" {
		return key
	}
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	// websocket upgrades cannot set custom headers from the browser
	return c.Query("session_key")
}

// CurrentMember returns the member stored by RequireSession. Handlers behind
// the middleware can rely on a non-nil result.
func CurrentMember(c *gin.Context) *Member {
	v, ok := c.Get(ctxMemberKey)
	if !ok {
		return &Member{}
	}
	m, ok := v.(*Member)
	if !ok {
		return &Member{}
	}
	return m
}

// CurrentSessionKey returns the session key the request authenticated with.
func CurrentSessionKey(c *gin.Context) string {
	return c.GetString(ctxSessionKeyKey)
}
