package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pathway.app/server/common/logger"
	"pathway.app/server/internal/identity"
)

const identityKey = "pathway.identity"

// OptionalAuth resolves a bearer token when one is presented. Requests
// without a token pass through anonymously; requests with a token that
// fails to resolve are rejected so a bad credential never degrades to
// anonymous access.
func OptionalAuth(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		ident, err := provider.Authenticate(c.Request.Context(), token)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "bearer token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "msg": "invalid or expired credential"})
			return
		}

		c.Set(identityKey, ident)

		// Downstream logs carry the actor without explicit threading.
		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			ActorID: logger.Ptr(ident.UserID),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetIdentity returns the resolved identity for the request, if any.
func GetIdentity(c *gin.Context) (*identity.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	ident, ok := v.(*identity.Identity)
	return ident, ok
}

func bearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
