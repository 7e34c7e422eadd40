package middleware

import (
	"log"
	"net/http"

	"marketplace/internal/auth"
	"marketplace/internal/utils"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Authenticate verifies a bearer token when one is sent and binds the
// principal to the request. Requests without a Bearer header continue
// anonymously; a token that fails verification ends the request with 401.
func Authenticate(codec *auth.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := utils.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		claims, err := codec.Verify(token)
		if err != nil {
			log.Printf("[AUTH] request_id=%s rejected token: %v", GetRequestID(c), err)
			abortJSON(c, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
			return
		}

		c.Set(principalKey, claims.Principal())
		c.Next()
	}
}

// PrincipalFrom returns the verified identity, or nil for anonymous requests.
func PrincipalFrom(c *gin.Context) *auth.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*auth.Principal)
	return p
}

func abortJSON(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": GetRequestID(c),
	})
}
