package middleware

import (
	"log"
	"net/http"

	"marketplace/internal/auth"

	"github.com/gin-gonic/gin"
)

const ruleKey = "access_rule"

// Access enforces the route's rule from table before the handler runs.
// Owner-gated routes only need a principal here; the handler completes the
// check with AuthorizeOwner once the resource owner is known.
func Access(table *auth.AccessTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		rule := table.Lookup(c.Request.Method, c.FullPath())
		c.Set(ruleKey, rule)
		if !respondDecision(c, rule.Check(PrincipalFrom(c))) {
			return
		}
		c.Next()
	}
}

// AuthorizeOwner applies the current route's owner rule. It writes the
// rejection and returns false when the principal may not act on ownerID.
func AuthorizeOwner(c *gin.Context, ownerID int64) bool {
	rule := auth.OwnerRule("")
	if v, ok := c.Get(ruleKey); ok {
		if r, ok := v.(auth.Rule); ok {
			rule = r
		}
	}
	return respondDecision(c, rule.CheckOwner(PrincipalFrom(c), ownerID))
}

func respondDecision(c *gin.Context, d auth.Decision) bool {
	err := d.Err()
	if err == nil {
		return true
	}
	status, code := http.StatusForbidden, "forbidden"
	if d == auth.Unauthenticated {
		status, code = http.StatusUnauthorized, "unauthorized"
	}
	subject := "anonymous"
	if p := PrincipalFrom(c); p != nil {
		subject = p.Subject()
	}
	log.Printf("[AUTH] request_id=%s %s %s denied for %s: %s", GetRequestID(c), c.Request.Method, c.FullPath(), subject, d)
	abortJSON(c, status, code, err.Error())
	return false
}
