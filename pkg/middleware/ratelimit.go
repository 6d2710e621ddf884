package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hackfest/pkg/policy"
	"hackfest/pkg/utils"
)

// RateLimitMiddleware gates requests per client IP through the policy
// collaborator and records trips as security events.
func RateLimitMiddleware(p policy.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !p.IsAllowed(ip) {
			p.RecordEvent(policy.Event{
				Kind:   "rate_limit",
				Key:    ip,
				Detail: c.Request.Method + " " + c.Request.URL.Path,
			})
			utils.RespondError(c, http.StatusTooManyRequests, "Rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}
