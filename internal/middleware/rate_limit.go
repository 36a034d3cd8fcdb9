package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"smartmeet/pkg/response"
)

const defaultRateLimitPerMin = 60

// getLimiter returns the rate limiter for a client IP, creating one on
// first sight.
func (m *Middleware) getLimiter(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, ok := m.limiters[ip]
	if !ok {
		perMin := m.cfg.RateLimitPerMin
		if perMin <= 0 {
			perMin = defaultRateLimitPerMin
		}
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
		m.limiters[ip] = limiter
	}
	return limiter
}

// RateLimit bounds requests per client IP. Parse endpoints sit in front
// of a metered LLM call, so they are never left unthrottled.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !m.getLimiter(ip).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Rate limit exceeded. Try again later.",
			})
			return
		}
		c.Next()
	}
}
