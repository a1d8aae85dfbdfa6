package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// ipLimiters holds one token bucket per client IP.
var (
	ipLimiters   = make(map[string]*rate.Limiter)
	ipLimitersMu sync.Mutex
)

func limiterForIP(ip string, r rate.Limit, burst int) *rate.Limiter {
	ipLimitersMu.Lock()
	defer ipLimitersMu.Unlock()

	limiter, ok := ipLimiters[ip]
	if !ok {
		limiter = rate.NewLimiter(r, burst)
		ipLimiters[ip] = limiter
	}
	return limiter
}

// RateLimit returns a per-IP rate limiting handler. Bulk upload endpoints
// use a tighter limit than general CRUD traffic.
func RateLimit(requestsPerSecond float64, burst int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limiter := limiterForIP(c.IP(), rate.Limit(requestsPerSecond), burst)
		if !limiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests, slow down",
			})
		}
		return c.Next()
	}
}
