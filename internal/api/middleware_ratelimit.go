package api

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

const limiterIdleEviction = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter keeps a token bucket per client IP. Buckets idle for more
// than limiterIdleEviction are dropped on the next lookup sweep.
type ipRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rate    rate.Limit
	burst   int
}

func newIPRateLimiter(perSecond float64, burst int) *ipRateLimiter {
	if perSecond <= 0 {
		perSecond = 1
	}
	if burst <= 0 {
		burst = 5
	}
	return &ipRateLimiter{
		entries: make(map[string]*limiterEntry),
		rate:    rate.Limit(perSecond),
		burst:   burst,
	}
}

func (limiter *ipRateLimiter) allow(ip string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	now := time.Now()
	entry, found := limiter.entries[ip]
	if !found {
		entry = &limiterEntry{limiter: rate.NewLimiter(limiter.rate, limiter.burst)}
		limiter.entries[ip] = entry
	}
	entry.lastSeen = now

	for key, other := range limiter.entries {
		if now.Sub(other.lastSeen) > limiterIdleEviction {
			delete(limiter.entries, key)
		}
	}
	return entry.limiter.Allow()
}

// LoginRateLimit guards the credential endpoints against brute force.
func (handler *Handler) LoginRateLimit(c *fiber.Ctx) error {
	if !handler.loginLimiter.allow(c.IP()) {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, slow down"})
	}
	return c.Next()
}
