package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	rate  rate.Limit
	burst int
	ips   map[string]*visitor
	mu    sync.Mutex
	now   func() time.Time
}

// NewRateLimiter allows rps requests per second per IP with the given burst.
// rps <= 0 disables limiting.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		rate:  rate.Limit(rps),
		burst: burst,
		ips:   make(map[string]*visitor),
		now:   time.Now,
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, exists := rl.ips[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.ips[ip] = v
	}
	v.lastSeen = now

	// drop buckets of clients that went quiet
	for key, other := range rl.ips {
		if now.Sub(other.lastSeen) > limiterIdleTTL {
			delete(rl.ips, key)
		}
	}
	return v.limiter
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.rate <= 0 {
			c.Next()
			return
		}

		if !rl.limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":  false,
				"message": "too many requests, please slow down",
			})
			return
		}
		c.Next()
	}
}
