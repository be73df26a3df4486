package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a sliding-window limiter keyed by client address. Request
// timestamps are kept per client and pruned as the window slides; a client
// over the ceiling receives 429 until enough old requests fall out of the
// window.
type RateLimiter struct {
	window  time.Duration
	max     int
	now     func() time.Time
	mu      sync.Mutex
	clients map[string][]time.Time
}

// NewRateLimiter creates a limiter allowing max requests per window per client
func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		window:  window,
		max:     max,
		now:     time.Now,
		clients: make(map[string][]time.Time),
	}
}

// Allow records one request for the client and reports whether it is within
// the ceiling.
func (rl *RateLimiter) Allow(clientID string) bool {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	timestamps := rl.clients[clientID]
	kept := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= rl.max {
		rl.clients[clientID] = kept
		return false
	}

	rl.clients[clientID] = append(kept, now)
	return true
}

// Middleware rejects requests over the ceiling with a 429 and a static message
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests from this IP, please try again later.",
			})
			return
		}
		c.Next()
	}
}
