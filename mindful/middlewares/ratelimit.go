// mindful/middlewares/ratelimit.go
package middlewares

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter is a fixed-window per-client limiter: each client IP gets its
// own counter per calendar minute. One client exceeding its window never
// affects another client's counters.
type RateLimiter struct {
	mu         sync.Mutex
	counts     map[string]int
	lastMinute int64
	limit      int
	now        func() time.Time
}

func NewRateLimiter(limit int) *RateLimiter {
	return &RateLimiter{
		counts: make(map[string]int),
		limit:  limit,
		now:    time.Now,
	}
}

// Allow counts one request for the client and reports whether it is within
// the current minute's window.
func (rl *RateLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	minute := rl.now().Unix() / 60
	if minute != rl.lastMinute {
		// New window: previous minute's counters are all stale.
		rl.counts = make(map[string]int)
		rl.lastMinute = minute
	}

	key := fmt.Sprintf("%s:%d", clientIP, minute)
	if rl.counts[key] >= rl.limit {
		return false
	}
	rl.counts[key]++
	return true
}

// Middleware rejects over-limit requests with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.Allow(ip) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": "Rate limit exceeded. Please try again later."}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
