package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/arcanadaily/arcana-api/internal/api/shared"
)

const (
	// cleanupInterval is how often idle limiter entries are swept.
	cleanupInterval = 10 * time.Minute

	// limiterTTL is how long an entry may sit idle before being dropped.
	limiterTTL = 30 * time.Minute
)

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter throttles requests per client IP using a token bucket per
// client. Entries for idle clients are swept periodically so the map does
// not grow without bound.
type RateLimiter struct {
	mu       sync.RWMutex
	clients  map[string]*limiterEntry
	rps      rate.Limit
	burst    int
	stopOnce sync.Once
	stop     chan struct{}
}

// NewRateLimiter creates a RateLimiter allowing rps requests per second with
// the given burst per client, and starts the background sweep.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*limiterEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		stop:    make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Stop terminates the background sweep goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit is the middleware. Requests over the budget get 429 with a
// Retry-After hint.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			w.Header().Set("Retry-After", "1")
			shared.RespondWithErrorAndLog(
				w, r,
				http.StatusTooManyRequests,
				"Too many requests, slow down",
				nil,
			)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.RLock()
	entry, ok := rl.clients[key]
	rl.mu.RUnlock()

	if !ok {
		rl.mu.Lock()
		// Re-check under the write lock; another request may have won.
		entry, ok = rl.clients[key]
		if !ok {
			entry = &limiterEntry{limiter: rate.NewLimiter(rl.rps, rl.burst)}
			rl.clients[key] = entry
		}
		entry.lastAccess = time.Now()
		rl.mu.Unlock()
		return entry.limiter.Allow()
	}

	rl.mu.Lock()
	entry.lastAccess = time.Now()
	rl.mu.Unlock()
	return entry.limiter.Allow()
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep(time.Now().Add(-limiterTTL))
		}
	}
}

func (rl *RateLimiter) sweep(cutoff time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, entry := range rl.clients {
		if entry.lastAccess.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

// clientIP strips the port from RemoteAddr. RealIP middleware upstream has
// already rewritten RemoteAddr from X-Forwarded-For where applicable.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
