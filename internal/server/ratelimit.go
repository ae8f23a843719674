package server

import (
	"net/http"
	"sync"
	"time"

	"gymplace/internal/api"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	sweepInterval = time.Minute
	idleTTL       = 3 * time.Minute
)

// ipLimiter hands out one token bucket per client IP and forgets IPs that
// have been quiet for longer than ttl. Close stops the background sweep.
type ipLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	*rate.Limiter
	seen time.Time
}

func newIPLimiter(rps float64, burst int, ttl time.Duration) *ipLimiter {
	return &ipLimiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
		now:     time.Now,
		done:    make(chan struct{}),
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{Limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[ip] = b
	}
	b.seen = l.now()
	l.mu.Unlock()

	return b.Allow()
}

// sweep drops idle buckets and reports how many remain.
func (l *ipLimiter) sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.ttl)
	for ip, b := range l.buckets {
		if b.seen.Before(cutoff) {
			delete(l.buckets, ip)
		}
	}
	return len(l.buckets)
}

func (l *ipLimiter) run(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.done:
			return
		}
	}
}

// Close is safe to call more than once.
func (l *ipLimiter) Close() {
	l.stopOnce.Do(func() { close(l.done) })
}

func (l *ipLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "Rate limit exceeded", Code: api.CodeRateLimited})
			return
		}
		c.Next()
	}
}

// RateLimitMiddleware rejects requests over the per-IP budget with 429.
// The returned stop func ends the idle sweep.
func RateLimitMiddleware(rps float64, burst int) (gin.HandlerFunc, func()) {
	l := newIPLimiter(rps, burst, idleTTL)
	go l.run(sweepInterval)
	return l.middleware(), l.Close
}
