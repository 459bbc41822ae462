package http

import (
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"article-digest/internal/handler/http/respond"
)

// LoginRateLimiter throttles credential endpoints per client IP with a token
// bucket. Stale client entries are evicted lazily on each new IP so the map
// does not grow without bound.
type LoginRateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	lastSeen func() time.Time
}

type clientLimiter struct {
	limiter *rate.Limiter
	seen    time.Time
}

// NewLoginRateLimiter allows ratePerSecond sustained requests with the given
// burst per client IP.
func NewLoginRateLimiter(ratePerSecond float64, burst int) *LoginRateLimiter {
	return &LoginRateLimiter{
		clients:  make(map[string]*clientLimiter),
		limit:    rate.Limit(ratePerSecond),
		burst:    burst,
		ttl:      10 * time.Minute,
		lastSeen: time.Now,
	}
}

// Middleware wraps next with the rate limit check, answering 429 when the
// client's bucket is empty.
func (l *LoginRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !l.allow(ip) {
			respond.Error(w, http.StatusTooManyRequests,
				errors.New("too many attempts, try again later"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *LoginRateLimiter) allow(ip string) bool {
	now := l.lastSeen()

	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[ip]
	if !ok {
		l.evictStaleLocked(now)
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.seen = now
	return c.limiter.Allow()
}

func (l *LoginRateLimiter) evictStaleLocked(now time.Time) {
	for ip, c := range l.clients {
		if now.Sub(c.seen) > l.ttl {
			delete(l.clients, ip)
		}
	}
}

// clientIP extracts the client address without the port. Proxy headers are
// deliberately ignored; this service is expected to face clients directly
// or behind a proxy that rewrites RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
