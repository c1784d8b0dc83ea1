package http

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-user-keeper/internal/utils"
)

// limiterIdleWindow is how long a client address keeps its bucket without
// sending a request.
const limiterIdleWindow = 5 * time.Minute

// ipRateLimiter keeps one token bucket per client address and forgets
// addresses idle for longer than window.
type ipRateLimiter struct {
	mu          sync.Mutex
	clients     map[string]*clientLimiter
	lastCleanup time.Time

	limit  rate.Limit
	burst  int
	window time.Duration
	now    func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newIPRateLimiter returns a limiter allowing perMinute events per address
// with bursts of the same size, or nil when perMinute < 1.
func newIPRateLimiter(perMinute int) *ipRateLimiter {
	if perMinute < 1 {
		return nil
	}

	return &ipRateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   perMinute,
		window:  limiterIdleWindow,
		now:     time.Now,
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastCleanup) > l.window {
		l.cleanupLocked(now)
	}

	client, ok := l.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}

// cleanupLocked drops addresses idle for longer than window. A dropped
// address had refilled its bucket long ago, so forgetting it loses nothing.
func (l *ipRateLimiter) cleanupLocked(now time.Time) {
	for ip, client := range l.clients {
		if now.Sub(client.lastSeen) > l.window {
			delete(l.clients, ip)
		}
	}
	l.lastCleanup = now
}

func (h *Handler) withRegisterRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.registerLimiter != nil && !h.registerLimiter.allow(utils.ClientIP(r)) {
			h.writeError(w, r, ErrTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
