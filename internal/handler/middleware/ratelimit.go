package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"booking-api/internal/handler/httperr"
	"booking-api/internal/pkg/config"
	"booking-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

// TrustProxies limits which peers may set the client IP through forwarding
// headers. An empty list trusts none, so ClientIP is the socket peer.
func TrustProxies(engine *gin.Engine, proxies []string) error {
	if len(proxies) == 0 {
		proxies = nil
	}
	if err := engine.SetTrustedProxies(proxies); err != nil {
		return errs.Wrap(err, "set trusted proxies")
	}
	return nil
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginRateLimiter keeps one token bucket per client IP.
type LoginRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	every     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewLoginRateLimiter(cfg config.AdminConfig) *LoginRateLimiter {
	perMinute := cfg.LoginRatePerMinute
	if perMinute <= 0 {
		perMinute = 1
	}
	burst := cfg.LoginRateBurst
	if burst <= 0 {
		burst = 1
	}
	interval := time.Minute / time.Duration(perMinute)
	return &LoginRateLimiter{
		limiters: make(map[string]*limiterEntry),
		every:    rate.Every(interval),
		burst:    burst,
		// a bucket idle this long is full again, dropping it changes nothing
		idleTTL: interval * time.Duration(burst),
		now:     time.Now,
	}
}

func (l *LoginRateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}

	entry, ok := l.limiters[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.every, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// sweep expects l.mu held.
func (l *LoginRateLimiter) sweep(now time.Time) {
	for ip, entry := range l.limiters {
		if now.Sub(entry.lastSeen) >= l.idleTTL {
			delete(l.limiters, ip)
		}
	}
	l.lastSweep = now
}

func (l *LoginRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.limiterFor(ip).AllowN(l.now(), 1) {
			slog.WarnContext(c.Request.Context(), "login rate limit exceeded", "client_ip", ip)
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many login attempts, try again later", nil)
			return
		}
		c.Next()
	}
}
