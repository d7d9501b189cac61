package middleware

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/classtrack-dev/classtrack/internal/apperrors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	DefaultLoginMaxAttempts = 5
	DefaultLoginWindow      = 15 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginRateLimiter throttles login attempts per client IP before the
// credential check runs. Each client gets a token bucket holding a full
// window's worth of attempts; idle entries are swept so the map cannot grow
// with one-off callers.
type LoginRateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	idleAfter time.Duration
	lastSweep time.Time
}

func NewLoginRateLimiter(maxAttempts int, window time.Duration) *LoginRateLimiter {
	return &LoginRateLimiter{
		clients:   make(map[string]*clientLimiter),
		limit:     rate.Every(window / time.Duration(maxAttempts)),
		burst:     maxAttempts,
		idleAfter: 3 * window,
		lastSweep: time.Now(),
	}
}

// NewLoginRateLimiterFromEnv reads LOGIN_RATE_LIMIT (attempts) and
// LOGIN_RATE_WINDOW (a time.ParseDuration string) with sane defaults.
func NewLoginRateLimiterFromEnv() *LoginRateLimiter {
	maxAttempts := DefaultLoginMaxAttempts
	window := DefaultLoginWindow

	if v := os.Getenv("LOGIN_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxAttempts = n
		}
	}

	if v := os.Getenv("LOGIN_RATE_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			window = d
		}
	}

	return NewLoginRateLimiter(maxAttempts, window)
}

func (l *LoginRateLimiter) Allow(clientKey string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.sweepLocked(now)

	client, ok := l.clients[clientKey]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[clientKey] = client
	}
	client.lastSeen = now

	return client.limiter.Allow()
}

func (l *LoginRateLimiter) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleAfter {
		return
	}

	for key, client := range l.clients {
		if now.Sub(client.lastSeen) >= l.idleAfter {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

func (l *LoginRateLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.Allow(ctx.ClientIP()) {
			limitErr := apperrors.RateLimited("Too many login attempts. Please try again later.")
			ctx.AbortWithStatusJSON(limitErr.Status(), gin.H{
				"success": false,
				"message": limitErr.Message,
			})
			return
		}
		ctx.Next()
	}
}
