package middleware

import (
	"net/http"
	"sync"
	"time"

	"tallypos/internal/apierror"

	"github.com/gin-gonic/gin"
)

// limiter is a per-IP sliding-window counter. Each constructed middleware
// owns its own map and purge goroutine, so the login limiter and the
// general limiter never share state.
type limiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
	message string
}

type window struct {
	count int
	end   time.Time
}

func newLimiter(limit int, period time.Duration, message string) *limiter {
	l := &limiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
		message: message,
	}
	go l.purge()
	return l
}

func (l *limiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows[ip]
	if !ok || now.After(w.end) {
		w = &window{end: now.Add(l.period)}
		l.windows[ip] = w
	}
	w.count++
	return w.count <= l.limit
}

// purge drops expired windows so IPs that never return do not accumulate.
func (l *limiter) purge() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		for ip, w := range l.windows {
			if now.After(w.end) {
				delete(l.windows, ip)
			}
		}
		l.mu.Unlock()
	}
}

func (l *limiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

// RateLimiter is the general per-IP API limiter.
func RateLimiter(limit int, period time.Duration) gin.HandlerFunc {
	return newLimiter(limit, period, "Too many requests. Try again in a moment.").middleware()
}

// LoginRateLimiter slows credential-stuffing: 20 attempts per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newLimiter(20, time.Minute, "Too many login attempts. Try again in a minute.").middleware()
}
