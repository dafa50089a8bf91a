package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/willinthon-tech/maquinas/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ipEntry tracks requests of one IP within a fixed window.
type ipEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

// limiter is one independent per-IP counter set.
type limiter struct {
	name    string
	limit   int
	window  time.Duration
	mensaje string

	mu      sync.Mutex
	entries map[string]*ipEntry
}

var (
	limiters   []*limiter
	limitersMu sync.Mutex
	purgeOnce  sync.Once
)

func newLimiter(name string, limit int, window time.Duration, mensaje string) *limiter {
	l := &limiter{
		name:    name,
		limit:   limit,
		window:  window,
		mensaje: mensaje,
		entries: make(map[string]*ipEntry),
	}
	limitersMu.Lock()
	limiters = append(limiters, l)
	limitersMu.Unlock()
	purgeOnce.Do(func() { go purgeExpiredEntries() })
	return l
}

func (l *limiter) handle(c *gin.Context) {
	ip := c.ClientIP()

	l.mu.Lock()
	entry, exists := l.entries[ip]
	if !exists {
		entry = &ipEntry{}
		l.entries[ip] = entry
	}
	l.mu.Unlock()

	entry.mu.Lock()
	now := time.Now()
	if now.After(entry.windowEnd) {
		entry.count = 0
		entry.windowEnd = now.Add(l.window)
	}
	entry.count++
	excedido := entry.count > l.limit
	windowEnd := entry.windowEnd
	entry.mu.Unlock()

	if excedido {
		c.Header("Retry-After", windowEnd.UTC().Format(http.TimeFormat))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(apierror.KindTooManyRequests, l.mensaje))
		return
	}
	c.Next()
}

// LoginRateLimiter limits login attempts per IP per minute. A limit of zero
// or less disables it.
func LoginRateLimiter(limit int) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return newLimiter("login", limit, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").handle
}

// RateLimiter limits every request per IP within window. A limit of zero or
// less disables it.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return newLimiter("api", limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.").handle
}

// ── Purge goroutine ───────────────────────────────────────────────────────────
// Periodically removes expired entries so IPs that never return do not
// accumulate.

const purgeInterval = 5 * time.Minute

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		limitersMu.Lock()
		activos := append([]*limiter(nil), limiters...)
		limitersMu.Unlock()

		for _, l := range activos {
			if purged, remaining := l.purge(time.Now()); purged > 0 {
				log.Debug().
					Str("limiter", l.name).
					Int("entries_purged", purged).
					Int("entries_remaining", remaining).
					Msg("rate limiter map purged")
			}
		}
	}
}

func (l *limiter) purge(now time.Time) (purged, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, entry := range l.entries {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(l.entries, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged, len(l.entries)
}
