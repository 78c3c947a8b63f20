package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/DrouetDanilo/Inventia/internal/apierror"
)

// Sliding-window limiters keyed by client IP. Two maps: a tight one for the
// auth endpoints and a general one for the rest of the API.

type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	loginMap   = make(map[string]*rateEntry)
	loginMapMu sync.Mutex

	apiMap   = make(map[string]*rateEntry)
	apiMapMu sync.Mutex
)

// LoginRateLimiter limits login and register attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allow(loginMap, &loginMapMu, c.ClientIP(), 20, time.Minute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiados intentos. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}

// RateLimiter is the general-purpose limiter applied to the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allow(apiMap, &apiMapMu, c.ClientIP(), limit, window) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}

func allow(m map[string]*rateEntry, mapMu *sync.Mutex, ip string, limit int, window time.Duration) bool {
	mapMu.Lock()
	entry, exists := m[ip]
	if !exists {
		entry = &rateEntry{}
		m[ip] = entry
	}
	mapMu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.windowEnd) {
		entry.count = 0
		entry.windowEnd = now.Add(window)
	}
	entry.count++
	return entry.count <= limit
}

// ── Purge goroutine ───────────────────────────────────────────────────────────
// Expired entries are removed periodically so IPs that never return don't
// accumulate.

const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		purged := purgeMap(loginMap, &loginMapMu) + purgeMap(apiMap, &apiMapMu)
		if purged > 0 {
			log.Debug().Int("entries_purged", purged).Msg("rate limiter maps purged")
		}
	}
}

func purgeMap(m map[string]*rateEntry, mapMu *sync.Mutex) int {
	mapMu.Lock()
	defer mapMu.Unlock()

	now := time.Now()
	purged := 0
	for ip, entry := range m {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(m, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}
