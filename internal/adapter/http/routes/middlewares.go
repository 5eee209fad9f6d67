package routes

import (
	"log"
	"net/http"
	"sync"
	"time"

	"checkout_relay/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// cors lets the storefront call the relays from the browser. Preflight
// requests end here with 200.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, x-signature, x-request-id")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// rateLimit keeps one token bucket per client IP in front of charge creation,
// so a single client cannot starve other checkouts. A non-positive rate
// disables it.
func rateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiters := newClientLimiters(rps, burst, time.Now)

	return func(c *gin.Context) {
		if !limiters.allow(c.ClientIP()) {
			log.Printf("[payment][ratelimit] rejected path=%s client_ip=%s", c.FullPath(), c.ClientIP())
			appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

const (
	limiterIdleTTL       = 30 * time.Minute
	limiterSweepInterval = 5 * time.Minute
)

type clientLimiter struct {
	limiter *rate.Limiter
	last    time.Time
}

// clientLimiters evicts buckets idle for limiterIdleTTL; the sweep runs inline
// at most once per limiterSweepInterval.
type clientLimiters struct {
	mu        sync.Mutex
	rps       rate.Limit
	burst     int
	clients   map[string]*clientLimiter
	lastSweep time.Time
	now       func() time.Time
}

func newClientLimiters(rps float64, burst int, now func() time.Time) *clientLimiters {
	if burst < 1 {
		burst = 1
	}
	return &clientLimiters{
		rps:       rate.Limit(rps),
		burst:     burst,
		clients:   map[string]*clientLimiter{},
		lastSweep: now(),
		now:       now,
	}
}

func (l *clientLimiters) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= limiterSweepInterval {
		for key, cl := range l.clients {
			if now.Sub(cl.last) > limiterIdleTTL {
				delete(l.clients, key)
			}
		}
		l.lastSweep = now
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = cl
	}
	cl.last = now
	return cl.limiter.AllowN(now, 1)
}
