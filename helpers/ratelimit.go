package helpers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps a token bucket per caller. Entries idle for longer than
// the cleanup window are dropped.
type RateLimiter struct {
	ratePerMin int

	mu       sync.Mutex
	limiters map[string]*callerLimiter
}

type callerLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func NewRateLimiter(ratePerMin int) *RateLimiter {
	rl := &RateLimiter{
		ratePerMin: ratePerMin,
		limiters:   make(map[string]*callerLimiter),
	}

	go rl.cleanupLoop(5 * time.Minute)

	return rl
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &callerLimiter{
			limiter: rate.NewLimiter(rate.Limit(float64(rl.ratePerMin)/60.0), rl.ratePerMin),
		}
		rl.limiters[key] = cl
	}
	cl.lastAccess = time.Now()

	return cl.limiter.Allow()
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	for range time.Tick(interval) {
		cutoff := time.Now().Add(-interval)

		rl.mu.Lock()
		for key, cl := range rl.limiters {
			if cl.lastAccess.Before(cutoff) {
				delete(rl.limiters, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Limit throttles requests per authenticated user, falling back to the
// client IP before authentication. Runs after Authenticate on protected
// routes.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ctx.ClientIP()
		if claims := GetClaims(ctx); claims != nil {
			key = claims.UID
		}

		if !rl.allow(key) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "Too many requests",
				"message": "リクエストが多すぎます。しばらく待ってから再度お試しください。",
			})
			return
		}

		ctx.Next()
	}
}
