package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idleTTL is how long a client's limiter is kept after its last request.
const idleTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitors holds one token bucket per client IP.
// NOTE: in-memory only; replicas each keep their own buckets.
type visitors struct {
	mu        sync.Mutex
	rps       rate.Limit
	burst     int
	byIP      map[string]*visitor
	lastSweep time.Time
}

func (v *visitors) get(ip string, now time.Time) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	if now.Sub(v.lastSweep) > idleTTL {
		for k, cl := range v.byIP {
			if now.Sub(cl.lastSeen) > idleTTL {
				delete(v.byIP, k)
			}
		}
		v.lastSweep = now
	}

	cl, ok := v.byIP[ip]
	if !ok {
		cl = &visitor{limiter: rate.NewLimiter(v.rps, v.burst)}
		v.byIP[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// RateLimiter limits requests per client IP with a token bucket refilled at
// rps tokens per second and holding up to burst tokens.
//
// Behavior:
//   - Identifies clients by their IP address.
//   - Non-positive rps or burst disables limiting.
//   - If the bucket is empty, returns HTTP 429 Too Many Requests.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RateLimiter(1, 60))
//
// Response when limit exceeded:
//
//	HTTP/1.1 429 Too Many Requests
//	{
//	    "message": "rate limit exceeded",
//	    "timestamp": "..."
//	}
func RateLimiter(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 || burst <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	store := &visitors{rps: rate.Limit(rps), burst: burst, byIP: make(map[string]*visitor)}

	return func(c *gin.Context) {
		now := time.Now()
		if !store.get(c.ClientIP(), now).AllowN(now, 1) {
			AbortWithError(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		c.Next()
	}
}
