package middleware

import (
	"math"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idle buckets older than this are dropped on the next sweep
const localBucketTTL = 10 * time.Minute

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// localLimiter keeps one token bucket per key in process memory.
type localLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*localBucket
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newLocalLimiter(max int, window time.Duration) *localLimiter {
	return &localLimiter{
		buckets: make(map[string]*localBucket),
		limit:   rate.Limit(float64(max) / window.Seconds()),
		burst:   max,
		now:     time.Now,
	}
}

func (l *localLimiter) reserve(key string) (ok bool, remaining int, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > localBucketTTL {
		for k, b := range l.buckets {
			if now.Sub(b.lastSeen) > localBucketTTL {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	b, found := l.buckets[key]
	if !found {
		b = &localBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	r := b.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, 0, delay
	}
	return true, int(math.Floor(b.limiter.TokensAt(now))), 0
}

// LocalRateLimit is the in-process fallback used when redis is not configured.
// Each key gets a bucket refilled at max per window with a burst of max.
func LocalRateLimit(max int, window time.Duration, keyFn KeyFunc, allow AllowFunc) gin.HandlerFunc {
	if max <= 0 || window <= 0 || keyFn == nil {
		return func(c *gin.Context) { c.Next() }
	}
	l := newLocalLimiter(max, window)
	return localRateLimit(l, max, keyFn, allow)
}

func localRateLimit(l *localLimiter, max int, keyFn KeyFunc, allow AllowFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipRateLimit(c, allow) {
			c.Next()
			return
		}
		ok, remaining, retryAfter := l.reserve(keyFn(c))
		resetSec := int(math.Ceil(retryAfter.Seconds()))
		writeLimitHeaders(c, max, remaining, resetSec)
		if !ok {
			rejectRateLimited(c, resetSec)
			return
		}
		c.Next()
	}
}
