package limiter

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether a client may make another request
type Limiter interface {
	// Allow reports whether a request from client is within its limit
	Allow(client string) bool

	// Close releases connections held by the limiter
	Close() error
}

// idleAfter is how long an unused client bucket is kept
const idleAfter = 5 * time.Minute

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one token bucket per client in process memory.
// Suitable for a single server instance.
type MemoryLimiter struct {
	mu          sync.Mutex
	buckets     map[string]*clientBucket
	limit       rate.Limit
	burst       int
	lastCleanup time.Time
}

// NewMemoryLimiter creates a limiter allowing requestsPerSecond per client.
// Fractional rates are allowed; the burst is one second's worth, at least 1.
func NewMemoryLimiter(requestsPerSecond float64) *MemoryLimiter {
	return &MemoryLimiter{
		buckets:     make(map[string]*clientBucket),
		limit:       rate.Limit(requestsPerSecond),
		burst:       int(math.Max(1, math.Floor(requestsPerSecond))),
		lastCleanup: time.Now(),
	}
}

func (l *MemoryLimiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	bucket, ok := l.buckets[client]
	if !ok {
		bucket = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[client] = bucket
	}
	bucket.lastSeen = now

	l.cleanup(now)

	return bucket.limiter.AllowN(now, 1)
}

// cleanup drops idle buckets at most once per idleAfter. Caller holds mu.
func (l *MemoryLimiter) cleanup(now time.Time) {
	if now.Sub(l.lastCleanup) < idleAfter {
		return
	}
	for client, bucket := range l.buckets {
		if now.Sub(bucket.lastSeen) > idleAfter {
			delete(l.buckets, client)
		}
	}
	l.lastCleanup = now
}

// Clients returns the number of tracked clients
func (l *MemoryLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *MemoryLimiter) Close() error {
	return nil
}
