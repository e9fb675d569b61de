package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"agencyledger/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// LimiterStore counts hits per key in fixed windows.
type LimiterStore interface {
	// Hit records one request and returns the count in the current window and
	// when that window ends.
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
}

// ── In-process store ──────────────────────────────────────────────────────────

type windowEntry struct {
	count     int64
	windowEnd time.Time
}

// MemoryStore keeps counters in a map; suitable for a single API instance.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
}

const purgeInterval = 5 * time.Minute

// NewMemoryStore starts a janitor that removes expired windows until ctx ends.
func NewMemoryStore(ctx context.Context) *MemoryStore {
	s := &MemoryStore{entries: make(map[string]*windowEntry)}
	go s.purgeLoop(ctx)
	return s
}

func (s *MemoryStore) Hit(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	e, ok := s.entries[key]
	if !ok || now.After(e.windowEnd) {
		e = &windowEntry{windowEnd: now.Add(window)}
		s.entries[key] = e
	}
	e.count++
	return e.count, e.windowEnd, nil
}

func (s *MemoryStore) purgeLoop(ctx context.Context) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.purge(time.Now()); n > 0 {
				log.Debug().Int("purged", n).Msg("rate limiter entries purged")
			}
		}
	}
}

func (s *MemoryStore) purge(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	purged := 0
	for key, e := range s.entries {
		if now.After(e.windowEnd) {
			delete(s.entries, key)
			purged++
		}
	}
	return purged
}

// ── Redis store ───────────────────────────────────────────────────────────────

// RedisStore shares counters between API instances.
type RedisStore struct{ rdb *redis.Client }

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func (s *RedisStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	slot := time.Now().Truncate(window)
	redisKey := "ratelimit:" + key + ":" + strconv.FormatInt(slot.Unix(), 10)

	var incr *redis.IntCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, window)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, err
	}
	return incr.Val(), slot.Add(window), nil
}

// ── Middleware ────────────────────────────────────────────────────────────────

// RateLimiter rejects a client IP once it exceeds limit requests per window.
// Store errors let the request through.
func RateLimiter(store LimiterStore, scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, windowEnd, err := store.Hit(c.Request.Context(), scope+":"+c.ClientIP(), window)
		if err != nil {
			log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable")
			c.Next()
			return
		}
		if count > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(time.Until(windowEnd).Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Too many requests, try again shortly"))
			return
		}
		c.Next()
	}
}
