package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	PendingCountKey = "bookings:pending_count"
	LedgerKey       = "ledger:customers"
	StatsKey        = "stats:public"
)

var client *redis.Client

// Init initializes the Redis connection
func Init() error {
	// K8s sets REDIS_SERVICE_HOST and REDIS_SERVICE_PORT for services
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis" // fallback to service name
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// hashCredentials creates a hash of email+password for cache key
func hashCredentials(email, password string) string {
	h := sha256.New()
	h.Write([]byte(email + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, email, password string) (int64, bool) {
	if client == nil {
		return 0, false
	}
	key := hashCredentials(email, password)
	userID, err := client.Get(ctx, key).Int64()
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches valid credentials for 15 minutes
func CacheAuth(ctx context.Context, email, password string, userID int64) {
	if client == nil {
		return
	}
	key := hashCredentials(email, password)
	client.Set(ctx, key, userID, 15*time.Minute)
}

// ============================================
// Pending Booking Count
// ============================================

// GetPendingCount returns the cached pending-booking count, if present.
// The dashboards poll this every few seconds; a short TTL keeps the DB quiet.
func GetPendingCount(ctx context.Context) (int, bool) {
	if client == nil {
		return 0, false
	}
	raw, err := client.Get(ctx, PendingCountKey).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return count, true
}

// SetPendingCount caches the pending-booking count for 10 seconds.
func SetPendingCount(ctx context.Context, count int) {
	if client == nil {
		return
	}
	client.Set(ctx, PendingCountKey, strconv.Itoa(count), 10*time.Second)
}

// InvalidatePendingCount drops the cached count after any booking write.
func InvalidatePendingCount(ctx context.Context) {
	InvalidateKeys(ctx, PendingCountKey, StatsKey, LedgerKey)
}

// ============================================
// Generic Cache Functions
// ============================================

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// InvalidatePattern removes all keys matching a glob pattern
func InvalidatePattern(ctx context.Context, pattern string) {
	if client == nil {
		return
	}
	keys, err := client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateKeys removes specific cache keys
func InvalidateKeys(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

// ============================================
// Entity-Based Cache Invalidators
// ============================================

// InvalidateFinanceCaches clears finance-derived caches
// Called when: CreateRecord, UpdateRecord, DeleteRecord, CrewPayout
func InvalidateFinanceCaches(ctx context.Context) {
	InvalidatePattern(ctx, "finance:*")
	InvalidateKeys(ctx, LedgerKey, StatsKey)
}

// InvalidateUserCaches clears user-derived caches
// Called when: CreateUser, UpdateUser, DeleteUser
func InvalidateUserCaches(ctx context.Context) {
	InvalidatePattern(ctx, "users:*")
	InvalidateKeys(ctx, LedgerKey, StatsKey)
}

// InvalidateAllBusinessCaches clears ALL business data caches
// Called when: system cleanup (full reset)
func InvalidateAllBusinessCaches(ctx context.Context) {
	patterns := []string{
		"bookings:*", "finance:*", "ledger:*", "users:*", "stats:*",
	}
	for _, p := range patterns {
		InvalidatePattern(ctx, p)
	}
}

// IsHealthy returns true if Redis connection is working
func IsHealthy() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}
