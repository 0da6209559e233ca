// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// directoryKeyPrefix namespaces cached directory pages in Valkey.
	directoryKeyPrefix = "directory:"

	// DefaultDirectoryTTL is how long a rendered page stays cached when
	// no catalog mutation invalidates it first.
	DefaultDirectoryTTL = 5 * time.Minute
)

// DirectoryCache stores rendered directory HTML in Valkey. Anonymous
// requests with identical filter criteria produce identical pages, so the
// rendered result is stored keyed by a hash of the canonical criteria
// string. Pages rendered for logged-in users are never cached because
// they embed per-user favorites.
type DirectoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDirectoryCache creates a directory page cache backed by the given
// Valkey client.
func NewDirectoryCache(client *redis.Client, ttl time.Duration) *DirectoryCache {
	if ttl == 0 {
		ttl = DefaultDirectoryTTL
	}
	return &DirectoryCache{client: client, ttl: ttl}
}

// CriteriaKey hashes a canonical criteria string into a fixed-length
// cache key.
func CriteriaKey(canonical string) string {
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// Get retrieves cached HTML for a criteria key. Cache errors degrade to a
// miss and the page is simply re-rendered.
func (dc *DirectoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := dc.client.Get(ctx, directoryKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("directory cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("directory cache hit", "key", key)
	return val, true
}

// Set stores rendered HTML for a criteria key with the configured TTL.
func (dc *DirectoryCache) Set(ctx context.Context, key string, html []byte) {
	if err := dc.client.Set(ctx, directoryKeyPrefix+key, html, dc.ttl).Err(); err != nil {
		slog.Warn("directory cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached directory page. Called after any
// catalog mutation, since any criteria combination could be affected.
func (dc *DirectoryCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := dc.client.Scan(ctx, cursor, directoryKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("directory cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := dc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("directory cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("directory cache cleared", "deleted", deleted)
	}
}
