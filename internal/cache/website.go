// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// website.go provides a Valkey-backed cache of generated site records.
// The generator primes it after a successful store write so the preview
// surface usually skips the database entirely. Site records are
// immutable, so there is no invalidation path beyond TTL expiry.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"siteforge/internal/models"
)

const (
	// websiteKeyPrefix is the Valkey key prefix for cached records.
	websiteKeyPrefix = "website:"

	// DefaultWebsiteTTL is how long a generated record stays cached.
	DefaultWebsiteTTL = time.Hour
)

// WebsiteCache stores generated site records as JSON in Valkey. All
// cache errors are logged and absorbed: a broken cache degrades to
// database reads, never to request failures.
type WebsiteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewWebsiteCache creates a record cache backed by the given Valkey client.
func NewWebsiteCache(client *redis.Client, ttl time.Duration) *WebsiteCache {
	if ttl == 0 {
		ttl = DefaultWebsiteTTL
	}
	return &WebsiteCache{client: client, ttl: ttl}
}

// Get retrieves a cached record by website id. Returns false on miss.
func (wc *WebsiteCache) Get(ctx context.Context, id string) (*models.Website, bool) {
	val, err := wc.client.Get(ctx, websiteKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("website cache get error", "id", id, "error", err)
		return nil, false
	}

	var w models.Website
	if err := json.Unmarshal(val, &w); err != nil {
		slog.Warn("website cache decode error", "id", id, "error", err)
		return nil, false
	}

	slog.Debug("website cache hit", "id", id)
	return &w, true
}

// Set stores a record with the configured TTL.
func (wc *WebsiteCache) Set(ctx context.Context, id string, w *models.Website) {
	val, err := json.Marshal(w)
	if err != nil {
		slog.Warn("website cache encode error", "id", id, "error", err)
		return
	}
	if err := wc.client.Set(ctx, websiteKeyPrefix+id, val, wc.ttl).Err(); err != nil {
		slog.Warn("website cache set error", "id", id, "error", err)
	}
}
