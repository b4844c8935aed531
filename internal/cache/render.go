// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// render.go provides a Valkey-backed cache for rendered templates. When a
// template's combined HTML/SCSS has been assembled once, the serialized
// result is stored under the template name so subsequent by-name requests
// skip the graph fetch and both tree renderers entirely. Any mutation to
// a template or its slides invalidates the entry.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// renderKeyPrefix namespaces render cache keys in Valkey.
	renderKeyPrefix = "render:"

	// DefaultRenderTTL is how long a rendered template stays cached.
	DefaultRenderTTL = 5 * time.Minute
)

// RenderCache manages rendered template payloads in Valkey.
type RenderCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRenderCache creates a render cache backed by the given Valkey client.
func NewRenderCache(client *redis.Client, ttl time.Duration) *RenderCache {
	if ttl == 0 {
		ttl = DefaultRenderTTL
	}
	return &RenderCache{client: client, ttl: ttl}
}

// Get retrieves the cached render payload for a template name.
// A nil cache never hits.
func (rc *RenderCache) Get(ctx context.Context, name string) ([]byte, bool) {
	if rc == nil {
		return nil, false
	}
	val, err := rc.client.Get(ctx, renderKeyPrefix+name).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("render cache get error", "template", name, "error", err)
		return nil, false
	}
	slog.Debug("render cache hit", "template", name)
	return val, true
}

// Set stores a render payload for a template name with the configured TTL.
func (rc *RenderCache) Set(ctx context.Context, name string, payload []byte) {
	if rc == nil {
		return
	}
	if err := rc.client.Set(ctx, renderKeyPrefix+name, payload, rc.ttl).Err(); err != nil {
		slog.Warn("render cache set error", "template", name, "error", err)
	}
}

// Invalidate removes a template's cached render.
func (rc *RenderCache) Invalidate(ctx context.Context, name string) {
	if rc == nil {
		return
	}
	if err := rc.client.Del(ctx, renderKeyPrefix+name).Err(); err != nil {
		slog.Warn("render cache invalidate error", "template", name, "error", err)
	}
	slog.Debug("render cache invalidated", "template", name)
}

// InvalidateAll removes every cached render by scanning for the prefix.
// Used by the bulk copy-variations operation, which can touch any template.
func (rc *RenderCache) InvalidateAll(ctx context.Context) {
	if rc == nil {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, renderKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("render cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("render cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("render cache fully cleared", "deleted", deleted)
	}
}
