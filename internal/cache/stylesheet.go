// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// stylesheet.go holds the active theme's compiled CSS in Valkey so the
// public stylesheet endpoint serves it without touching PostgreSQL. The
// key is overwritten wholesale on every activation and active restore.
package cache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// stylesheetKey is the well-known location of the active theme's CSS.
// No TTL: the value is only replaced, never expired.
const stylesheetKey = "stylesheet:active"

// StylesheetCache manages the published stylesheet in Valkey.
type StylesheetCache struct {
	client *redis.Client
}

// NewStylesheetCache creates a stylesheet cache backed by the given client.
func NewStylesheetCache(client *redis.Client) *StylesheetCache {
	return &StylesheetCache{client: client}
}

// Get retrieves the published CSS. Returns false on miss or error; a
// cache problem degrades to a database read, it never fails a request.
func (sc *StylesheetCache) Get(ctx context.Context) (string, bool) {
	val, err := sc.client.Get(ctx, stylesheetKey).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("stylesheet cache get error", "error", err)
		return "", false
	}
	return val, true
}

// Set overwrites the published CSS.
func (sc *StylesheetCache) Set(ctx context.Context, css string) error {
	if err := sc.client.Set(ctx, stylesheetKey, css, 0).Err(); err != nil {
		return fmt.Errorf("stylesheet cache set: %w", err)
	}
	return nil
}

// Invalidate drops the published CSS, forcing the next read through to
// the database.
func (sc *StylesheetCache) Invalidate(ctx context.Context) {
	if err := sc.client.Del(ctx, stylesheetKey).Err(); err != nil {
		slog.Warn("stylesheet cache invalidate error", "error", err)
	}
}
