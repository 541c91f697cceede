// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package publish pushes the active theme's compiled CSS to its serving
// locations: the Valkey stylesheet cache and, when configured, the public
// S3 object. Both targets are overwritten wholesale on every publication.
package publish

import (
	"context"
	"fmt"
	"log/slog"

	"themepress/internal/cache"
	"themepress/internal/storage"
)

// Publisher writes the published stylesheet to every configured target.
// Either target may be nil; with none configured, publishing is a no-op
// and the stylesheet endpoint falls back to the database.
type Publisher struct {
	stylesheets *cache.StylesheetCache
	storage     *storage.Client
}

// New creates a Publisher over the given targets.
func New(stylesheets *cache.StylesheetCache, storageClient *storage.Client) *Publisher {
	if stylesheets == nil && storageClient == nil {
		slog.Warn("no stylesheet publication target configured, serving from database only")
	}
	return &Publisher{stylesheets: stylesheets, storage: storageClient}
}

// Publish overwrites all configured targets with the given CSS. The first
// failing target aborts: activation must not report success while the
// served stylesheet is stale.
func (p *Publisher) Publish(ctx context.Context, css string) error {
	if p.stylesheets != nil {
		if err := p.stylesheets.Set(ctx, css); err != nil {
			return fmt.Errorf("publish to cache: %w", err)
		}
	}
	if p.storage != nil {
		if err := p.storage.PublishStylesheet(ctx, css); err != nil {
			return fmt.Errorf("publish to storage: %w", err)
		}
	}
	return nil
}
