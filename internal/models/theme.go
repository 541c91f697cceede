// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"

	"themepress/internal/settings"
)

// Theme is one stored theme: its settings document plus the stylesheet
// compiled from it. CSSGenerated is kept consistent with Settings after
// every mutation. At most one theme is active at a time; the default
// theme cannot be deleted.
type Theme struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Settings     settings.Document `json:"settings"`
	CSSGenerated string            `json:"css_generated"`
	IsActive     bool              `json:"is_active"`
	IsDefault    bool              `json:"is_default"`
	BackupID     *uuid.UUID        `json:"backup_id,omitempty"`
	Version      int               `json:"version"`
	CreatedBy    string            `json:"created_by"`
	UpdatedBy    string            `json:"updated_by"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ThemeSummary is the lightweight listing shape: identity and flags
// without the settings or CSS payloads.
type ThemeSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	IsDefault   bool      `json:"is_default"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Summary returns the listing shape for a theme.
func (t *Theme) Summary() ThemeSummary {
	return ThemeSummary{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		IsDefault:   t.IsDefault,
		Version:     t.Version,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
