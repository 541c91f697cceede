// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"themepress/internal/settings"
)

// BackupType records why a snapshot was taken.
type BackupType string

const (
	BackupManual    BackupType = "manual"
	BackupAutomatic BackupType = "automatic"
	BackupPreUpdate BackupType = "pre_update"
)

// IsValid reports whether the value is one of the known backup types.
func (bt BackupType) IsValid() bool {
	switch bt {
	case BackupManual, BackupAutomatic, BackupPreUpdate:
		return true
	}
	return false
}

// ThemeBackup is an append-only snapshot of a theme's settings and
// compiled CSS. SettingsSnapshot is an independent copy: later mutations
// of the live theme never alter it. Backups are never modified after
// creation and are bulk-deleted with their owning theme.
type ThemeBackup struct {
	ID               uuid.UUID         `json:"id"`
	ThemeID          uuid.UUID         `json:"theme_id"`
	BackupName       string            `json:"backup_name"`
	SettingsSnapshot settings.Document `json:"settings_snapshot"`
	CSSSnapshot      string            `json:"css_snapshot"`
	BackupType       BackupType        `json:"backup_type"`
	Description      string            `json:"description"`
	FileSize         int64             `json:"file_size"`
	CreatedBy        string            `json:"created_by"`
	CreatedAt        time.Time         `json:"created_at"`
}

// HumanSize returns a human-readable size for the serialized snapshot.
func (b *ThemeBackup) HumanSize() string {
	const kb = 1024
	if b.FileSize >= kb {
		return fmt.Sprintf("%.1f KB", float64(b.FileSize)/kb)
	}
	return fmt.Sprintf("%d B", b.FileSize)
}
