// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Known brand asset slots.
const (
	AssetSlotLogo    = "logo"
	AssetSlotFavicon = "favicon"
)

// Asset is a brand asset (logo, favicon) stored in object storage and
// referenced by slot. At most one asset per slot is active; upload and
// processing happen outside this system.
type Asset struct {
	ID          uuid.UUID `json:"id"`
	Slot        string    `json:"slot"`
	FileKey     string    `json:"file_key"`
	ContentType string    `json:"content_type"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
