// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"themepress/internal/models"
)

// AssetStore reads and writes brand asset slot assignments. The files
// themselves live in object storage; only the slot → key mapping is here.
type AssetStore struct {
	db *sql.DB
}

// NewAssetStore creates a new AssetStore.
func NewAssetStore(db *sql.DB) *AssetStore {
	return &AssetStore{db: db}
}

// ActiveBySlot returns the active asset for a slot, or nil if the slot is
// empty.
func (s *AssetStore) ActiveBySlot(slot string) (*models.Asset, error) {
	row := s.db.QueryRow(`
		SELECT id, slot, file_key, content_type, is_active, created_at
		FROM brand_assets
		WHERE slot = $1 AND is_active = TRUE
		LIMIT 1
	`, slot)
	var a models.Asset
	err := row.Scan(&a.ID, &a.Slot, &a.FileKey, &a.ContentType, &a.IsActive, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active asset for slot %s: %w", slot, err)
	}
	return &a, nil
}

// Assign makes the given file the active asset for a slot, deactivating
// any previous assignment in the same transaction.
func (s *AssetStore) Assign(slot, fileKey, contentType string) (*models.Asset, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE brand_assets SET is_active = FALSE WHERE slot = $1 AND is_active = TRUE`, slot); err != nil {
		return nil, fmt.Errorf("deactivate slot %s: %w", slot, err)
	}

	row := tx.QueryRow(`
		INSERT INTO brand_assets (slot, file_key, content_type, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, slot, file_key, content_type, is_active, created_at
	`, slot, fileKey, contentType)
	var a models.Asset
	if err := row.Scan(&a.ID, &a.Slot, &a.FileKey, &a.ContentType, &a.IsActive, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("assign asset to slot %s: %w", slot, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &a, nil
}
