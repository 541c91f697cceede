// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"themepress/internal/models"
)

// ActivityStore appends to and reads the activity log.
type ActivityStore struct {
	db *sql.DB
}

// NewActivityStore creates a new ActivityStore.
func NewActivityStore(db *sql.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

// Insert appends one activity entry.
func (s *ActivityStore) Insert(e *models.ActivityEntry) error {
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}
	rawDetails, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode activity details: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO activity_log (action, resource_type, resource_id, details)
		VALUES ($1, $2, $3, $4)
	`, e.Action, e.ResourceType, e.ResourceID, rawDetails)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListRecent returns the latest entries, newest first.
func (s *ActivityStore) ListRecent(limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, action, resource_type, resource_id, details, created_at
		FROM activity_log
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var entries []models.ActivityEntry
	for rows.Next() {
		var e models.ActivityEntry
		var rawDetails []byte
		if err := rows.Scan(&e.ID, &e.Action, &e.ResourceType, &e.ResourceID, &rawDetails, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		if len(rawDetails) > 0 {
			if err := json.Unmarshal(rawDetails, &e.Details); err != nil {
				return nil, fmt.Errorf("decode activity details: %w", err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
