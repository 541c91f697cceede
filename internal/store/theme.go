// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides PostgreSQL persistence for themes, backups, the
// activity log, and brand assets. Stores hold no business rules; guards
// like "one active theme" and "the default theme is undeletable" are
// enforced by the manager and backed up by schema constraints.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"themepress/internal/models"
	"themepress/internal/settings"
)

// ThemeStore handles all theme database operations.
type ThemeStore struct {
	db *sql.DB
}

// NewThemeStore creates a new ThemeStore.
func NewThemeStore(db *sql.DB) *ThemeStore {
	return &ThemeStore{db: db}
}

// themeColumns lists the columns selected in theme queries.
const themeColumns = `id, name, description, settings, css_generated, is_active,
	is_default, backup_id, version, created_by, updated_by, created_at, updated_at`

// scanTheme scans a theme row from the result set, decoding the settings
// JSONB payload.
func scanTheme(scanner interface{ Scan(...any) error }) (*models.Theme, error) {
	var t models.Theme
	var rawSettings []byte
	err := scanner.Scan(
		&t.ID, &t.Name, &t.Description, &rawSettings, &t.CSSGenerated,
		&t.IsActive, &t.IsDefault, &t.BackupID, &t.Version,
		&t.CreatedBy, &t.UpdatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Settings = make(settings.Document)
	if len(rawSettings) > 0 {
		if err := json.Unmarshal(rawSettings, &t.Settings); err != nil {
			return nil, fmt.Errorf("decode theme settings: %w", err)
		}
	}
	return &t, nil
}

// List returns summaries of all themes, newest first, without the
// settings or CSS payloads.
func (s *ThemeStore) List() ([]models.ThemeSummary, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, is_active, is_default, version, created_at, updated_at
		FROM themes
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	var items []models.ThemeSummary
	for rows.Next() {
		var t models.ThemeSummary
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.IsActive, &t.IsDefault, &t.Version, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan theme summary: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// FindByID retrieves a theme by its UUID. Returns nil if not found.
func (s *ThemeStore) FindByID(id uuid.UUID) (*models.Theme, error) {
	row := s.db.QueryRow(`SELECT `+themeColumns+` FROM themes WHERE id = $1`, id)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find theme by id: %w", err)
	}
	return t, nil
}

// FindByName retrieves a theme by its unique name. Returns nil if not found.
func (s *ThemeStore) FindByName(name string) (*models.Theme, error) {
	row := s.db.QueryRow(`SELECT `+themeColumns+` FROM themes WHERE name = $1`, name)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find theme by name: %w", err)
	}
	return t, nil
}

// FindActive returns the currently active theme, or nil if none is active.
func (s *ThemeStore) FindActive() (*models.Theme, error) {
	row := s.db.QueryRow(`SELECT ` + themeColumns + ` FROM themes WHERE is_active = TRUE LIMIT 1`)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active theme: %w", err)
	}
	return t, nil
}

// Create inserts a new theme and returns it with generated fields filled.
func (s *ThemeStore) Create(t *models.Theme) (*models.Theme, error) {
	rawSettings, err := json.Marshal(t.Settings)
	if err != nil {
		return nil, fmt.Errorf("encode theme settings: %w", err)
	}
	row := s.db.QueryRow(`
		INSERT INTO themes (name, description, settings, css_generated, is_default, version, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING `+themeColumns,
		t.Name, t.Description, rawSettings, t.CSSGenerated, t.IsDefault, t.Version, t.CreatedBy,
	)
	created, err := scanTheme(row)
	if err != nil {
		return nil, fmt.Errorf("create theme: %w", err)
	}
	return created, nil
}

// Update persists a theme's mutable fields: description, settings, CSS,
// backup pointer, version, and updater. updated_at is bumped server-side.
func (s *ThemeStore) Update(t *models.Theme) error {
	rawSettings, err := json.Marshal(t.Settings)
	if err != nil {
		return fmt.Errorf("encode theme settings: %w", err)
	}
	result, err := s.db.Exec(`
		UPDATE themes
		SET description = $1, settings = $2, css_generated = $3, backup_id = $4,
			version = $5, updated_by = $6, updated_at = NOW()
		WHERE id = $7
	`, t.Description, rawSettings, t.CSSGenerated, t.BackupID, t.Version, t.UpdatedBy, t.ID)
	if err != nil {
		return fmt.Errorf("update theme: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("theme not found")
	}
	return nil
}

// SetBackupID points a theme at its most recent backup.
func (s *ThemeStore) SetBackupID(id, backupID uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE themes SET backup_id = $1 WHERE id = $2`, backupID, id)
	if err != nil {
		return fmt.Errorf("set theme backup id: %w", err)
	}
	return nil
}

// Activate sets a theme as active and deactivates all others.
// Uses a transaction so readers never observe two active themes.
func (s *ThemeStore) Activate(id uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE themes SET is_active = FALSE WHERE is_active = TRUE`); err != nil {
		return fmt.Errorf("deactivate themes: %w", err)
	}

	result, err := tx.Exec(`UPDATE themes SET is_active = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("activate theme: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("theme not found")
	}

	return tx.Commit()
}

// Delete removes a theme. The active and default themes are refused at
// the SQL level as a second line of defense behind the manager's guards.
func (s *ThemeStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`
		DELETE FROM themes
		WHERE id = $1 AND is_active = FALSE AND is_default = FALSE
	`, id)
	if err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("theme not found or protected")
	}
	return nil
}
