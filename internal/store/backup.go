// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"themepress/internal/models"
	"themepress/internal/settings"
)

// backupColumns lists all columns for theme_backups SELECTs.
const backupColumns = `id, theme_id, backup_name, settings_snapshot, css_snapshot,
	backup_type, description, file_size, created_by, created_at`

// BackupStore provides access to theme backup snapshots. Backups are
// append-only: there is no update path.
type BackupStore struct {
	db *sql.DB
}

// NewBackupStore creates a new BackupStore backed by the given database.
func NewBackupStore(db *sql.DB) *BackupStore {
	return &BackupStore{db: db}
}

// scanBackup scans a single theme_backups row.
func scanBackup(scanner interface{ Scan(...any) error }) (*models.ThemeBackup, error) {
	var b models.ThemeBackup
	var rawSnapshot []byte
	err := scanner.Scan(
		&b.ID, &b.ThemeID, &b.BackupName, &rawSnapshot, &b.CSSSnapshot,
		&b.BackupType, &b.Description, &b.FileSize, &b.CreatedBy, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.SettingsSnapshot = make(settings.Document)
	if len(rawSnapshot) > 0 {
		if err := json.Unmarshal(rawSnapshot, &b.SettingsSnapshot); err != nil {
			return nil, fmt.Errorf("decode backup snapshot: %w", err)
		}
	}
	return &b, nil
}

// Create inserts a new backup and returns it with the generated ID.
func (s *BackupStore) Create(b *models.ThemeBackup) (*models.ThemeBackup, error) {
	rawSnapshot, err := json.Marshal(b.SettingsSnapshot)
	if err != nil {
		return nil, fmt.Errorf("encode backup snapshot: %w", err)
	}
	row := s.db.QueryRow(`
		INSERT INTO theme_backups (theme_id, backup_name, settings_snapshot, css_snapshot,
			backup_type, description, file_size, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+backupColumns,
		b.ThemeID, b.BackupName, rawSnapshot, b.CSSSnapshot,
		b.BackupType, b.Description, b.FileSize, b.CreatedBy,
	)
	created, err := scanBackup(row)
	if err != nil {
		return nil, fmt.Errorf("create backup: %w", err)
	}
	return created, nil
}

// FindByID returns a single backup by its ID. Returns nil if not found.
func (s *BackupStore) FindByID(id uuid.UUID) (*models.ThemeBackup, error) {
	row := s.db.QueryRow(`SELECT `+backupColumns+` FROM theme_backups WHERE id = $1`, id)
	b, err := scanBackup(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find backup by id: %w", err)
	}
	return b, nil
}

// ListByTheme returns all backups for a theme, newest first.
func (s *BackupStore) ListByTheme(themeID uuid.UUID) ([]*models.ThemeBackup, error) {
	rows, err := s.db.Query(`
		SELECT `+backupColumns+`
		FROM theme_backups
		WHERE theme_id = $1
		ORDER BY created_at DESC
	`, themeID)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	defer rows.Close()

	var backups []*models.ThemeBackup
	for rows.Next() {
		b, err := scanBackup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan backup: %w", err)
		}
		backups = append(backups, b)
	}
	return backups, rows.Err()
}

// DeleteByTheme removes every backup owned by a theme. Called when the
// theme itself is deleted.
func (s *BackupStore) DeleteByTheme(themeID uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM theme_backups WHERE theme_id = $1`, themeID)
	if err != nil {
		return fmt.Errorf("delete backups by theme: %w", err)
	}
	return nil
}

// CountByTheme returns the number of backups held for a theme.
func (s *BackupStore) CountByTheme(themeID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM theme_backups WHERE theme_id = $1`, themeID).Scan(&count)
	return count, err
}
