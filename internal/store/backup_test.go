// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"

	"themepress/internal/models"
)

// testBackup builds an unsaved backup for a theme.
func testBackup(theme *models.Theme, name string) *models.ThemeBackup {
	return &models.ThemeBackup{
		ThemeID:          theme.ID,
		BackupName:       name,
		SettingsSnapshot: theme.Settings,
		CSSSnapshot:      theme.CSSGenerated,
		BackupType:       models.BackupManual,
		Description:      "store test backup",
		FileSize:         1024,
		CreatedBy:        "store-test",
	}
}

func TestBackupStoreCreate(t *testing.T) {
	db := testDB(t)
	themes := NewThemeStore(db)
	backups := NewBackupStore(db)

	name := "store-test-backup-create"
	t.Cleanup(func() { cleanThemes(t, db, name) })

	theme, err := themes.Create(testTheme(name))
	if err != nil {
		t.Fatalf("Create theme: %v", err)
	}

	backup, err := backups.Create(testBackup(theme, name+"-2026-01-01-000000"))
	if err != nil {
		t.Fatalf("Create backup: %v", err)
	}
	if backup.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if backup.ThemeID != theme.ID {
		t.Errorf("theme_id: got %s, want %s", backup.ThemeID, theme.ID)
	}
	if backup.BackupType != models.BackupManual {
		t.Errorf("backup_type: got %q, want %q", backup.BackupType, models.BackupManual)
	}
	if backup.FileSize != 1024 {
		t.Errorf("file_size: got %d, want 1024", backup.FileSize)
	}
	if _, ok := backup.SettingsSnapshot.Get("colors.primary"); !ok {
		t.Error("snapshot did not round-trip through JSONB")
	}
}

func TestBackupStoreFindByID(t *testing.T) {
	db := testDB(t)
	themes := NewThemeStore(db)
	backups := NewBackupStore(db)

	name := "store-test-backup-find"
	t.Cleanup(func() { cleanThemes(t, db, name) })

	// Not found.
	backup, err := backups.FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID (not found): %v", err)
	}
	if backup != nil {
		t.Error("expected nil for random UUID")
	}

	theme, err := themes.Create(testTheme(name))
	if err != nil {
		t.Fatalf("Create theme: %v", err)
	}
	created, err := backups.Create(testBackup(theme, name+"-2026-01-01-000000"))
	if err != nil {
		t.Fatalf("Create backup: %v", err)
	}

	backup, err = backups.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if backup == nil {
		t.Fatal("expected backup, got nil")
	}
	if backup.BackupName != created.BackupName {
		t.Errorf("backup_name: got %q, want %q", backup.BackupName, created.BackupName)
	}
}

func TestBackupStoreListByTheme(t *testing.T) {
	db := testDB(t)
	themes := NewThemeStore(db)
	backups := NewBackupStore(db)

	name := "store-test-backup-list"
	t.Cleanup(func() { cleanThemes(t, db, name) })

	theme, err := themes.Create(testTheme(name))
	if err != nil {
		t.Fatalf("Create theme: %v", err)
	}
	first, err := backups.Create(testBackup(theme, name+"-2026-01-01-000000"))
	if err != nil {
		t.Fatalf("Create first backup: %v", err)
	}
	second, err := backups.Create(testBackup(theme, name+"-2026-01-02-000000"))
	if err != nil {
		t.Fatalf("Create second backup: %v", err)
	}

	list, err := backups.ListByTheme(theme.ID)
	if err != nil {
		t.Fatalf("ListByTheme: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("backup count: got %d, want 2", len(list))
	}
	// Newest first.
	if list[0].ID != second.ID {
		t.Errorf("first entry: got %s, want newest %s", list[0].ID, second.ID)
	}
	if list[1].ID != first.ID {
		t.Errorf("second entry: got %s, want oldest %s", list[1].ID, first.ID)
	}
}

func TestBackupStoreDeleteByTheme(t *testing.T) {
	db := testDB(t)
	themes := NewThemeStore(db)
	backups := NewBackupStore(db)

	name := "store-test-backup-deleteby"
	t.Cleanup(func() { cleanThemes(t, db, name) })

	theme, err := themes.Create(testTheme(name))
	if err != nil {
		t.Fatalf("Create theme: %v", err)
	}
	if _, err := backups.Create(testBackup(theme, name+"-2026-01-01-000000")); err != nil {
		t.Fatalf("Create backup: %v", err)
	}

	if err := backups.DeleteByTheme(theme.ID); err != nil {
		t.Fatalf("DeleteByTheme: %v", err)
	}

	count, err := backups.CountByTheme(theme.ID)
	if err != nil {
		t.Fatalf("CountByTheme: %v", err)
	}
	if count != 0 {
		t.Errorf("backup count after delete: got %d, want 0", count)
	}
}

func TestBackupStoreCascadeWithTheme(t *testing.T) {
	db := testDB(t)
	themes := NewThemeStore(db)
	backups := NewBackupStore(db)

	name := "store-test-backup-cascade"
	t.Cleanup(func() { cleanThemes(t, db, name) })

	theme, err := themes.Create(testTheme(name))
	if err != nil {
		t.Fatalf("Create theme: %v", err)
	}
	created, err := backups.Create(testBackup(theme, name+"-2026-01-01-000000"))
	if err != nil {
		t.Fatalf("Create backup: %v", err)
	}

	if err := themes.Delete(theme.ID); err != nil {
		t.Fatalf("Delete theme: %v", err)
	}

	backup, err := backups.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if backup != nil {
		t.Error("expected backup removed by ON DELETE CASCADE")
	}
}
