// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme orchestrates the theme lifecycle: creation, setting
// mutations guarded by automatic backups and validation, exclusive
// activation with stylesheet publication, backup/restore, and
// non-destructive preview. Stores persist, the generator compiles, the
// validator judges; this package owns the protocol between them.
package theme

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"themepress/internal/audit"
	"themepress/internal/cssgen"
	"themepress/internal/models"
	"themepress/internal/settings"
	"themepress/internal/slug"
	"themepress/internal/validate"
)

// ThemeStore is the persistence surface the manager needs for themes.
// Find methods return (nil, nil) when the record is absent.
type ThemeStore interface {
	List() ([]models.ThemeSummary, error)
	FindByID(id uuid.UUID) (*models.Theme, error)
	FindByName(name string) (*models.Theme, error)
	FindActive() (*models.Theme, error)
	Create(t *models.Theme) (*models.Theme, error)
	Update(t *models.Theme) error
	SetBackupID(id, backupID uuid.UUID) error
	Activate(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

// BackupStore is the persistence surface for theme backups.
type BackupStore interface {
	Create(b *models.ThemeBackup) (*models.ThemeBackup, error)
	FindByID(id uuid.UUID) (*models.ThemeBackup, error)
	ListByTheme(themeID uuid.UUID) ([]*models.ThemeBackup, error)
	DeleteByTheme(themeID uuid.UUID) error
}

// Publisher pushes compiled CSS to the serving locations.
type Publisher interface {
	Publish(ctx context.Context, css string) error
}

// responsiveSensitive lists the setting paths whose mutation must pass
// single-property validation before persisting. The list is fixed; paths
// outside it skip the gate.
var responsiveSensitive = map[string]bool{
	"layout.container_max_width": true,
	"layout.grid_columns":        true,
	"layout.grid_gutter":         true,
	"typography.font_size_base":  true,
	"spacing.padding_medium":     true,
	"spacing.margin_medium":      true,
}

// requiredSections must all be present for a settings document to pass
// the composite validation.
var requiredSections = []string{
	settings.SectionColors,
	settings.SectionTypography,
	settings.SectionLayout,
	settings.SectionSpacing,
}

// fontSizeUnits are the accepted suffixes for typography size values.
var fontSizeUnits = []string{"px", "rem", "em"}

// Manager owns the theme and backup lifecycle. Mutating operations are
// serialized by an internal mutex: the stores assume no concurrent
// read-modify-write of the same theme, and activation must be atomic with
// its publication. Preview takes no lock and is safe to run concurrently.
type Manager struct {
	mu       sync.Mutex
	themes   ThemeStore
	backups  BackupStore
	recorder *audit.Recorder
	pub      Publisher

	// now is replaceable in tests for stable backup names.
	now func() time.Time
}

// NewManager wires a manager over its collaborators. recorder and pub may
// be nil: auditing is best-effort and publication degrades to
// database-only serving.
func NewManager(themes ThemeStore, backups BackupStore, recorder *audit.Recorder, pub Publisher) *Manager {
	return &Manager{
		themes:   themes,
		backups:  backups,
		recorder: recorder,
		pub:      pub,
		now:      time.Now,
	}
}

// Create stores a new theme with compiled CSS. The theme is not activated
// by this call. A nil doc uses the built-in defaults; a duplicate name is
// a conflict.
func (m *Manager) Create(ctx context.Context, name, description string, doc settings.Document, actor string) (*models.Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Reasons: []string{"theme name is required"}}
	}

	existing, err := m.themes.FindByName(name)
	if err != nil {
		return nil, fmt.Errorf("create theme: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("theme name %q already exists: %w", name, ErrConflict)
	}

	if doc == nil {
		doc = settings.Default()
	} else {
		doc = doc.Clone()
	}

	css, err := compile(doc)
	if err != nil {
		return nil, fmt.Errorf("create theme: %w", err)
	}

	created, err := m.themes.Create(&models.Theme{
		Name:         name,
		Description:  description,
		Settings:     doc,
		CSSGenerated: css,
		Version:      1,
		CreatedBy:    actor,
		UpdatedBy:    actor,
	})
	if err != nil {
		return nil, fmt.Errorf("create theme: %w", err)
	}

	m.recorder.Record("theme.created", "theme", created.ID.String(), map[string]any{
		"name": created.Name,
	})
	return created, nil
}

// Get returns a theme by ID.
func (m *Manager) Get(id uuid.UUID) (*models.Theme, error) {
	t, err := m.themes.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("get theme: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("theme %s: %w", id, ErrNotFound)
	}
	return t, nil
}

// List returns lightweight summaries of all themes.
func (m *Manager) List() ([]models.ThemeSummary, error) {
	return m.themes.List()
}

// UpdateSetting applies one path-level settings change. An automatic
// backup is taken unconditionally before anything else; if the path is
// responsive-sensitive and the value fails single-property validation the
// whole mutation is discarded (the backup is kept — it is cheap and
// audit-useful). On success the CSS cache is regenerated and the theme
// persisted.
func (m *Manager) UpdateSetting(ctx context.Context, id uuid.UUID, path string, value any, actor string) (*models.Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.themes.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("update setting: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("theme %s: %w", id, ErrNotFound)
	}

	backup, err := m.takeBackup(t, models.BackupAutomatic, "before update of "+path, actor)
	if err != nil {
		return nil, fmt.Errorf("update setting: %w", err)
	}

	if responsiveSensitive[path] {
		res := validate.Setting(path, value, t.Settings)
		if !res.Valid {
			return nil, &ValidationError{Reasons: []string{res.Error}, Warnings: res.Warnings}
		}
	}

	oldValue, _ := t.Settings.Get(path)
	t.Settings.Set(path, value)

	css, err := compile(t.Settings)
	if err != nil {
		return nil, fmt.Errorf("update setting %s: %w", path, err)
	}

	t.CSSGenerated = css
	t.BackupID = &backup.ID
	t.Version++
	t.UpdatedBy = actor
	if err := m.themes.Update(t); err != nil {
		return nil, fmt.Errorf("update setting: %w", err)
	}

	m.recorder.Record("theme.setting_updated", "theme", t.ID.String(), map[string]any{
		"path":      path,
		"old_value": oldValue,
		"new_value": value,
		"backup_id": backup.ID.String(),
	})
	return t, nil
}

// Apply activates a theme exclusively: the previously active theme (if
// any) is deactivated in the same transaction, and the target's compiled
// CSS is published to the serving locations.
func (m *Manager) Apply(ctx context.Context, id uuid.UUID, actor string) (*models.Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.themes.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("apply theme: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("theme %s: %w", id, ErrNotFound)
	}

	previous, err := m.themes.FindActive()
	if err != nil {
		return nil, fmt.Errorf("apply theme: %w", err)
	}

	if err := m.themes.Activate(id); err != nil {
		return nil, fmt.Errorf("apply theme: %w", err)
	}
	t.IsActive = true

	if err := m.publish(ctx, t.CSSGenerated); err != nil {
		return nil, fmt.Errorf("apply theme: %w", err)
	}

	details := map[string]any{"name": t.Name, "actor": actor}
	if previous != nil && previous.ID != t.ID {
		details["previous_active"] = previous.ID.String()
	}
	m.recorder.Record("theme.applied", "theme", t.ID.String(), details)
	return t, nil
}

// Backup takes a snapshot of a theme's current settings and CSS and
// points the theme's backup_id at it.
func (m *Manager) Backup(ctx context.Context, id uuid.UUID, backupType models.BackupType, description, actor string) (*models.ThemeBackup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !backupType.IsValid() {
		return nil, &ValidationError{Reasons: []string{fmt.Sprintf("unknown backup type %q", backupType)}}
	}

	t, err := m.themes.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("backup theme: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("theme %s: %w", id, ErrNotFound)
	}

	backup, err := m.takeBackup(t, backupType, description, actor)
	if err != nil {
		return nil, fmt.Errorf("backup theme: %w", err)
	}
	if err := m.themes.SetBackupID(t.ID, backup.ID); err != nil {
		return nil, fmt.Errorf("backup theme: %w", err)
	}

	m.recorder.Record("theme.backed_up", "theme_backup", backup.ID.String(), map[string]any{
		"theme_id":    t.ID.String(),
		"backup_name": backup.BackupName,
		"backup_type": string(backupType),
	})
	return backup, nil
}

// ListBackups returns all backups for a theme, newest first.
func (m *Manager) ListBackups(id uuid.UUID) ([]*models.ThemeBackup, error) {
	t, err := m.themes.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("theme %s: %w", id, ErrNotFound)
	}
	return m.backups.ListByTheme(id)
}

// Restore overwrites a theme's settings and CSS with a backup's snapshot.
// The theme's current state is snapshotted first, so a restore is itself
// undoable. An active theme's stylesheet is re-published.
func (m *Manager) Restore(ctx context.Context, backupID uuid.UUID, actor string) (*models.Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	backup, err := m.backups.FindByID(backupID)
	if err != nil {
		return nil, fmt.Errorf("restore backup: %w", err)
	}
	if backup == nil {
		return nil, fmt.Errorf("backup %s: %w", backupID, ErrNotFound)
	}

	t, err := m.themes.FindByID(backup.ThemeID)
	if err != nil {
		return nil, fmt.Errorf("restore backup: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("theme %s: %w", backup.ThemeID, ErrNotFound)
	}

	undo, err := m.takeBackup(t, models.BackupAutomatic, "before restore of "+backup.BackupName, actor)
	if err != nil {
		return nil, fmt.Errorf("restore backup: %w", err)
	}

	t.Settings = backup.SettingsSnapshot.Clone()
	t.CSSGenerated = backup.CSSSnapshot
	t.BackupID = &undo.ID
	t.Version++
	t.UpdatedBy = actor
	if err := m.themes.Update(t); err != nil {
		return nil, fmt.Errorf("restore backup: %w", err)
	}

	if t.IsActive {
		if err := m.publish(ctx, t.CSSGenerated); err != nil {
			return nil, fmt.Errorf("restore backup: %w", err)
		}
	}

	m.recorder.Record("theme.restored", "theme", t.ID.String(), map[string]any{
		"backup_id":   backup.ID.String(),
		"backup_name": backup.BackupName,
		"undo_backup": undo.ID.String(),
	})
	return t, nil
}

// Preview compiles CSS from a copy of the theme's settings merged with
// the given overrides. Nothing is persisted, the stored theme is never
// touched, and no audit record is written.
func (m *Manager) Preview(id uuid.UUID, overrides settings.Document) (string, error) {
	t, err := m.themes.FindByID(id)
	if err != nil {
		return "", fmt.Errorf("preview theme: %w", err)
	}
	if t == nil {
		return "", fmt.Errorf("theme %s: %w", id, ErrNotFound)
	}

	merged := t.Settings.Clone()
	if len(overrides) > 0 {
		settings.Merge(merged, overrides)
	}
	return cssgen.Generate(merged), nil
}

// SettingsReport is the outcome of the composite settings validation:
// ordered blocking errors plus non-blocking advisories.
type SettingsReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ValidateSettings runs the composite document check: required sections,
// per-section format rules, then the responsive/accessibility validator.
// Error ordering is fixed: missing sections, color formats, typography
// units, then the validator's combined message.
func (m *Manager) ValidateSettings(doc settings.Document) SettingsReport {
	var errs []string

	for _, section := range requiredSections {
		if doc.Section(section) == nil {
			errs = append(errs, fmt.Sprintf("missing required section: %s", section))
		}
	}

	errs = append(errs, colorFormatErrors(doc)...)
	errs = append(errs, fontSizeUnitErrors(doc)...)

	res := validate.Settings(doc)
	if !res.Valid {
		errs = append(errs, res.Error)
	}

	return SettingsReport{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: res.Warnings,
	}
}

// Delete removes a theme and all of its backups. Active and default
// themes are protected.
func (m *Manager) Delete(ctx context.Context, id uuid.UUID, actor string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.themes.FindByID(id)
	if err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	if t == nil {
		return fmt.Errorf("theme %s: %w", id, ErrNotFound)
	}
	if t.IsActive {
		return fmt.Errorf("theme %q is active: %w", t.Name, ErrConflict)
	}
	if t.IsDefault {
		return fmt.Errorf("theme %q is the default theme: %w", t.Name, ErrConflict)
	}

	if err := m.backups.DeleteByTheme(id); err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	if err := m.themes.Delete(id); err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}

	m.recorder.Record("theme.deleted", "theme", id.String(), map[string]any{
		"name":  t.Name,
		"actor": actor,
	})
	return nil
}

// ActiveCSS returns the compiled stylesheet of the active theme.
func (m *Manager) ActiveCSS() (string, error) {
	t, err := m.themes.FindActive()
	if err != nil {
		return "", fmt.Errorf("active css: %w", err)
	}
	if t == nil {
		return "", fmt.Errorf("no active theme: %w", ErrNotFound)
	}
	return t.CSSGenerated, nil
}

// takeBackup persists an independent snapshot of the theme's current
// settings and CSS. The snapshot is a deep copy: later mutations of the
// live settings never reach it.
func (m *Manager) takeBackup(t *models.Theme, backupType models.BackupType, description, actor string) (*models.ThemeBackup, error) {
	snapshot := t.Settings.Clone()
	serialized, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("serialize snapshot: %w", err)
	}

	backup, err := m.backups.Create(&models.ThemeBackup{
		ThemeID:          t.ID,
		BackupName:       slug.Timestamped(t.Name, m.now()),
		SettingsSnapshot: snapshot,
		CSSSnapshot:      t.CSSGenerated,
		BackupType:       backupType,
		Description:      description,
		FileSize:         int64(len(serialized)),
		CreatedBy:        actor,
	})
	if err != nil {
		return nil, fmt.Errorf("take backup: %w", err)
	}
	return backup, nil
}

// compile generates CSS and guards against structurally broken output so
// a generator defect can never corrupt the cached stylesheet.
func compile(doc settings.Document) (string, error) {
	css := cssgen.Generate(doc)
	if css != "" && !cssgen.ValidateOutput(css) {
		return "", ErrGeneration
	}
	return css, nil
}

// publish pushes CSS to the serving locations when a publisher is wired.
func (m *Manager) publish(ctx context.Context, css string) error {
	if m.pub == nil {
		return nil
	}
	return m.pub.Publish(ctx, css)
}

// colorFormatErrors checks every value in the colors section.
func colorFormatErrors(doc settings.Document) []string {
	section := doc.Section(settings.SectionColors)
	if section == nil {
		return nil
	}
	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []string
	for _, k := range keys {
		s, isStr := section[k].(string)
		if !isStr || !validate.IsColor(s) {
			errs = append(errs, fmt.Sprintf("colors.%s is not a valid color literal", k))
		}
	}
	return errs
}

// fontSizeUnitErrors requires px/rem/em units on font size values.
func fontSizeUnitErrors(doc settings.Document) []string {
	section := doc.Section(settings.SectionTypography)
	if section == nil {
		return nil
	}
	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []string
	for _, k := range keys {
		if !strings.HasPrefix(k, "font_size_") {
			continue
		}
		s, isStr := section[k].(string)
		if !isStr || !hasFontSizeUnit(s) {
			errs = append(errs, fmt.Sprintf("typography.%s must use a px, rem, or em unit", k))
		}
	}
	return errs
}

func hasFontSizeUnit(v string) bool {
	s := strings.TrimSpace(strings.ToLower(v))
	for _, unit := range fontSizeUnits {
		if strings.HasSuffix(s, unit) {
			return true
		}
	}
	return false
}
