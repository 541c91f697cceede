// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package validate

import (
	"strings"
	"testing"

	"themepress/internal/settings"
)

func TestSettingsDefaultsAreClean(t *testing.T) {
	res := Settings(settings.Default())
	if !res.Valid {
		t.Fatalf("defaults failed validation: %s", res.Error)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("defaults produced warnings: %v", res.Warnings)
	}
}

func TestSettingsLayoutThresholds(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		value     any
		wantValid bool
		wantWarn  bool
	}{
		{"container too narrow", "layout.container_max_width", "300px", false, false},
		{"container at minimum", "layout.container_max_width", "320px", true, false},
		{"container very wide", "layout.container_max_width", "1600px", true, true},
		{"container unparseable", "layout.container_max_width", "wide", true, false},
		{"grid columns zero", "layout.grid_columns", 0, false, false},
		{"grid columns over max", "layout.grid_columns", 30, false, false},
		{"grid columns many", "layout.grid_columns", 16, true, true},
		{"grid columns not numeric", "layout.grid_columns", "lots", false, false},
		{"header tall", "layout.header_height", "150px", true, true},
		{"header short", "layout.header_height", "30px", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := settings.Default()
			doc.Set(tt.path, tt.value)
			res := Settings(doc)
			if res.Valid != tt.wantValid {
				t.Errorf("valid: got %v (error %q), want %v", res.Valid, res.Error, tt.wantValid)
			}
			if tt.wantWarn && len(res.Warnings) == 0 {
				t.Error("expected a warning, got none")
			}
		})
	}
}

func TestSettingsTypography(t *testing.T) {
	doc := settings.Default()
	doc.Set("typography.font_size_base", "12px")
	res := Settings(doc)
	if res.Valid {
		t.Error("12px base font should block")
	}
	if !strings.Contains(res.Error, "font_size_base") {
		t.Errorf("error does not name the property: %q", res.Error)
	}

	doc = settings.Default()
	doc.Set("typography.font_size_base", "28px")
	res = Settings(doc)
	if !res.Valid {
		t.Errorf("28px base font should only warn: %s", res.Error)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected large-font warning")
	}

	doc = settings.Default()
	doc.Set("typography.line_height_base", "1.0")
	res = Settings(doc)
	if !res.Valid || len(res.Warnings) == 0 {
		t.Error("tight line height should warn, not block")
	}

	// Non-numeric line heights are accepted silently.
	doc = settings.Default()
	doc.Set("typography.line_height_base", "1.5em")
	res = Settings(doc)
	if !res.Valid || len(res.Warnings) != 0 {
		t.Errorf("em line height should pass clean: %v %v", res.Error, res.Warnings)
	}

	doc = settings.Default()
	doc.Set("typography.font_family_primary", "'My Custom Font'")
	res = Settings(doc)
	if !res.Valid {
		t.Errorf("missing fallback should not block: %s", res.Error)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected fallback warning")
	}
}

func TestSettingsSpacingWarnsOnly(t *testing.T) {
	doc := settings.Default()
	doc.Set("spacing.padding_large", "60px")
	doc.Set("spacing.margin_large", "80px")
	doc.Set("spacing.padding_small", "2px")
	res := Settings(doc)
	if !res.Valid {
		t.Fatalf("spacing extremes must never block a bulk save: %s", res.Error)
	}
	if len(res.Warnings) != 3 {
		t.Errorf("warnings: got %d (%v), want 3", len(res.Warnings), res.Warnings)
	}
}

func TestSettingsColorErrors(t *testing.T) {
	doc := settings.Default()
	doc.Set("colors.primary", "#zzz")
	doc.Set("colors.info", 42)
	res := Settings(doc)
	if res.Valid {
		t.Fatal("invalid colors must block")
	}
	if !strings.Contains(res.Error, "colors.info") || !strings.Contains(res.Error, "colors.primary") {
		t.Errorf("errors should name both bad keys: %q", res.Error)
	}
	if !strings.Contains(res.Error, "; ") {
		t.Errorf("multiple errors should be joined with semicolons: %q", res.Error)
	}
}

func TestSettingsContrast(t *testing.T) {
	doc := settings.Default()
	doc.Set("colors.background", "#ffffff")
	doc.Set("colors.text", "white")
	res := Settings(doc)
	if res.Valid {
		t.Error("white on white must block")
	}

	doc = settings.Default()
	doc.Set("colors.background", "#ffffff")
	doc.Set("colors.link", "#fefefe")
	res = Settings(doc)
	if !res.Valid {
		t.Errorf("invisible link should only warn: %s", res.Error)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected link contrast warning")
	}

	// Case differences do not matter.
	doc = settings.Default()
	doc.Set("colors.background", "#FFFFFF")
	doc.Set("colors.text", "#ffffff")
	if res := Settings(doc); res.Valid {
		t.Error("identical colors in different case must block")
	}
}

func TestIsColor(t *testing.T) {
	valid := []string{
		"#fff", "#FFFFFF", "#0a1B2c",
		"rgb(0, 0, 0)", "rgba(255, 255, 255, 0.5)",
		"hsl(210, 50%, 40%)", "hsla(210, 50%, 40%, 0.8)",
		"white", "Transparent", " navy ",
	}
	for _, v := range valid {
		if !IsColor(v) {
			t.Errorf("IsColor(%q) = false, want true", v)
		}
	}

	invalid := []string{
		"", "#ff", "#ffff", "#gggggg", "rgb(0,0)", "blurple",
		"url(javascript:alert(1))", "calc(1px)",
	}
	for _, v := range invalid {
		if IsColor(v) {
			t.Errorf("IsColor(%q) = true, want false", v)
		}
	}
}

func TestSettingSingleProperty(t *testing.T) {
	doc := settings.Default()

	tests := []struct {
		name  string
		path  string
		value any
		valid bool
	}{
		{"container ok", "layout.container_max_width", "1000px", true},
		{"container too narrow", "layout.container_max_width", "200px", false},
		{"grid ok", "layout.grid_columns", 6, true},
		{"grid out of range", "layout.grid_columns", 25, false},
		{"grid not numeric", "layout.grid_columns", "many", false},
		{"font ok", "typography.font_size_base", "16px", true},
		{"font too small", "typography.font_size_base", "10px", false},
		{"padding ok", "spacing.padding_medium", "16px", true},
		{"padding negative", "spacing.padding_medium", "-4px", false},
		{"padding over limit", "spacing.padding_medium", "120px", false},
		{"margin over limit", "spacing.margin_medium", "250px", false},
		{"margin under limit", "spacing.margin_medium", "150px", true},
		{"color ok", "colors.primary", "#ff0000", true},
		{"color bad", "colors.primary", "#xyz", false},
		{"color not a string", "colors.primary", 7, false},
		{"borders pass through", "borders.radius", "anything", true},
		{"shadows pass through", "shadows.small", 3, true},
		{"unknown section passes", "animations.duration", "-5s", true},
		{"bare path passes", "colors", "#fff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Setting(tt.path, tt.value, doc)
			if res.Valid != tt.valid {
				t.Errorf("Setting(%q, %v): valid=%v (error %q), want %v", tt.path, tt.value, res.Valid, res.Error, tt.valid)
			}
		})
	}
}

func TestSettingStricterThanDocument(t *testing.T) {
	// 120px padding blocks a single edit but only warns in a bulk document
	// check.
	res := Setting("spacing.padding_medium", "120px", settings.Default())
	if res.Valid {
		t.Error("single edit over the padding limit must block")
	}

	doc := settings.Default()
	doc.Set("spacing.padding_medium", "120px")
	if res := Settings(doc); !res.Valid {
		t.Errorf("bulk document check should warn instead: %s", res.Error)
	}
}
