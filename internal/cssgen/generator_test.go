// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cssgen

import (
	"strings"
	"testing"

	"themepress/internal/settings"
)

func TestGenerateDeterministic(t *testing.T) {
	doc := settings.Default()
	first := Generate(doc)
	for i := 0; i < 10; i++ {
		if got := Generate(doc); got != first {
			t.Fatalf("run %d produced different output", i)
		}
	}
}

func TestGenerateEmptyDocument(t *testing.T) {
	if got := Generate(settings.Document{}); got != "" {
		t.Errorf("empty document: got %q, want empty string", got)
	}
}

func TestGenerateBlockOrder(t *testing.T) {
	css := Generate(settings.Default())

	markers := []string{
		":root {",
		"body {",
		".container {",
		".btn {",
		"@media (max-width: 768px)",
		"@media (min-width: 769px) and (max-width: 1024px)",
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(css, m)
		if idx < 0 {
			t.Fatalf("missing block %q", m)
		}
		if idx < last {
			t.Errorf("block %q out of order", m)
		}
		last = idx
	}
}

func TestRootBlockPrefixesAndSorting(t *testing.T) {
	css := Generate(settings.Default())

	for _, want := range []string{
		"  --color-primary: #007bff;",
		"  --color-link-hover: #0056b3;",
		"  --font-size-base: 16px;",
		"  --container-max-width: 1200px;",
		"  --grid-columns: 12;",
		"  --padding-medium: 16px;",
		"  --border-radius: 4px;",
		"  --shadow-small: 0 1px 3px rgba(0, 0, 0, 0.12);",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("missing custom property line %q", want)
		}
	}

	// Keys inside a section are alphabetical.
	root := css[:strings.Index(css, "}")]
	if strings.Index(root, "--color-background") > strings.Index(root, "--color-danger") {
		t.Error("color keys not sorted")
	}
}

func TestVarName(t *testing.T) {
	tests := []struct {
		section, key, want string
	}{
		{"colors", "primary", "--color-primary"},
		{"colors", "link_hover", "--color-link-hover"},
		{"typography", "font_size_base", "--font-size-base"},
		{"layout", "container_max_width", "--container-max-width"},
		{"borders", "radius_large", "--border-radius-large"},
		{"shadows", "small", "--shadow-small"},
	}
	for _, tt := range tests {
		if got := VarName(tt.section, tt.key); got != tt.want {
			t.Errorf("VarName(%q, %q): got %q, want %q", tt.section, tt.key, got, tt.want)
		}
	}
}

func TestGridColumnWidths(t *testing.T) {
	css := Generate(settings.Default())

	for _, want := range []string{
		".col-1 {\n  width: 8.3333%;",
		".col-6 {\n  width: 50.0000%;",
		".col-12 {\n  width: 100.0000%;",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("missing grid rule %q", want)
		}
	}
}

func TestGridNonDefaultColumnCount(t *testing.T) {
	doc := settings.Document{
		"layout": map[string]any{"grid_columns": 3},
	}
	css := Generate(doc)

	if !strings.Contains(css, ".col-1 {\n  width: 33.3333%;") {
		t.Error("missing .col-1 at a third")
	}
	if !strings.Contains(css, ".col-3 {\n  width: 100.0000%;") {
		t.Error("missing .col-3 at full width")
	}
	if strings.Contains(css, ".col-4") {
		t.Error("emitted column beyond the configured count")
	}
	// No gutter configured, so no gutter padding.
	if strings.Contains(css, "grid-gutter") {
		t.Error("gutter rules emitted without a gutter setting")
	}
}

func TestSemanticButtonVariants(t *testing.T) {
	css := Generate(settings.Default())

	order := []string{".btn-primary", ".btn-secondary", ".btn-success", ".btn-danger", ".btn-warning", ".btn-info"}
	last := -1
	for _, sel := range order {
		idx := strings.Index(css, sel+" {")
		if idx < 0 {
			t.Fatalf("missing variant %q", sel)
		}
		if idx < last {
			t.Errorf("variant %q out of order", sel)
		}
		last = idx
	}

	if !strings.Contains(css, ".btn-primary {\n  background-color: var(--color-primary);") {
		t.Error("variant does not reference its custom property")
	}
}

func TestSemanticVariantOmittedWhenColorAbsent(t *testing.T) {
	doc := settings.Document{
		"colors": map[string]any{"primary": "#007bff", "text": "#212529"},
	}
	css := Generate(doc)

	if !strings.Contains(css, ".btn-primary") {
		t.Error("expected .btn-primary for present color")
	}
	if strings.Contains(css, ".btn-danger") {
		t.Error(".btn-danger emitted without a danger color")
	}
}

func TestMobileFontScale(t *testing.T) {
	css := Generate(settings.Default())

	// 16px * 0.9 = 14.4px inside the mobile media query.
	mobile := css[strings.Index(css, "@media (max-width: 768px)"):]
	if !strings.Contains(mobile, "font-size: 14.4px;") {
		t.Error("missing scaled mobile font size")
	}
	if !strings.Contains(mobile, "width: 100%;") {
		t.Error("missing full-width column collapse")
	}
	if !strings.Contains(mobile, "padding: 0 16px;") {
		t.Error("missing mobile container padding")
	}
}

func TestMobileFontScaleWholeNumber(t *testing.T) {
	doc := settings.Default()
	doc.Set("typography.font_size_base", "20px")
	css := Generate(doc)
	if !strings.Contains(css, "font-size: 18px;") {
		t.Error("20px base should scale to 18px, not 18.0px")
	}
}

func TestTabletBlock(t *testing.T) {
	css := Generate(settings.Default())
	tablet := css[strings.Index(css, "@media (min-width: 769px)"):]

	if !strings.Contains(tablet, ".col-1, .col-2, .col-3, .col-4, .col-5, .col-6 {") {
		t.Error("tablet block should target the first half of the columns")
	}
	if !strings.Contains(tablet, "width: 50%;") {
		t.Error("tablet columns should be half width")
	}
	if strings.Contains(tablet, ".col-7") {
		t.Error("tablet block targets columns beyond the first half")
	}
}

func TestTabletBlockOmittedForSingleColumn(t *testing.T) {
	doc := settings.Document{"layout": map[string]any{"grid_columns": 1}}
	css := Generate(doc)
	if strings.Contains(css, "min-width: 769px") {
		t.Error("tablet block emitted for a single-column grid")
	}
}

func TestPartialDocumentOmitsRules(t *testing.T) {
	doc := settings.Document{
		"typography": map[string]any{"font_size_base": "16px"},
	}
	css := Generate(doc)

	if !strings.Contains(css, "--font-size-base: 16px;") {
		t.Error("missing typography custom property")
	}
	if !strings.Contains(css, "body {\n  font-size: var(--font-size-base);") {
		t.Error("missing body rule")
	}
	if strings.Contains(css, ".container") {
		t.Error("container emitted without layout settings")
	}
	if strings.Contains(css, "a:hover") {
		t.Error("link hover emitted without colors.link_hover")
	}
	if strings.Contains(css, "h1, h2") {
		t.Error("heading rule emitted without any heading setting")
	}
}

func TestUnknownKeysStillEmitted(t *testing.T) {
	doc := settings.Default()
	doc.Set("colors.accent_extra", "#abcdef")
	css := Generate(doc)
	if !strings.Contains(css, "--color-accent-extra: #abcdef;") {
		t.Error("unknown color key should still produce a custom property")
	}
}

func TestGenerateEndsWithNewline(t *testing.T) {
	css := Generate(settings.Default())
	if !strings.HasSuffix(css, "}\n") {
		t.Error("output should end with a closing brace and newline")
	}
	if strings.Contains(css, "\n\n\n") {
		t.Error("blocks should be separated by exactly one blank line")
	}
}
