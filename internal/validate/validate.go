// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package validate checks theme settings against responsive-design and
// accessibility rules. Rules are advisory where possible: only thresholds
// that break mobile usability or accessibility block a save; everything
// else surfaces as warnings, which are data and never stop a write.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"themepress/internal/settings"
)

// Result is a validation verdict: a blocking error (Valid=false) plus any
// number of non-blocking advisories.
type Result struct {
	Valid    bool     `json:"valid"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Thresholds for the responsive and accessibility rules. Values below a
// *Min or above a *Max either block or warn as documented per rule.
const (
	containerMinWidth  = 320
	containerWideWidth = 1400
	gridColumnsMin     = 1
	gridColumnsMax     = 24
	gridColumnsMany    = 12
	headerMinHeight    = 40
	headerMaxHeight    = 120
	fontSizeMin        = 14
	fontSizeLarge      = 24
	lineHeightMin      = 1.2
	lineHeightMax      = 2.0
	paddingMin         = 4
	paddingLarge       = 48
	paddingHardMax     = 100
	marginLarge        = 64
	marginHardMax      = 200
)

var (
	hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbColorRe = regexp.MustCompile(`^rgba?\(\s*[\d.]+%?\s*,\s*[\d.]+%?\s*,\s*[\d.]+%?\s*(?:,\s*[\d.]+\s*)?\)$`)
	hslColorRe = regexp.MustCompile(`^hsla?\(\s*[\d.]+\s*,\s*[\d.]+%\s*,\s*[\d.]+%\s*(?:,\s*[\d.]+\s*)?\)$`)
)

// namedColors is the fixed set of accepted CSS color keywords.
var namedColors = map[string]bool{
	"transparent": true, "white": true, "black": true, "red": true,
	"green": true, "blue": true, "yellow": true, "orange": true,
	"purple": true, "pink": true, "gray": true, "grey": true,
	"silver": true, "navy": true, "teal": true, "maroon": true,
	"olive": true, "aqua": true, "fuchsia": true, "lime": true,
}

// fontFallbacks are the recognized generic/ubiquitous font tokens; a
// primary font stack should contain at least one of them.
var fontFallbacks = []string{"sans-serif", "serif", "monospace", "system-ui", "arial", "helvetica"}

// similarPairs is a short denylist of color literal pairs that are
// distinct strings but visually identical or near-identical. The contrast
// check is intentionally a coarse heuristic, not WCAG luminance math.
var similarPairs = [][2]string{
	{"#ffffff", "#fff"},
	{"#ffffff", "white"},
	{"#fff", "white"},
	{"#000000", "#000"},
	{"#000000", "black"},
	{"#000", "black"},
	{"#ffffff", "#fefefe"},
	{"#000000", "#111111"},
	{"#ffffff", "#f8f9fa"},
}

// Settings validates a whole document. All rules are evaluated; blocking
// errors from different sections are joined with "; ".
func Settings(doc settings.Document) Result {
	var errs []string
	var warns []string

	checkLayout(doc, &errs, &warns)
	checkTypography(doc, &errs, &warns)
	checkSpacing(doc, &warns)
	checkColors(doc, &errs)
	checkContrast(doc, &errs, &warns)

	res := Result{Valid: len(errs) == 0, Warnings: warns}
	if len(errs) > 0 {
		res.Error = strings.Join(errs, "; ")
	}
	return res
}

// Setting validates a single path/value pair before it is written. It
// dispatches on the first two path segments and is deliberately stricter
// than the whole-document pass for spacing: a bad single edit is cheap to
// reject, a bulk save has already been reviewed. Unrecognized properties
// pass.
func Setting(path string, value any, doc settings.Document) Result {
	parts := strings.SplitN(path, ".", 3)
	if len(parts) < 2 {
		return Result{Valid: true}
	}
	section, key := parts[0], parts[1]

	switch section {
	case settings.SectionLayout:
		return checkLayoutSetting(key, value)
	case settings.SectionTypography:
		return checkTypographySetting(key, value)
	case settings.SectionSpacing:
		return checkSpacingSetting(key, value)
	case settings.SectionColors:
		if s, ok := value.(string); !ok || !IsColor(s) {
			return fail("colors.%s has invalid color value %q", key, fmt.Sprintf("%v", value))
		}
		return Result{Valid: true}
	case settings.SectionBorders, settings.SectionShadows:
		return Result{Valid: true}
	default:
		return Result{Valid: true}
	}
}

func fail(format string, args ...any) Result {
	return Result{Valid: false, Error: fmt.Sprintf(format, args...)}
}

// IsColor reports whether the value is an accepted color literal: 3/6
// digit hex, rgb()/rgba(), hsl()/hsla(), or a named color.
func IsColor(v string) bool {
	s := strings.ToLower(strings.TrimSpace(v))
	return hexColorRe.MatchString(s) || rgbColorRe.MatchString(s) ||
		hslColorRe.MatchString(s) || namedColors[s]
}

func checkLayout(doc settings.Document, errs, warns *[]string) {
	if v, ok := doc.Get("layout.container_max_width"); ok {
		if px, ok := settings.Pixels(v); ok {
			switch {
			case px < containerMinWidth:
				*errs = append(*errs, fmt.Sprintf("container_max_width %v is too small for mobile devices (minimum %dpx)", v, containerMinWidth))
			case px > containerWideWidth:
				*warns = append(*warns, fmt.Sprintf("container_max_width %v is unusually wide (over %dpx)", v, containerWideWidth))
			}
		}
	}

	if v, ok := doc.Get("layout.grid_columns"); ok {
		n, numeric := settings.Number(v)
		switch {
		case !numeric:
			*errs = append(*errs, fmt.Sprintf("grid_columns %v is not a number", v))
		case n < gridColumnsMin || n > gridColumnsMax:
			*errs = append(*errs, fmt.Sprintf("grid_columns %v is outside the supported range %d-%d", v, gridColumnsMin, gridColumnsMax))
		case n > gridColumnsMany:
			*warns = append(*warns, fmt.Sprintf("grid_columns %v exceeds %d; narrow columns degrade on tablets", v, gridColumnsMany))
		}
	}

	if v, ok := doc.Get("layout.header_height"); ok {
		if px, ok := settings.Pixels(v); ok {
			if px > headerMaxHeight {
				*warns = append(*warns, fmt.Sprintf("header_height %v is tall; it crowds small screens (over %dpx)", v, headerMaxHeight))
			} else if px < headerMinHeight {
				*warns = append(*warns, fmt.Sprintf("header_height %v is short; touch targets may not fit (under %dpx)", v, headerMinHeight))
			}
		}
	}
}

func checkLayoutSetting(key string, value any) Result {
	switch key {
	case "container_max_width":
		if px, ok := settings.Pixels(value); ok && px < containerMinWidth {
			return fail("container_max_width %v is too small for mobile devices (minimum %dpx)", value, containerMinWidth)
		}
	case "grid_columns":
		n, numeric := settings.Number(value)
		if !numeric {
			return fail("grid_columns %v is not a number", value)
		}
		if n < gridColumnsMin || n > gridColumnsMax {
			return fail("grid_columns %v is outside the supported range %d-%d", value, gridColumnsMin, gridColumnsMax)
		}
	}
	return Result{Valid: true}
}

func checkTypography(doc settings.Document, errs, warns *[]string) {
	if v, ok := doc.Get("typography.font_size_base"); ok {
		if px, ok := settings.Pixels(v); ok {
			switch {
			case px < fontSizeMin:
				*errs = append(*errs, fmt.Sprintf("font_size_base %v is below the %dpx minimum for mobile readability", v, fontSizeMin))
			case px > fontSizeLarge:
				*warns = append(*warns, fmt.Sprintf("font_size_base %v is large; body copy over %dpx wastes mobile viewport", v, fontSizeLarge))
			}
		}
	}

	// Non-numeric line heights ("1.5em") are accepted without range checks.
	if v, ok := doc.Get("typography.line_height_base"); ok {
		if n, numeric := settings.Number(v); numeric {
			if n < lineHeightMin {
				*warns = append(*warns, fmt.Sprintf("line_height_base %v is tight (under %.1f)", v, lineHeightMin))
			} else if n > lineHeightMax {
				*warns = append(*warns, fmt.Sprintf("line_height_base %v is loose (over %.1f)", v, lineHeightMax))
			}
		}
	}

	if v, ok := doc.Get("typography.font_family_primary"); ok {
		if s, isStr := v.(string); isStr && !hasFontFallback(s) {
			*warns = append(*warns, "font_family_primary has no recognized fallback font")
		}
	}
}

func checkTypographySetting(key string, value any) Result {
	if key == "font_size_base" {
		if px, ok := settings.Pixels(value); ok && px < fontSizeMin {
			return fail("font_size_base %v is below the %dpx minimum for mobile readability", value, fontSizeMin)
		}
	}
	return Result{Valid: true}
}

func hasFontFallback(stack string) bool {
	s := strings.ToLower(stack)
	for _, token := range fontFallbacks {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

// checkSpacing walks the spacing section in key order. Whole-document
// spacing checks only ever warn.
func checkSpacing(doc settings.Document, warns *[]string) {
	section := doc.Section(settings.SectionSpacing)
	if section == nil {
		return
	}
	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		px, ok := settings.Pixels(section[k])
		if !ok {
			continue
		}
		switch {
		case strings.HasPrefix(k, "padding_"):
			if px < paddingMin {
				*warns = append(*warns, fmt.Sprintf("spacing.%s %v is under %dpx; touch targets need breathing room", k, section[k], paddingMin))
			} else if px > paddingLarge {
				*warns = append(*warns, fmt.Sprintf("spacing.%s %v is over %dpx; padding this large wastes mobile viewport", k, section[k], paddingLarge))
			}
		case strings.HasPrefix(k, "margin_"):
			if px > marginLarge {
				*warns = append(*warns, fmt.Sprintf("spacing.%s %v is over %dpx; margins this large fragment small screens", k, section[k], marginLarge))
			}
		}
	}
}

func checkSpacingSetting(key string, value any) Result {
	px, ok := settings.Pixels(value)
	if !ok {
		return Result{Valid: true}
	}
	if px < 0 {
		return fail("spacing.%s cannot be negative", key)
	}
	if strings.HasPrefix(key, "padding_") && px > paddingHardMax {
		return fail("spacing.%s %v exceeds the %dpx padding limit", key, value, paddingHardMax)
	}
	if strings.HasPrefix(key, "margin_") && px > marginHardMax {
		return fail("spacing.%s %v exceeds the %dpx margin limit", key, value, marginHardMax)
	}
	return Result{Valid: true}
}

func checkColors(doc settings.Document, errs *[]string) {
	section := doc.Section(settings.SectionColors)
	if section == nil {
		return
	}
	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		s, isStr := section[k].(string)
		if !isStr || !IsColor(s) {
			*errs = append(*errs, fmt.Sprintf("colors.%s has invalid color value %q", k, fmt.Sprintf("%v", section[k])))
		}
	}
}

// checkContrast compares background against text (blocking) and link
// against background (advisory) with the too-similar heuristic.
func checkContrast(doc settings.Document, errs, warns *[]string) {
	bg, hasBg := stringAt(doc, "colors.background")
	if !hasBg {
		return
	}
	if text, ok := stringAt(doc, "colors.text"); ok && tooSimilar(bg, text) {
		*errs = append(*errs, fmt.Sprintf("colors.text %q is unreadable against colors.background %q", text, bg))
	}
	if link, ok := stringAt(doc, "colors.link"); ok && tooSimilar(bg, link) {
		*warns = append(*warns, fmt.Sprintf("colors.link %q is hard to see against colors.background %q", link, bg))
	}
}

func stringAt(doc settings.Document, path string) (string, bool) {
	v, ok := doc.Get(path)
	if !ok {
		return "", false
	}
	s, isStr := v.(string)
	return s, isStr
}

func tooSimilar(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return true
	}
	for _, pair := range similarPairs {
		if (a == pair[0] && b == pair[1]) || (a == pair[1] && b == pair[0]) {
			return true
		}
	}
	return false
}
