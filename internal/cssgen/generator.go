// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cssgen compiles a theme settings document into a stylesheet.
// Generation is pure and deterministic: the same document always produces
// byte-identical CSS. Any subset of sections may be absent; absent sections
// simply omit their rules.
package cssgen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"themepress/internal/settings"
)

// varPrefixes maps each section to the custom-property prefix applied to
// its keys. Typography, layout, and spacing keys are emitted unprefixed.
var varPrefixes = map[string]string{
	settings.SectionColors:  "color-",
	settings.SectionBorders: "border-",
	settings.SectionShadows: "shadow-",
}

// semanticColors are the color keys that get a button variant class, in
// emission order.
var semanticColors = []string{"primary", "secondary", "success", "danger", "warning", "info"}

// Breakpoints for the responsive overrides.
const (
	mobileMaxWidth = 768
	tabletMinWidth = 769
	tabletMaxWidth = 1024
)

// mobileFontScale shrinks the base font size at the mobile breakpoint.
const mobileFontScale = 0.9

// Generate compiles the settings document into CSS text. Blocks are emitted
// in a fixed order (custom properties, base elements, layout, components,
// responsive overrides) and joined by blank lines.
func Generate(doc settings.Document) string {
	var blocks []string
	appendBlock := func(b string) {
		if b != "" {
			blocks = append(blocks, b)
		}
	}

	appendBlock(rootBlock(doc))
	for _, b := range baseBlocks(doc) {
		appendBlock(b)
	}
	for _, b := range layoutBlocks(doc) {
		appendBlock(b)
	}
	for _, b := range componentBlocks(doc) {
		appendBlock(b)
	}
	appendBlock(mobileBlock(doc))
	appendBlock(tabletBlock(doc))

	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

// VarName converts a section/key pair into its custom-property name,
// e.g. ("colors", "link_hover") -> "--color-link-hover".
func VarName(section, key string) string {
	return "--" + varPrefixes[section] + strings.ReplaceAll(key, "_", "-")
}

// rootBlock emits one custom property per leaf key of every present
// section. Sections follow the fixed vocabulary order; keys are sorted so
// output stays deterministic.
func rootBlock(doc settings.Document) string {
	var lines []string
	for _, section := range settings.Sections {
		node := doc.Section(section)
		if node == nil {
			continue
		}
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("  %s: %s;", VarName(section, k), cssValue(node[k])))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return ":root {\n" + strings.Join(lines, "\n") + "\n}"
}

// cssValue renders a leaf value as CSS text. Numbers use the shortest
// decimal representation.
func cssValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// rule renders a selector with its declaration lines, or "" when no
// declarations survived — an empty candidate rule is omitted entirely.
func rule(selector string, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return selector + " {\n" + strings.Join(lines, "\n") + "\n}"
}

// innerRule renders a rule nested one level inside a media query.
func innerRule(selector string, lines []string) string {
	return "  " + selector + " {\n" + strings.Join(lines, "\n") + "\n  }"
}

// decl emits a declaration line referencing a custom property, but only
// when the backing setting is present in the document.
func decl(doc settings.Document, path, property string) (string, bool) {
	if _, ok := doc.Get(path); !ok {
		return "", false
	}
	section, key, _ := strings.Cut(path, ".")
	return fmt.Sprintf("  %s: var(%s);", property, VarName(section, key)), true
}

// baseBlocks emits body, heading, and link rules driven by the custom
// properties declared in the :root block.
func baseBlocks(doc settings.Document) []string {
	var blocks []string

	var body []string
	for _, c := range [][2]string{
		{"typography.font_family_primary", "font-family"},
		{"typography.font_size_base", "font-size"},
		{"typography.line_height_base", "line-height"},
		{"colors.text", "color"},
		{"colors.background", "background-color"},
	} {
		if line, ok := decl(doc, c[0], c[1]); ok {
			body = append(body, line)
		}
	}
	if b := rule("body", body); b != "" {
		blocks = append(blocks, b)
	}

	var headings []string
	for _, c := range [][2]string{
		{"typography.font_family_secondary", "font-family"},
		{"typography.line_height_heading", "line-height"},
		{"typography.font_weight_bold", "font-weight"},
		{"colors.heading", "color"},
	} {
		if line, ok := decl(doc, c[0], c[1]); ok {
			headings = append(headings, line)
		}
	}
	if b := rule("h1, h2, h3, h4, h5, h6", headings); b != "" {
		blocks = append(blocks, b)
	}

	if line, ok := decl(doc, "colors.link", "color"); ok {
		blocks = append(blocks, rule("a", []string{line}))
	}
	if line, ok := decl(doc, "colors.link_hover", "color"); ok {
		blocks = append(blocks, rule("a:hover", []string{line}))
	}

	return blocks
}

// gridColumns reads layout.grid_columns as a positive integer column count.
func gridColumns(doc settings.Document) (int, bool) {
	v, ok := doc.Get("layout.grid_columns")
	if !ok {
		return 0, false
	}
	n, ok := settings.Number(v)
	if !ok || n < 1 {
		return 0, false
	}
	return int(n), true
}

// colWidth formats a column width as a percentage with 4 decimal places.
func colWidth(i, total int) string {
	return fmt.Sprintf("%.4f%%", float64(i)/float64(total)*100)
}

// layoutBlocks emits the container, the flex grid, and the header rule.
func layoutBlocks(doc settings.Document) []string {
	var blocks []string

	if _, ok := doc.Get("layout.container_max_width"); ok {
		lines := []string{
			"  max-width: var(--container-max-width);",
			"  margin: 0 auto;",
		}
		if _, ok := doc.Get("layout.container_padding"); ok {
			lines = append(lines, "  padding: 0 var(--container-padding);")
		}
		blocks = append(blocks, rule(".container", lines))
	}

	if cols, ok := gridColumns(doc); ok {
		_, hasGutter := doc.Get("layout.grid_gutter")
		row := []string{
			"  display: flex;",
			"  flex-wrap: wrap;",
		}
		if hasGutter {
			row = append(row, "  margin: 0 calc(var(--grid-gutter) / -2);")
		}
		blocks = append(blocks, rule(".row", row))

		for i := 1; i <= cols; i++ {
			col := []string{fmt.Sprintf("  width: %s;", colWidth(i, cols))}
			if hasGutter {
				col = append(col, "  padding: 0 calc(var(--grid-gutter) / 2);")
			}
			blocks = append(blocks, rule(fmt.Sprintf(".col-%d", i), col))
		}
	}

	if _, ok := doc.Get("layout.header_height"); ok {
		blocks = append(blocks, rule(".site-header", []string{"  height: var(--header-height);"}))
	}

	return blocks
}

// componentBlocks emits the fixed button, card, and form control rules.
// The structure is constant; the custom properties supply the values.
func componentBlocks(doc settings.Document) []string {
	blocks := []string{
		rule(".btn", []string{
			"  display: inline-block;",
			"  padding: var(--padding-small) var(--padding-medium);",
			"  font-family: var(--font-family-primary);",
			"  font-size: var(--font-size-base);",
			"  text-align: center;",
			"  border: var(--border-width) solid transparent;",
			"  border-radius: var(--border-radius);",
			"  cursor: pointer;",
		}),
	}

	colors := doc.Section(settings.SectionColors)
	for _, name := range semanticColors {
		if colors == nil {
			break
		}
		if _, ok := colors[name]; !ok {
			continue
		}
		blocks = append(blocks, rule(".btn-"+name, []string{
			fmt.Sprintf("  background-color: var(--color-%s);", name),
			fmt.Sprintf("  border-color: var(--color-%s);", name),
			"  color: #fff;",
		}))
	}

	blocks = append(blocks,
		rule(".card", []string{
			"  background-color: var(--color-surface);",
			"  border: var(--border-width) solid var(--border-color);",
			"  border-radius: var(--border-radius);",
			"  box-shadow: var(--shadow-small);",
			"  padding: var(--padding-large);",
		}),
		rule(".form-control", []string{
			"  display: block;",
			"  width: 100%;",
			"  padding: var(--padding-small);",
			"  font-family: var(--font-family-primary);",
			"  font-size: var(--font-size-base);",
			"  color: var(--color-text);",
			"  background-color: var(--color-background);",
			"  border: var(--border-width) solid var(--border-color);",
			"  border-radius: var(--border-radius);",
		}),
	)

	return blocks
}

// mobileBlock emits the max-width breakpoint: container padding reset, all
// grid columns collapsed to full width, and a 0.9x base font size.
func mobileBlock(doc settings.Document) string {
	var rules []string

	if _, ok := doc.Get("layout.container_max_width"); ok {
		rules = append(rules, innerRule(".container", []string{"    padding: 0 16px;"}))
	}

	if cols, ok := gridColumns(doc); ok {
		selectors := make([]string, cols)
		for i := 1; i <= cols; i++ {
			selectors[i-1] = fmt.Sprintf(".col-%d", i)
		}
		rules = append(rules, innerRule(strings.Join(selectors, ", "), []string{"    width: 100%;"}))
	}

	if v, ok := doc.Get("typography.font_size_base"); ok {
		if px, ok := settings.Pixels(v); ok {
			size := strconv.FormatFloat(px*mobileFontScale, 'f', -1, 64)
			rules = append(rules, innerRule("body", []string{fmt.Sprintf("    font-size: %spx;", size)}))
		}
	}

	if len(rules) == 0 {
		return ""
	}
	return fmt.Sprintf("@media (max-width: %dpx) {\n%s\n}", mobileMaxWidth, strings.Join(rules, "\n"))
}

// tabletBlock widens the first half of the grid columns to 50% between the
// tablet breakpoints.
func tabletBlock(doc settings.Document) string {
	cols, ok := gridColumns(doc)
	if !ok || cols < 2 {
		return ""
	}
	half := cols / 2
	selectors := make([]string, half)
	for i := 1; i <= half; i++ {
		selectors[i-1] = fmt.Sprintf(".col-%d", i)
	}
	inner := innerRule(strings.Join(selectors, ", "), []string{"    width: 50%;"})
	return fmt.Sprintf("@media (min-width: %dpx) and (max-width: %dpx) {\n%s\n}", tabletMinWidth, tabletMaxWidth, inner)
}
