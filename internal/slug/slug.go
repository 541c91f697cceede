// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL- and key-friendly name generation. Theme
// backup names and storage object keys are built from user-supplied theme
// names, so those names must be reduced to a safe character set first.
package slug

import (
	"regexp"
	"strings"
	"time"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Summer Sale!" → "summer-sale"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// stampFormat gives second precision, sortable lexically.
const stampFormat = "2006-01-02-150405"

// Timestamped returns a slug suffixed with the given time at second
// precision. Example: ("Summer Sale", t) → "summer-sale-2026-08-25-143000".
// An empty or fully-stripped name yields just the timestamp.
func Timestamped(s string, t time.Time) string {
	base := Generate(s)
	if base == "" {
		return t.Format(stampFormat)
	}
	return base + "-" + t.Format(stampFormat)
}
