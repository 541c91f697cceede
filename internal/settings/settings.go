// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package settings defines the theme settings document: a nested tree of
// presentation values addressed by dotted paths (e.g. "colors.primary").
// The tree is a plain map so unknown keys survive a load/save round trip;
// schema-aware checks happen at the manager boundary, not here.
package settings

import (
	"strconv"
	"strings"
)

// Top-level section names. These form the fixed vocabulary of the settings
// document; keys inside each section use underscore_separated names.
const (
	SectionColors     = "colors"
	SectionTypography = "typography"
	SectionLayout     = "layout"
	SectionSpacing    = "spacing"
	SectionBorders    = "borders"
	SectionShadows    = "shadows"
)

// Sections lists all known sections in stylesheet emission order.
var Sections = []string{
	SectionColors,
	SectionTypography,
	SectionLayout,
	SectionSpacing,
	SectionBorders,
	SectionShadows,
}

// Document is one theme's settings tree. Leaf values are strings or numbers;
// intermediate nodes are maps.
type Document map[string]any

// Get walks the dotted path and returns the leaf value. The second return
// is false if any segment is missing or an intermediate value is not a map.
func (d Document) Get(path string) (any, bool) {
	segments := strings.Split(path, ".")
	var current any = map[string]any(d)
	for _, seg := range segments {
		node, ok := current.(map[string]any)
		if !ok {
			if doc, isDoc := current.(Document); isDoc {
				node = map[string]any(doc)
			} else {
				return nil, false
			}
		}
		current, ok = node[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// GetDefault returns the value at path, or fallback when absent.
func (d Document) GetDefault(path string, fallback any) any {
	if v, ok := d.Get(path); ok {
		return v
	}
	return fallback
}

// Set assigns the leaf at the dotted path, creating intermediate maps as
// needed. A non-map intermediate is replaced by a fresh map so the write
// always lands.
func (d Document) Set(path string, value any) {
	segments := strings.Split(path, ".")
	node := map[string]any(d)
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			if doc, isDoc := node[seg].(Document); isDoc {
				child = map[string]any(doc)
			} else {
				child = make(map[string]any)
			}
			node[seg] = child
		}
		node = child
	}
	node[segments[len(segments)-1]] = value
}

// Section returns the named top-level section as a map, or nil if it is
// absent or not a map.
func (d Document) Section(name string) map[string]any {
	switch v := d[name].(type) {
	case map[string]any:
		return v
	case Document:
		return map[string]any(v)
	default:
		return nil
	}
}

// Clone returns a fully independent deep copy. Mutating the clone (or the
// original) never affects the other; backups and previews rely on this.
func (d Document) Clone() Document {
	return Document(cloneMap(map[string]any(d)))
}

func cloneMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = cloneValue(v)
	}
	return dst
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case Document:
		return cloneMap(map[string]any(t))
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// Merge deep-merges source into target and returns target. Where both sides
// hold a map the merge recurses; otherwise the source value wins. Callers
// composing previews must pass a clone as target — Merge mutates it.
func Merge(target, source Document) Document {
	mergeMap(map[string]any(target), map[string]any(source))
	return target
}

func mergeMap(target, source map[string]any) {
	for k, sv := range source {
		svMap, sOK := asMap(sv)
		tvMap, tOK := asMap(target[k])
		if sOK && tOK {
			mergeMap(tvMap, svMap)
			continue
		}
		target[k] = cloneValue(sv)
	}
}

func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Document:
		return map[string]any(t), true
	default:
		return nil, false
	}
}

// Pixels parses a pixel size that may be numeric (16, 16.0) or a string
// ("16px", "16"). Returns false for anything else.
func Pixels(v any) (float64, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(strings.ToLower(t))
		s = strings.TrimSuffix(s, "px")
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return Number(v)
	}
}

// Number parses a plain numeric value (int, float, or numeric string).
func Number(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
