// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cssgen

import (
	"regexp"
	"strings"
)

// declarationRe matches a "property: value;" line. Custom properties
// (--name) and at-rules inside blocks are covered by the leading class.
var declarationRe = regexp.MustCompile(`^[-@A-Za-z][-A-Za-z0-9]*\s*:\s*.+;$`)

var (
	commentRe    = regexp.MustCompile(`(?s)/\*.*?\*/`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ValidateOutput performs a structural sanity check on generated CSS.
// Braces must balance, and inside any block every non-empty, non-comment
// line must open a nested block, close one, or be a declaration. It is a
// guard against generator defects, not a CSS parser.
func ValidateOutput(css string) bool {
	depth := 0
	for _, raw := range strings.Split(css, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "/*") {
			continue
		}

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		if depth > 0 && opens == 0 && closes == 0 {
			if !declarationRe.MatchString(line) {
				return false
			}
		}

		depth += opens - closes
		if depth < 0 {
			return false
		}
	}
	return depth == 0
}

// Minify strips comments and collapses whitespace around structural
// characters. It is a textual compression that preserves cascade
// semantics; it does not parse the stylesheet.
func Minify(css string) string {
	out := commentRe.ReplaceAllString(css, "")
	out = whitespaceRe.ReplaceAllString(out, " ")
	for _, ch := range []string{"{", "}", ";", ":", ","} {
		out = strings.ReplaceAll(out, " "+ch, ch)
		out = strings.ReplaceAll(out, ch+" ", ch)
	}
	return strings.TrimSpace(out)
}
