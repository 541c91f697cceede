// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cssgen

import (
	"strings"
	"testing"

	"themepress/internal/settings"
)

func TestValidateOutput(t *testing.T) {
	tests := []struct {
		name string
		css  string
		want bool
	}{
		{"empty", "", true},
		{"simple rule", "body {\n  color: #fff;\n}", true},
		{"custom property", ":root {\n  --color-primary: #007bff;\n}", true},
		{"media query", "@media (max-width: 768px) {\n  body {\n    font-size: 14.4px;\n  }\n}", true},
		{"comment line", "/* generated */\nbody {\n  color: red;\n}", true},
		{"unclosed brace", "body {\n  color: red;", false},
		{"stray close", "body {\n  color: red;\n}\n}", false},
		{"garbage in block", "body {\n  not a declaration\n}", false},
		{"missing semicolon", "body {\n  color: red\n}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateOutput(tt.css); got != tt.want {
				t.Errorf("ValidateOutput: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateOutputAcceptsGenerated(t *testing.T) {
	css := Generate(settings.Default())
	if !ValidateOutput(css) {
		t.Error("generated stylesheet failed its own structural check")
	}
}

func TestMinify(t *testing.T) {
	css := "/* header */\nbody {\n  color: #fff;\n  margin: 0 auto;\n}\n"
	got := Minify(css)
	want := "body{color:#fff;margin:0 auto;}"
	if got != want {
		t.Errorf("Minify: got %q, want %q", got, want)
	}
}

func TestMinifyPreservesValueSpaces(t *testing.T) {
	css := ".card {\n  box-shadow: 0 1px 3px rgba(0, 0, 0, 0.12);\n}\n"
	got := Minify(css)
	if !strings.Contains(got, "0 1px 3px rgba(0,0,0,0.12)") {
		t.Errorf("shadow value mangled: %q", got)
	}
}

func TestMinifyGeneratedShrinks(t *testing.T) {
	css := Generate(settings.Default())
	min := Minify(css)
	if len(min) >= len(css) {
		t.Errorf("minified output not smaller: %d vs %d", len(min), len(css))
	}
	if strings.Contains(min, "\n") {
		t.Error("minified output should be a single line")
	}
}
