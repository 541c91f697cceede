// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package settings

// Default returns the built-in settings document used when a theme is
// created without explicit settings. Every call returns a fresh copy.
func Default() Document {
	return Document{
		SectionColors: map[string]any{
			"primary":    "#007bff",
			"secondary":  "#6c757d",
			"success":    "#28a745",
			"danger":     "#dc3545",
			"warning":    "#ffc107",
			"info":       "#17a2b8",
			"background": "#ffffff",
			"surface":    "#f8f9fa",
			"text":       "#212529",
			"heading":    "#212529",
			"link":       "#007bff",
			"link_hover": "#0056b3",
		},
		SectionTypography: map[string]any{
			"font_family_primary":   "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif",
			"font_family_secondary": "Georgia, 'Times New Roman', serif",
			"font_size_base":        "16px",
			"font_size_small":       "14px",
			"font_size_large":       "18px",
			"font_weight_normal":    "400",
			"font_weight_bold":      "700",
			"line_height_base":      "1.5",
			"line_height_heading":   "1.2",
		},
		SectionLayout: map[string]any{
			"container_max_width": "1200px",
			"container_padding":   "15px",
			"grid_columns":        12,
			"grid_gutter":         "30px",
			"header_height":       "64px",
		},
		SectionSpacing: map[string]any{
			"padding_small":  "8px",
			"padding_medium": "16px",
			"padding_large":  "24px",
			"margin_small":   "8px",
			"margin_medium":  "16px",
			"margin_large":   "24px",
			"section_gap":    "48px",
		},
		SectionBorders: map[string]any{
			"radius":       "4px",
			"radius_large": "8px",
			"width":        "1px",
			"color":        "#dee2e6",
			"style":        "solid",
		},
		SectionShadows: map[string]any{
			"small":  "0 1px 3px rgba(0, 0, 0, 0.12)",
			"medium": "0 4px 6px rgba(0, 0, 0, 0.1)",
			"large":  "0 10px 25px rgba(0, 0, 0, 0.15)",
		},
	}
}
