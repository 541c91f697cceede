// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"themepress/internal/cache"
	"themepress/internal/theme"
)

// Styles serves the active theme's compiled stylesheet: the Valkey copy
// when published, falling back to the database.
type Styles struct {
	manager     *theme.Manager
	stylesheets *cache.StylesheetCache // optional
}

// NewStyles creates the stylesheet handler.
func NewStyles(manager *theme.Manager, stylesheets *cache.StylesheetCache) *Styles {
	return &Styles{manager: manager, stylesheets: stylesheets}
}

// Active serves GET /styles/active.css.
func (h *Styles) Active(w http.ResponseWriter, r *http.Request) {
	if h.stylesheets != nil {
		if css, ok := h.stylesheets.Get(r.Context()); ok {
			serveCSS(w, css)
			return
		}
	}

	css, err := h.manager.ActiveCSS()
	if err != nil {
		if errors.Is(err, theme.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		writeManagerError(w, err)
		return
	}

	// Warm the cache so the next request skips the database. Best-effort:
	// a failed warm just means another DB read.
	if h.stylesheets != nil {
		_ = h.stylesheets.Set(r.Context(), css)
	}
	serveCSS(w, css)
}

func serveCSS(w http.ResponseWriter, css string) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(css))
}
