// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"themepress/internal/models"
	"themepress/internal/settings"
	"themepress/internal/theme"
)

// Themes exposes theme manager operations over JSON.
type Themes struct {
	manager *theme.Manager
}

// NewThemes creates the theme handler group.
func NewThemes(manager *theme.Manager) *Themes {
	return &Themes{manager: manager}
}

// actor resolves the acting user for audit fields. With auth handled
// outside this service, a reverse proxy supplies the identity header.
func actor(r *http.Request) string {
	if v := r.Header.Get("X-Admin-User"); v != "" {
		return v
	}
	return "admin"
}

// themeID parses the {id} URL parameter.
func themeID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// List returns summaries of all themes.
func (h *Themes) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.manager.List()
	if err != nil {
		writeManagerError(w, err)
		return
	}
	if items == nil {
		items = []models.ThemeSummary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"themes": items})
}

// Create stores a new theme. Settings are optional; when omitted the
// built-in defaults apply.
func (h *Themes) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string            `json:"name"`
		Description string            `json:"description"`
		Settings    settings.Document `json:"settings"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateThemeInput(req.Name, req.Description); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.manager.Create(r.Context(), req.Name, req.Description, req.Settings, actor(r))
	if err != nil {
		writeManagerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Get returns one theme with its full settings and compiled CSS.
func (h *Themes) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := themeID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid theme id")
		return
	}
	t, err := h.manager.Get(id)
	if err != nil {
		writeManagerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// UpdateSetting applies a single dotted-path settings change.
func (h *Themes) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	id, ok := themeID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid theme id")
		return
	}

	var req struct {
		Path  string `json:"path"`
		Value any    `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateSettingPath(req.Path); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	t, err := h.manager.UpdateSetting(r.Context(), id, req.Path, req.Value, actor(r))
	if err != nil {
		writeManagerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Activate makes the theme the single active one and publishes its CSS.
func (h *Themes) Activate(w http.ResponseWriter, r *http.Request) {
	id, ok := themeID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid theme id")
		return
	}
	t, err := h.manager.Apply(r.Context(), id, actor(r))
	if err != nil {
		writeManagerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Preview compiles CSS from the theme's settings merged with the request
// overrides. Nothing is persisted; the response is the stylesheet itself.
func (h *Themes) Preview(w http.ResponseWriter, r *http.Request) {
	id, ok := themeID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid theme id")
		return
	}

	var req struct {
		Overrides settings.Document `json:"overrides"`
	}
	// An empty body previews the theme as stored.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	css, err := h.manager.Preview(id, req.Overrides)
	if err != nil {
		writeManagerError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(css))
}

// Validate runs the composite settings validation without touching any
// stored theme.
func (h *Themes) Validate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Settings settings.Document `json:"settings"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	report := h.manager.ValidateSettings(req.Settings)
	writeJSON(w, http.StatusOK, report)
}

// Delete removes a theme and its backups. Active and default themes are
// refused with a conflict.
func (h *Themes) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := themeID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid theme id")
		return
	}
	if err := h.manager.Delete(r.Context(), id, actor(r)); err != nil {
		writeManagerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
