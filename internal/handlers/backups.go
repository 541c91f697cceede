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
	"themepress/internal/theme"
)

// Backups exposes backup and restore operations over JSON.
type Backups struct {
	manager *theme.Manager
}

// NewBackups creates the backup handler group.
func NewBackups(manager *theme.Manager) *Backups {
	return &Backups{manager: manager}
}

// Create takes a snapshot of a theme. The type defaults to manual.
func (h *Backups) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := themeID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid theme id")
		return
	}

	var req struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	backupType := models.BackupType(req.Type)
	if req.Type == "" {
		backupType = models.BackupManual
	}

	backup, err := h.manager.Backup(r.Context(), id, backupType, req.Description, actor(r))
	if err != nil {
		writeManagerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, backup)
}

// List returns all backups for a theme, newest first.
func (h *Backups) List(w http.ResponseWriter, r *http.Request) {
	id, ok := themeID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid theme id")
		return
	}
	backups, err := h.manager.ListBackups(id)
	if err != nil {
		writeManagerError(w, err)
		return
	}
	if backups == nil {
		backups = []*models.ThemeBackup{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"backups": backups})
}

// Restore overwrites the owning theme with the backup's snapshot.
func (h *Backups) Restore(w http.ResponseWriter, r *http.Request) {
	backupID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid backup id")
		return
	}
	t, err := h.manager.Restore(r.Context(), backupID, actor(r))
	if err != nil {
		writeManagerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
