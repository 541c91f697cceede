// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"themepress/internal/store"
	"themepress/internal/storage"
)

// Assets resolves brand asset slots (logo, favicon) to public URLs.
// Uploading and processing happen outside this service; only the slot
// lookup lives here.
type Assets struct {
	assets  *store.AssetStore
	storage *storage.Client // nil when object storage is not configured
}

// NewAssets creates the asset handler group.
func NewAssets(assets *store.AssetStore, storageClient *storage.Client) *Assets {
	return &Assets{assets: assets, storage: storageClient}
}

// Active serves GET /api/assets/{slot}: the active asset for a slot with
// its public URL.
func (h *Assets) Active(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")

	asset, err := h.assets.ActiveBySlot(slot)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if asset == nil {
		writeError(w, http.StatusNotFound, "no active asset for slot "+slot)
		return
	}

	url := ""
	if h.storage != nil {
		url = h.storage.FileURL(asset.FileKey)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"asset": asset,
		"url":   url,
	})
}
