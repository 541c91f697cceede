// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON admin API over the theme manager
// and the public stylesheet endpoint. Authentication and sessions belong
// to the deployment surrounding this service.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"themepress/internal/theme"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}

// writeError emits a plain JSON error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeManagerError maps manager errors onto HTTP status codes. Blocking
// validation failures carry their reasons and advisories as data.
func writeManagerError(w http.ResponseWriter, err error) {
	var verr *theme.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":    "validation failed",
			"reasons":  verr.Reasons,
			"warnings": verr.Warnings,
		})
	case errors.Is(err, theme.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, theme.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("theme operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
