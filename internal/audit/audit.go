// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package audit records theme engine activity as a fire-and-forget side
// effect. A failed or absent sink never blocks the operation being
// audited; failures are logged and swallowed.
package audit

import (
	"log/slog"

	"themepress/internal/models"
)

// Sink receives activity entries. *store.ActivityStore satisfies it.
type Sink interface {
	Insert(e *models.ActivityEntry) error
}

// Recorder writes activity entries to a sink. A nil Recorder or nil sink
// is valid and records nothing.
type Recorder struct {
	sink Sink
}

// New creates a Recorder over the given sink.
func New(sink Sink) *Recorder {
	return &Recorder{sink: sink}
}

// Record writes one entry. Best-effort: errors are logged, never returned.
func (r *Recorder) Record(action, resourceType, resourceID string, details map[string]any) {
	if r == nil || r.sink == nil {
		return
	}
	entry := &models.ActivityEntry{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      details,
	}
	if err := r.sink.Insert(entry); err != nil {
		slog.Warn("audit record failed",
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
			"error", err,
		)
	}
}
