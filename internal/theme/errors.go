// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"errors"
	"strings"
)

// Sentinel errors returned by Manager operations. Callers dispatch with
// errors.Is; operations that fail with these perform no partial mutation
// (an automatic pre-mutation backup, if already taken, is kept).
var (
	// ErrNotFound means the referenced theme or backup does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers duplicate theme names and deletion of an active
	// or default theme.
	ErrConflict = errors.New("conflict")

	// ErrGeneration means compiling CSS produced structurally invalid
	// output. This signals a generator defect; the previously cached CSS
	// is retained.
	ErrGeneration = errors.New("stylesheet generation produced invalid output")
)

// ValidationError is a blocking validation failure. Reasons are the
// human-readable blocking rules that were violated; Warnings are the
// non-blocking advisories gathered along the way, returned as data.
type ValidationError struct {
	Reasons  []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}
