package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"themepress/internal/cssgen"
	"themepress/internal/settings"
)

// Seed inserts the default theme built from the built-in settings, marked
// active so the site has a stylesheet from the first request. No-op when
// themes exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM themes").Scan(&count); err != nil {
		return fmt.Errorf("seed check themes: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	doc := settings.Default()
	rawSettings, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("seed encode settings: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO themes (name, description, settings, css_generated, is_active, is_default)
		VALUES ($1, $2, $3, $4, TRUE, TRUE)
	`, "Default", "Built-in default theme", rawSettings, cssgen.Generate(doc))
	if err != nil {
		return fmt.Errorf("seed insert default theme: %w", err)
	}

	slog.Info("database seeded with default theme", "name", "Default")
	return nil
}
