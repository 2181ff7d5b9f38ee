// Package localdb is the client-resident persistence layer: a small sqlite
// database holding single-slot values keyed by name. It is the module's
// stand-in for the browser's local key-value storage: one slot for the
// draft, one for the display cache, one for the last-submission backup.
package localdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/kudos/internal/client/localdb/migrations"
)

// Fixed slot keys. Each holds a single JSON-encoded value, overwritten in
// place.
const (
	DraftKey          = "testimonial_draft"
	CacheKey          = "testimonials_cache"
	LastSubmissionKey = "last_testimonial"
)

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the client database at dsn and
// migrates it. The caller owns the returned handle.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
