// Package sqlite registers the SQLite driver, backed by mattn/go-sqlite3 (CGO).
//
//	import _ "github.com/ncobase/tablekit/data/sqlite"
//
// Typical sources are a file path, "file:tablekit.db?cache=shared&mode=rwc",
// ":memory:" or "file::memory:?cache=shared".
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ncobase/tablekit/config"
	"github.com/ncobase/tablekit/data"
	"github.com/ncobase/tablekit/data/query"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// driver implements data.DatabaseDriver for SQLite.
type driver struct{}

func (d *driver) Name() string { return "sqlite" }

func (d *driver) Dialect() query.Dialect { return query.SQLite }

// Connect opens the database and verifies it with a ping. Without explicit
// pool limits a single open connection is used, which keeps in-memory
// databases shared and writes serialized.
func (d *driver) Connect(ctx context.Context, cfg *config.Database) (*sql.DB, error) {
	if cfg.Source == "" {
		return nil, fmt.Errorf("sqlite: connection source is empty")
	}

	db, err := sql.Open("sqlite3", cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open connection: %w", err)
	}

	data.ApplyPool(db, cfg, 2, 1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: failed to ping database: %w", err)
	}

	return db, nil
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
