// Package postgres registers the PostgreSQL driver, backed by pgx through its
// database/sql adapter.
//
//	import _ "github.com/ncobase/tablekit/data/postgres"
//
// Sources are URLs ("postgres://user:pw@localhost:5432/app?sslmode=disable")
// or keyword/value strings ("host=localhost user=app dbname=app").
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/ncobase/tablekit/config"
	"github.com/ncobase/tablekit/data"
	"github.com/ncobase/tablekit/data/query"
)

type driver struct{}

func (d *driver) Name() string { return "postgres" }

func (d *driver) Dialect() query.Dialect { return query.Postgres }

func parseConfig(source string) (*pgx.ConnConfig, error) {
	if source == "" {
		return nil, fmt.Errorf("postgres: connection source is empty")
	}
	cc, err := pgx.ParseConfig(source)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid source: %w", err)
	}
	return cc, nil
}

func (d *driver) Connect(ctx context.Context, cfg *config.Database) (*sql.DB, error) {
	cc, err := parseConfig(cfg.Source)
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDB(*cc)
	data.ApplyPool(db, cfg, 0, 0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: failed to ping database: %w", err)
	}

	return db, nil
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
