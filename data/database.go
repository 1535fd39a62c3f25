package data

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ncobase/tablekit/config"
	"github.com/ncobase/tablekit/data/query"
	"github.com/ncobase/tablekit/logging/logger"
)

// Database is an open connection pool together with its dialect.
type Database struct {
	DB      *sqlx.DB
	Dialect query.Dialect
	driver  string
}

// Open connects through the driver named in cfg.
func Open(ctx context.Context, cfg *config.Database) (*Database, error) {
	if cfg == nil {
		return nil, fmt.Errorf("data: database config is nil")
	}
	driver, err := GetDatabaseDriver(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := driver.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Logging {
		logger.Infof(ctx, "connected to %s database", driver.Name())
	}
	dialect := driver.Dialect()
	return &Database{DB: sqlx.NewDb(db, dialect.Driver), Dialect: dialect, driver: driver.Name()}, nil
}

// Source returns a query source over the pool.
func (d *Database) Source() *query.SQLSource {
	return query.NewSQLSource(d.DB, d.Dialect)
}

// Driver returns the name of the driver the pool was opened with.
func (d *Database) Driver() string { return d.driver }

// Ping verifies the connection is alive.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: ping failed: %w", d.driver, err)
	}
	return nil
}

// Close releases the pool.
func (d *Database) Close() error {
	if err := d.DB.Close(); err != nil {
		return fmt.Errorf("%s: failed to close connection: %w", d.driver, err)
	}
	return nil
}
