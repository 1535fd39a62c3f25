// Package mysql registers the MySQL driver, backed by go-sql-driver/mysql.
//
//	import _ "github.com/ncobase/tablekit/data/mysql"
//
// Sources use the DSN format "user:password@tcp(host:3306)/dbname?charset=utf8mb4".
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/ncobase/tablekit/config"
	"github.com/ncobase/tablekit/data"
	"github.com/ncobase/tablekit/data/query"
)

// driver implements data.DatabaseDriver for MySQL.
type driver struct{}

func (d *driver) Name() string { return "mysql" }

func (d *driver) Dialect() query.Dialect { return query.MySQL }

// normalizeDSN parses source and turns on time parsing so DATETIME columns
// scan as time.Time.
func normalizeDSN(source string) (string, error) {
	if source == "" {
		return "", fmt.Errorf("mysql: connection source is empty")
	}
	dsn, err := mysql.ParseDSN(source)
	if err != nil {
		return "", fmt.Errorf("mysql: invalid DSN: %w", err)
	}
	dsn.ParseTime = true
	return dsn.FormatDSN(), nil
}

func (d *driver) Connect(ctx context.Context, cfg *config.Database) (*sql.DB, error) {
	dsn, err := normalizeDSN(cfg.Source)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql: failed to open connection: %w", err)
	}

	data.ApplyPool(db, cfg, 0, 0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql: failed to ping database: %w", err)
	}

	return db, nil
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
