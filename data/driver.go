package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ncobase/tablekit/config"
	"github.com/ncobase/tablekit/data/query"
)

// Drivers register themselves from init, following database/sql, and are
// looked up by the name configured in data.database.driver.

// ErrDriverNotFound is returned when no driver is registered under a name.
var ErrDriverNotFound = errors.New("data: database driver not registered")

// DatabaseDriver defines the interface for relational database drivers.
type DatabaseDriver interface {
	// Name returns the driver identifier (e.g., "postgres", "mysql", "sqlite")
	Name() string

	// Dialect returns the SQL dialect table queries are rendered in.
	Dialect() query.Dialect

	// Connect opens and pings a connection pool for cfg.
	Connect(ctx context.Context, cfg *config.Database) (*sql.DB, error)
}

var (
	databaseDrivers   = make(map[string]DatabaseDriver)
	databaseDriversMu sync.RWMutex
)

// RegisterDatabaseDriver makes a database driver available by the provided name.
// It is intended to be called from the init function in driver packages.
//
// If RegisterDatabaseDriver is called twice with the same name or if driver is nil,
// it panics.
func RegisterDatabaseDriver(driver DatabaseDriver) {
	databaseDriversMu.Lock()
	defer databaseDriversMu.Unlock()

	if driver == nil {
		panic("data: RegisterDatabaseDriver driver is nil")
	}

	name := driver.Name()
	if name == "" {
		panic("data: RegisterDatabaseDriver driver name is empty")
	}

	if _, exists := databaseDrivers[name]; exists {
		panic(fmt.Sprintf("data: RegisterDatabaseDriver called twice for driver %s", name))
	}

	databaseDrivers[name] = driver
}

// GetDatabaseDriver retrieves a registered database driver by name.
func GetDatabaseDriver(name string) (DatabaseDriver, error) {
	databaseDriversMu.RLock()
	defer databaseDriversMu.RUnlock()

	driver, ok := databaseDrivers[name]
	if !ok {
		return nil, fmt.Errorf(
			"%w: %q (import _ \"github.com/ncobase/tablekit/data/%s\"; available: %v)",
			ErrDriverNotFound, name, name, listDatabaseDriversLocked(),
		)
	}

	return driver, nil
}

// ListDatabaseDrivers returns the sorted names of the registered drivers.
func ListDatabaseDrivers() []string {
	databaseDriversMu.RLock()
	defer databaseDriversMu.RUnlock()
	return listDatabaseDriversLocked()
}

func listDatabaseDriversLocked() []string {
	names := make([]string, 0, len(databaseDrivers))
	for name := range databaseDrivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPool sets the pool limits of cfg on db, using the given fallbacks
// for values left at zero.
func ApplyPool(db *sql.DB, cfg *config.Database, idle, open int) {
	if cfg.MaxIdleConn > 0 {
		idle = cfg.MaxIdleConn
	}
	if idle > 0 {
		db.SetMaxIdleConns(idle)
	}
	if cfg.MaxOpenConn > 0 {
		open = cfg.MaxOpenConn
	}
	if open > 0 {
		db.SetMaxOpenConns(open)
	}
	if cfg.ConnMaxLifeTime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifeTime)
	}
}
