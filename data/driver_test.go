package data

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/ncobase/tablekit/config"
	"github.com/ncobase/tablekit/data/query"
)

type mockDatabaseDriver struct {
	name string
}

func (d *mockDatabaseDriver) Name() string           { return d.name }
func (d *mockDatabaseDriver) Dialect() query.Dialect { return query.SQLite }
func (d *mockDatabaseDriver) Connect(ctx context.Context, cfg *config.Database) (*sql.DB, error) {
	return nil, errors.New("mock driver cannot connect")
}

func resetDrivers() {
	databaseDriversMu.Lock()
	databaseDrivers = make(map[string]DatabaseDriver)
	databaseDriversMu.Unlock()
}

func TestRegisterDatabaseDriver(t *testing.T) {
	resetDrivers()

	RegisterDatabaseDriver(&mockDatabaseDriver{name: "test-db"})

	retrieved, err := GetDatabaseDriver("test-db")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if retrieved.Name() != "test-db" {
		t.Errorf("expected driver name 'test-db', got %q", retrieved.Name())
	}
	if got := ListDatabaseDrivers(); len(got) != 1 || got[0] != "test-db" {
		t.Errorf("ListDatabaseDrivers() = %v", got)
	}
}

func TestRegisterDatabaseDriverPanicsOnNil(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic when registering nil driver")
		}
	}()

	RegisterDatabaseDriver(nil)
}

func TestRegisterDatabaseDriverPanicsOnDuplicate(t *testing.T) {
	resetDrivers()

	driver := &mockDatabaseDriver{name: "duplicate"}
	RegisterDatabaseDriver(driver)

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic when registering duplicate driver")
		}
	}()

	RegisterDatabaseDriver(driver)
}

func TestOpenUnknownDriver(t *testing.T) {
	resetDrivers()

	_, err := Open(context.Background(), &config.Database{Driver: "nonexistent"})
	if !errors.Is(err, ErrDriverNotFound) {
		t.Fatalf("expected ErrDriverNotFound, got %v", err)
	}
}

func TestOpenPropagatesConnectError(t *testing.T) {
	resetDrivers()
	RegisterDatabaseDriver(&mockDatabaseDriver{name: "broken"})

	if _, err := Open(context.Background(), &config.Database{Driver: "broken"}); err == nil {
		t.Fatal("expected connect error")
	}
	if _, err := Open(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}
