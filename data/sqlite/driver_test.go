package sqlite

import (
	"context"
	"testing"

	"github.com/ncobase/tablekit/config"
	"github.com/ncobase/tablekit/data"
	"github.com/ncobase/tablekit/data/query"
)

func TestDriverRegistered(t *testing.T) {
	d, err := data.GetDatabaseDriver("sqlite")
	if err != nil {
		t.Fatalf("GetDatabaseDriver() error = %v", err)
	}
	if d.Dialect() != query.SQLite {
		t.Errorf("Dialect() = %+v", d.Dialect())
	}
}

func TestOpenInMemory(t *testing.T) {
	ctx := context.Background()
	db, err := data.Open(ctx, &config.Database{Driver: "sqlite", Source: ":memory:"})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if db.Driver() != "sqlite" {
		t.Errorf("Driver() = %q", db.Driver())
	}
	if got := db.DB.Stats().MaxOpenConnections; got != 1 {
		t.Errorf("MaxOpenConnections = %d, want 1", got)
	}
	if _, err := db.DB.Exec(`CREATE TABLE t (id INTEGER)`); err != nil {
		t.Fatal(err)
	}
	page, err := db.Source().NewQuery("t").Paginate(ctx, 10, 1)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	if page.Total != 0 {
		t.Errorf("Total = %d", page.Total)
	}
}

func TestConnectEmptySource(t *testing.T) {
	if _, err := (&driver{}).Connect(context.Background(), &config.Database{}); err == nil {
		t.Fatal("expected error for empty source")
	}
}
