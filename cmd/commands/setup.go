package commands

import (
	"context"
	"fmt"

	"github.com/ncobase/tablekit/config"
	"github.com/ncobase/tablekit/data"
	"github.com/ncobase/tablekit/examples/users"
	"github.com/ncobase/tablekit/logging/logger"
	"github.com/ncobase/tablekit/table"
	"github.com/ncobase/tablekit/version"

	_ "github.com/ncobase/tablekit/data/mysql"
	_ "github.com/ncobase/tablekit/data/postgres"
	_ "github.com/ncobase/tablekit/data/sqlite"
)

// setup loads the configuration, initializes the logger and opens the
// configured database. The cleanup func closes both.
func setup(ctx context.Context, configFile string) (*config.Config, *data.Database, func(), error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	closeLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to init logger: %w", err)
	}
	logger.SetVersion(version.GetVersionInfo().Version)

	db, err := data.Open(ctx, cfg.Database)
	if err != nil {
		closeLogger()
		return nil, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.Errorf(context.Background(), "%v", err)
		}
		closeLogger()
	}
	return cfg, db, cleanup, nil
}

// registry registers the bundled tables over db, seeding the demo data
// first when seed is set. The tables read their settings through settings.
func registry(ctx context.Context, db *data.Database, settings table.Settings, seed bool) (*table.Registry, error) {
	if seed {
		if err := users.Migrate(ctx, db); err != nil {
			return nil, err
		}
		if err := users.Seed(ctx, db); err != nil {
			return nil, err
		}
	}

	reg := table.NewRegistry()
	if err := reg.Register(table.New(users.Table{}, db.Source(), settings)); err != nil {
		return nil, err
	}
	return reg, nil
}
