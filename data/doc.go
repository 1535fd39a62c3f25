// Package data opens the database a table source reads from.
//
// Drivers live in subpackages and register on import:
//
//	import _ "github.com/ncobase/tablekit/data/sqlite"
//
//	db, err := data.Open(ctx, cfg.Database)
//	src := db.Source()
package data
