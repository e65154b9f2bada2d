package migrations

import (
	"context"
	_ "embed"

	"github.com/uptrace/bun"
)

// The file name carries the migration identity: bun derives each migration's
// name from the registering file, so one migration per properly named file.

//go:embed 0001_create_catalogs.sql
var createCatalogsSQL string

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(createCatalogsSQL)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(`DROP TABLE IF EXISTS catalogs`)
			return err
		},
	)
}
