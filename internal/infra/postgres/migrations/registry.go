package migrations

import "github.com/uptrace/bun/migrate"

// Migrations collects the per-file registrations in this package.
var Migrations = migrate.NewMigrations()
